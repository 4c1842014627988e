package peripheral

import (
	"math/bits"

	"github.com/hupe1980/fastcrc/internal/bitops"
)

// Register map of the Kinetis K20 CRC block.
const (
	DefaultBase        uint64 = 0x40032000
	DefaultBitBandRef  uint64 = 0x40000000
	DefaultBitBandBase uint64 = 0x42000000
	DefaultSIMSCGC6    uint64 = 0x4004803C

	OffsetData = 0x0 // CRC: 32-bit accumulator, 8/16-bit low-lane aliases
	OffsetPoly = 0x4 // GPOLY
	OffsetCtrl = 0x8 // CTRL

	OffsetDataHigh16 = 0x2 // CRCH
	OffsetDataHigh8  = 0x3 // CRCHU

	// SIMClockCRC is the CRC clock gate bit in SIM_SCGC6.
	SIMClockCRC uint32 = 1 << 18
)

// Control register bits.
const (
	CtrlTCRC uint = 24 // width of CRC protocol: 0=16 bit, 1=32 bit
	CtrlWAS  uint = 25 // write accumulator as seed (1) or data (0)
	CtrlFXOR uint = 26 // complement read data
	CtrlTOTR uint = 28 // type of transpose for reads, 2 bits
	CtrlTOT  uint = 30 // type of transpose for writes, 2 bits

	// CtrlTOTR1 is the high TOTR bit. When set, sub-32-bit results sit in
	// the low lanes of the data register.
	CtrlTOTR1 uint = 29
)

// Transpose selects how bits and bytes are reordered on the way through a
// data register access.
type Transpose uint8

const (
	TransposeNone      Transpose = 0b00
	TransposeBits      Transpose = 0b01 // bits within each byte
	TransposeBitsBytes Transpose = 0b10 // bits and bytes, a full reversal
	TransposeBytes     Transpose = 0b11 // bytes only
)

// String returns the register mnemonic of the transposition.
func (t Transpose) String() string {
	switch t {
	case TransposeNone:
		return "none"
	case TransposeBits:
		return "bits"
	case TransposeBitsBytes:
		return "bits+bytes"
	case TransposeBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Apply transposes the low size bytes of v.
func (t Transpose) Apply(v uint32, size uint) uint32 {
	switch t {
	case TransposeBits:
		return bitops.ReflectBytes(v)
	case TransposeBitsBytes:
		return bits.Reverse32(v) >> (32 - 8*size)
	case TransposeBytes:
		return bitops.Swap(v, size)
	default:
		return v
	}
}

// WriteTranspose extracts TOT from a control word.
func WriteTranspose(ctrl uint32) Transpose {
	return Transpose(ctrl >> CtrlTOT & 0b11)
}

// ReadTranspose extracts TOTR from a control word.
func ReadTranspose(ctrl uint32) Transpose {
	return Transpose(ctrl >> CtrlTOTR & 0b11)
}

// Control encodes the data-mode control word for a 32-bit mode computation.
//
// Data is written little-endian from memory, so non-reflected input needs a
// byte transpose to be shifted in first-byte-first, and reflected input a
// full reversal. On the read side a full reversal reflects the result, a
// byte transpose swaps it and a bit transpose does both.
func Control(refIn, refOut, swap, invert bool) uint32 {
	tot := TransposeBytes
	if refIn {
		tot = TransposeBitsBytes
	}

	var totr Transpose
	switch {
	case refOut && swap:
		totr = TransposeBits
	case refOut:
		totr = TransposeBitsBytes
	case swap:
		totr = TransposeBytes
	default:
		totr = TransposeNone
	}

	ctrl := uint32(tot)<<CtrlTOT | uint32(totr)<<CtrlTOTR | 1<<CtrlTCRC
	if invert {
		ctrl |= 1 << CtrlFXOR
	}
	return ctrl
}

// BitBandAlias returns the address of the bit-band word that aliases bit of
// the register at addr.
func BitBandAlias(ref, base, addr uint64, bit uint) uint64 {
	return base + (addr-ref)*32 + uint64(bit)*4
}
