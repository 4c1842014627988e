package fastcrc

import (
	"unsafe"

	"github.com/hupe1980/fastcrc/internal/bitops"
)

// Word is the result type of a CRC. A 7-bit CRC is returned in a uint8.
type Word interface {
	~uint8 | ~uint16 | ~uint32
}

// Variant describes a CRC algorithm in the Rocksoft model.
//
// Poly is given in normal form without the implicit top bit. Init is the
// register value before the first bit, unreflected. The output is formed by
// reflecting the register when RefIn and RefOut differ, xoring XorOut, and
// finally byte-swapping at the result size when SwapOut is set.
type Variant[T Word] struct {
	Name    string
	Width   uint8
	Poly    T
	Init    T
	RefIn   bool
	RefOut  bool
	XorOut  T
	SwapOut bool
	// Check is the CRC of the ASCII string "123456789".
	Check   T
	Aliases []string
}

// CheckInput is the conventional check string.
const CheckInput = "123456789"

// Catalog variants.
var (
	CRC7 = Variant[uint8]{
		Name: "crc7", Width: 7, Poly: 0x09,
		Check: 0x75, Aliases: []string{"crc-7", "crc-7/mmc"},
	}
	SMBus = Variant[uint8]{
		Name: "smbus", Width: 8, Poly: 0x07,
		Check: 0xF4, Aliases: []string{"crc-8", "crc-8/smbus"},
	}
	Maxim = Variant[uint8]{
		Name: "maxim", Width: 8, Poly: 0x31, RefIn: true, RefOut: true,
		Check: 0xA1, Aliases: []string{"crc-8/maxim", "crc-8/maxim-dow", "dow-crc"},
	}
	CCITT = Variant[uint16]{
		Name: "ccitt", Width: 16, Poly: 0x1021, Init: 0xFFFF,
		Check: 0x29B1, Aliases: []string{"crc-16/ccitt-false", "crc-16/ibm-3740", "crc-16/autosar"},
	}
	MCRF4XX = Variant[uint16]{
		Name: "mcrf4xx", Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: true, RefOut: true,
		Check: 0x6F91, Aliases: []string{"crc-16/mcrf4xx"},
	}
	Modbus = Variant[uint16]{
		Name: "modbus", Width: 16, Poly: 0x8005, Init: 0xFFFF, RefIn: true, RefOut: true,
		Check: 0x4B37, Aliases: []string{"crc-16/modbus"},
	}
	Kermit = Variant[uint16]{
		Name: "kermit", Width: 16, Poly: 0x1021, RefIn: true, RefOut: true,
		Check: 0x2189, Aliases: []string{"crc-16/kermit", "crc-16/ccitt", "crc-16/ccitt-true", "crc-ccitt"},
	}
	XModem = Variant[uint16]{
		Name: "xmodem", Width: 16, Poly: 0x1021,
		Check: 0x31C3, Aliases: []string{"crc-16/xmodem", "crc-16/acorn", "crc-16/lte", "zmodem"},
	}
	X25 = Variant[uint16]{
		Name: "x25", Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFF,
		Check: 0x906E, Aliases: []string{"crc-16/x-25", "crc-16/ibm-sdlc", "crc-16/iso-hdlc", "x-25"},
	}
	CRC32 = Variant[uint32]{
		Name: "crc32", Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF,
		Check: 0xCBF43926, Aliases: []string{"crc-32", "crc-32/iso-hdlc", "ieee"},
	}
	CKSum = Variant[uint32]{
		Name: "cksum", Width: 32, Poly: 0x04C11DB7, XorOut: 0xFFFFFFFF,
		Check: 0x765E7680, Aliases: []string{"crc-32/cksum", "posix"},
	}
)

// Validate checks that the descriptor is computable with result type T.
func (v Variant[T]) Validate() error {
	switch v.Width {
	case 7, 8, 16, 32:
	default:
		return &ErrInvalidVariant{Name: v.Name, Width: v.Width, cause: ErrInvalidWidth}
	}
	if bitops.StorageBits(uint(v.Width)) != sizeBits[T]() {
		return &ErrInvalidVariant{Name: v.Name, Width: v.Width, cause: ErrInvalidWidth}
	}

	mask := bitops.Mask(uint(v.Width))
	if uint32(v.Poly)&^mask != 0 || uint32(v.Init)&^mask != 0 || uint32(v.XorOut)&^mask != 0 {
		return &ErrInvalidVariant{Name: v.Name, Width: v.Width, cause: ErrParamOverflow}
	}
	return nil
}

// Flags returns the portable flag set of v. FlagXorOut is only set when
// XorOut is all ones.
func (v Variant[T]) Flags() Flags {
	var f Flags
	if v.RefIn {
		f |= FlagReflectIn
	}
	if v.RefOut {
		f |= FlagReflectOut
	}
	if uint32(v.XorOut) == bitops.Mask(uint(v.Width)) {
		f |= FlagXorOut
	}
	if v.SwapOut {
		f |= FlagSwapOut
	}
	return f
}

// FromFlags builds an ad-hoc descriptor. FlagXorOut selects an all-ones
// XorOut.
func FromFlags[T Word](width uint8, poly, seed T, flags Flags) Variant[T] {
	v := Variant[T]{
		Name:    "generic",
		Width:   width,
		Poly:    poly,
		Init:    seed,
		RefIn:   flags&FlagReflectIn != 0,
		RefOut:  flags&FlagReflectOut != 0,
		SwapOut: flags&FlagSwapOut != 0,
	}
	if flags&FlagXorOut != 0 {
		v.XorOut = T(bitops.Mask(uint(width)))
	}
	return v
}

func (v Variant[T]) mustValidate() Variant[T] {
	if err := v.Validate(); err != nil {
		panic(err)
	}
	return v
}

func sizeBits[T Word]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}
