package peripheral

import "errors"

// ErrUnavailable is returned when the peripheral cannot be reached on this
// platform or configuration.
var ErrUnavailable = errors.New("peripheral: CRC peripheral unavailable")

// Lane selects which half of the data register a narrow access targets.
type Lane uint8

const (
	// LaneLow is the least significant byte or halfword (offset 0).
	LaneLow Lane = iota
	// LaneHigh is the most significant byte (offset 3) or halfword (offset 2).
	LaneHigh
)

// Port is raw register access to one CRC peripheral.
// Implementations are not safe for concurrent use; share them through a Device.
type Port interface {
	// WriteCtrl stores the whole control register.
	WriteCtrl(v uint32)
	// ReadCtrl loads the control register.
	ReadCtrl() uint32
	// SetCtrlBit flips a single control bit through the bit-band alias.
	SetCtrlBit(bit uint, on bool)
	// CtrlBit reads a single control bit through the bit-band alias.
	CtrlBit(bit uint) bool
	// WritePoly stores the polynomial register.
	WritePoly(v uint32)
	// Write32 stores a word to the data register.
	Write32(v uint32)
	// Write16 stores a halfword to the low data lane.
	Write16(v uint16)
	// Write8 stores a byte to the high data lane.
	Write8(v uint8)
	// Read32 loads the data register.
	Read32() uint32
	// Read16 loads one halfword of the data register.
	Read16(lane Lane) uint16
	// Read8 loads one byte lane of the data register.
	Read8(lane Lane) uint8
	// EnableClock opens the peripheral clock gate.
	EnableClock()
}
