package fastcrc

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fastcrc/peripheral"
)

var (
	// ErrInvalidWidth is returned when a width is not 7, 8, 16 or 32, or does
	// not match the result type.
	ErrInvalidWidth = errors.New("crc width must be 7, 8, 16 or 32 and fit the result type")

	// ErrParamOverflow is returned when Poly, Init or XorOut has bits above
	// the width.
	ErrParamOverflow = errors.New("crc parameter exceeds width")

	// ErrNoDevice is returned when the hardware backend is requested without
	// a usable peripheral.
	ErrNoDevice = errors.New("hardware backend requires a crc peripheral")
)

// ErrInvalidVariant indicates a descriptor that cannot be computed.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidVariant struct {
	Name  string
	Width uint8
	cause error
}

func (e *ErrInvalidVariant) Error() string {
	return fmt.Sprintf("invalid variant %q (width %d): %v", e.Name, e.Width, e.cause)
}

func (e *ErrInvalidVariant) Unwrap() error { return e.cause }

// ErrUnknownVariant indicates a name that is not in the catalog.
type ErrUnknownVariant struct {
	Name string
}

func (e *ErrUnknownVariant) Error() string {
	return fmt.Sprintf("unknown crc algorithm %q", e.Name)
}

// ErrCheckMismatch indicates that an engine disagreed with a check value.
type ErrCheckMismatch struct {
	Name    string
	Backend Backend
	Want    uint32
	Got     uint32
}

func (e *ErrCheckMismatch) Error() string {
	return fmt.Sprintf("%s (%s): check value mismatch: want %#x, got %#x", e.Name, e.Backend, e.Want, e.Got)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, peripheral.ErrUnavailable) {
		return fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	return err
}
