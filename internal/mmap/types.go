package mmap

import "errors"

var (
	// ErrClosed is returned when attempting to access a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when the requested size is not positive.
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrOutOfBounds is returned when attempting to access a register outside the mapping.
	ErrOutOfBounds = errors.New("mmap: out of bounds")
	// ErrMisaligned is returned when a register offset is not aligned to its width.
	ErrMisaligned = errors.New("mmap: misaligned register offset")
	// ErrUnsupported is returned on platforms without device mapping.
	ErrUnsupported = errors.New("mmap: device mapping not supported on this platform")
)
