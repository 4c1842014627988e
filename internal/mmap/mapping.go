package mmap

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/fastcrc/internal/conv"
)

// Mapping is a read-write view of device memory starting at a physical address.
// It owns the underlying pages and is responsible for unmapping them.
type Mapping struct {
	data   []byte
	off    int // offset of the requested address inside data
	size   int
	phys   uint64
	closed atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// MapDevice maps size bytes of the device file at path, starting at the
// physical address phys.
func MapDevice(path string, phys uint64, size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	page := uint64(os.Getpagesize())
	base := phys &^ (page - 1)
	off, err := conv.Uint64ToInt(phys - base)
	if err != nil {
		return nil, err
	}
	offset, err := conv.Uint64ToInt64(base)
	if err != nil {
		return nil, fmt.Errorf("mmap: physical address %#x: %w", phys, err)
	}

	length := off + size
	if rem := length % int(page); rem != 0 {
		length += int(page) - rem
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, err
	}
	// The mapping stays valid after the descriptor is closed.
	defer f.Close()

	data, unmapFunc, err := osMapDevice(f, offset, length)
	if err != nil {
		return nil, fmt.Errorf("mmap: map %s at %#x: %w", path, base, err)
	}

	return &Mapping{
		data:  data,
		off:   off,
		size:  size,
		phys:  phys,
		unmap: unmapFunc,
	}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Size returns the number of addressable bytes.
func (m *Mapping) Size() int {
	return m.size
}

// Phys returns the physical address of offset 0.
func (m *Mapping) Phys() uint64 {
	return m.phys
}

func (m *Mapping) pointer(off, width int) (unsafe.Pointer, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	if off < 0 || off+width > m.size {
		return nil, ErrOutOfBounds
	}
	if (m.phys+uint64(off))%uint64(width) != 0 {
		return nil, ErrMisaligned
	}
	return unsafe.Pointer(&m.data[m.off+off]), nil
}

// Uint32 returns a pointer to the 32-bit register at off.
// Access it with sync/atomic so the store is not elided or split.
func (m *Mapping) Uint32(off int) (*uint32, error) {
	p, err := m.pointer(off, 4)
	if err != nil {
		return nil, err
	}
	return (*uint32)(p), nil
}

// Uint16 returns a pointer to the 16-bit register at off.
func (m *Mapping) Uint16(off int) (*uint16, error) {
	p, err := m.pointer(off, 2)
	if err != nil {
		return nil, err
	}
	return (*uint16)(p), nil
}

// Uint8 returns a pointer to the 8-bit register at off.
func (m *Mapping) Uint8(off int) (*uint8, error) {
	p, err := m.pointer(off, 1)
	if err != nil {
		return nil, err
	}
	return (*uint8)(p), nil
}
