// Package mmap maps device memory for register-level peripheral access.
//
// # Overview
//
// Memory-mapped peripherals are reached on Linux by mapping the physical
// address range through a character device such as /dev/mem. The mapping is
// read-write and shared, so every store lands on the device.
//
// # Usage
//
//	m, err := mmap.MapDevice("/dev/mem", 0x40032000, 12)
//	if err != nil { ... }
//	defer m.Close()
//
//	ctrl, _ := m.Uint32(8)
//	atomic.StoreUint32(ctrl, value)
//
// # Alignment
//
// The kernel maps whole pages. MapDevice rounds the physical address down to
// the page boundary and keeps the in-page offset, so offsets passed to the
// accessors are relative to the requested address.
//
// # Platform Support
//
//   - Unix: mmap(2) through golang.org/x/sys/unix
//   - Other: MapDevice returns ErrUnsupported
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure no
// goroutine dereferences a register pointer after Close returns.
package mmap
