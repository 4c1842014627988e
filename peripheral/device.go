package peripheral

import (
	"io"
	"log/slog"
	"sync"
)

// Device serializes access to a Port.
//
// The accumulator of the peripheral is the seed of whatever is written next,
// so only one computation may be in flight. Device also gates the clock once
// and tracks the owner that last programmed the registers, letting engines
// detect that another engine has used the peripheral in between.
type Device struct {
	mu     sync.Mutex
	port   Port
	owner  any
	clock  sync.Once
	logger *slog.Logger
}

// NewDevice wraps port. A nil logger discards output.
func NewDevice(port Port, logger *slog.Logger) *Device {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Device{port: port, logger: logger}
}

// EnableClock opens the peripheral clock gate. Only the first call reaches
// the hardware; the gate is never closed again.
func (d *Device) EnableClock() {
	d.clock.Do(func() {
		d.mu.Lock()
		d.port.EnableClock()
		d.mu.Unlock()
		d.logger.Debug("crc peripheral clock enabled")
	})
}

// Exec runs fn with exclusive access to the port. resumed reports whether
// owner was the last one to run, in which case the registers still hold its
// configuration and accumulator.
func (d *Device) Exec(owner any, fn func(p Port, resumed bool)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	resumed := owner != nil && d.owner == owner
	d.owner = owner
	fn(d.port, resumed)
}

// Release forgets owner, so its next Exec starts from scratch.
func (d *Device) Release(owner any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.owner == owner {
		d.owner = nil
	}
}

// Port returns the wrapped port. Callers must not use it concurrently with
// Exec.
func (d *Device) Port() Port {
	return d.port
}

// Close closes the port if it holds resources, such as an MMIO mapping.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.owner = nil
	if c, ok := d.port.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
