package fastcrc

import (
	"context"

	"github.com/hupe1980/fastcrc/peripheral"
)

// Engine computes one CRC variant and carries the register between calls.
//
// Compute starts a new message; Update continues it, so
// Compute(a) followed by Update(b) returns Compute(a ++ b). Engines are not
// safe for concurrent use.
type Engine[T Word] interface {
	// Variant returns the descriptor the engine computes.
	Variant() Variant[T]
	// Compute resets the register to the initial value and feeds data.
	Compute(data []byte) T
	// Update feeds data into the current register.
	Update(data []byte) T
	// Reset loads the initial value into the register.
	Reset()
	// Backend reports the implementation in use.
	Backend() Backend
}

var (
	_ Engine[uint8]  = (*Software[uint8])(nil)
	_ Engine[uint32] = (*Software[uint32])(nil)
	_ Engine[uint16] = (*Hardware[uint16])(nil)
	_ Engine[uint32] = (*Hardware[uint32])(nil)
)

// New returns an engine for v.
//
// The backend is chosen by WithBackend, then FASTCRC_BACKEND, then
// BackendAuto, which uses the hardware engine only when WithDevice supplied
// a device. The peripheral is never probed implicitly.
func New[T Word](v Variant[T], optFns ...Option) (Engine[T], error) {
	return newEngine(v, applyOptions(optFns))
}

func newEngine[T Word](v Variant[T], o options) (Engine[T], error) {
	if o.backend == BackendHardware || (o.backend == BackendAuto && o.device != nil) {
		h, err := newHardware(v, o)
		if err != nil {
			return nil, err
		}
		return h, nil
	}

	if err := v.Validate(); err != nil {
		o.logger.LogEngine(context.Background(), v.Name, BackendSoftware, err)
		return nil, err
	}
	return newSoftware(v, o), nil
}

// OpenDevice maps the CRC peripheral described by cfg and wraps it in a
// Device. Close the device to unmap it. When the peripheral cannot be
// reached, either because the platform cannot map devices or because the
// memory device is missing or not accessible, the error wraps ErrNoDevice.
func OpenDevice(cfg peripheral.Config) (*peripheral.Device, error) {
	port, err := peripheral.OpenMMIO(cfg)
	if err != nil {
		return nil, translateError(err)
	}
	return peripheral.NewDevice(port, cfg.Logger), nil
}
