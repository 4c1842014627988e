package fastcrc

import (
	"context"
	"encoding/binary"
	"time"
	"unsafe"

	"github.com/hupe1980/fastcrc/internal/bitops"
	"github.com/hupe1980/fastcrc/peripheral"
)

// Hardware computes CRCs on a CRC peripheral.
//
// The peripheral always runs in 32-bit mode with polynomial and seed
// left-aligned. The engine keeps a copy of the untransposed accumulator after
// every call, so it can restore the peripheral when another engine has used
// the device in between. A single Hardware is not safe for concurrent use;
// separate engines sharing a Device are.
type Hardware[T Word] struct {
	variant Variant[T]
	p       params
	dev     *peripheral.Device

	ctrl     uint32 // control word without WAS
	fxorMask uint32 // inversion applied by the peripheral on reads
	xorSoft  uint32 // remaining XorOut, applied after the read

	acc    uint32
	out    T      // checksum of acc
	seeded bool
	dirty  bool   // acc holds data fed since the last Reset

	metrics MetricsCollector
	timed   bool
	logger  *Logger
}

// NewHardware returns an engine computing v on dev and enables the
// peripheral clock.
func NewHardware[T Word](dev *peripheral.Device, v Variant[T], optFns ...Option) (*Hardware[T], error) {
	o := applyOptions(optFns)
	o.device = dev
	return newHardware(v, o)
}

func newHardware[T Word](v Variant[T], o options) (*Hardware[T], error) {
	ctx := context.Background()
	if o.device == nil {
		o.logger.LogEngine(ctx, v.Name, BackendHardware, ErrNoDevice)
		return nil, ErrNoDevice
	}
	if err := v.Validate(); err != nil {
		o.logger.LogEngine(ctx, v.Name, BackendHardware, err)
		return nil, err
	}

	h := &Hardware[T]{
		dev:     o.device,
		metrics: o.metricsCollector,
		timed:   recordsCompute(o.metricsCollector),
		logger:  o.logger,
	}
	h.configure(v)
	h.dev.EnableClock()

	o.logger.LogEngine(ctx, v.Name, BackendHardware, nil)
	return h, nil
}

func (h *Hardware[T]) configure(v Variant[T]) {
	h.variant = v
	h.p = paramsOf(v)
	h.seeded = false
	h.out = T(h.p.finish(h.p.seed()))

	invert := h.p.xorOut != 0 && h.p.xorOut == bitops.Mask(h.p.width)
	h.ctrl = peripheral.Control(h.p.refIn, h.p.refOut, h.p.swapOut, invert)
	h.fxorMask, h.xorSoft = 0, 0
	switch {
	case invert:
		h.fxorMask = 0xFFFFFFFF
	case h.p.swapOut:
		h.xorSoft = bitops.Swap(h.p.xorOut, h.p.storage/8)
	default:
		h.xorSoft = h.p.xorOut
	}
}

// Variant returns the descriptor the engine computes.
func (h *Hardware[T]) Variant() Variant[T] { return h.variant }

// Backend returns BackendHardware.
func (h *Hardware[T]) Backend() Backend { return BackendHardware }

// Reset loads the initial value into the accumulator.
func (h *Hardware[T]) Reset() {
	h.acc = h.p.init << (32 - h.p.width)
	h.out = T(h.p.finish(h.p.seed()))
	h.seeded = true
	h.dirty = false
	h.dev.Release(h)
}

// Compute resets the accumulator and feeds data.
func (h *Hardware[T]) Compute(data []byte) T {
	h.Reset()
	return h.Update(data)
}

// Generic rebinds the engine to an ad-hoc parametrization at the full width
// of T and computes data. Later Update calls continue this computation.
func (h *Hardware[T]) Generic(poly, seed T, flags Flags, data []byte) T {
	v := FromFlags(uint8(sizeBits[T]()), poly, seed, flags)
	h.configure(v)
	return h.Compute(data)
}

// Update feeds data into the accumulator and returns the checksum of
// everything fed since the last Compute or Reset. A fresh engine starts from
// the initial value.
func (h *Hardware[T]) Update(data []byte) T {
	if !h.seeded {
		h.Reset()
	}

	var start time.Time
	if h.timed {
		start = time.Now()
	}
	h.dev.Exec(h, func(port peripheral.Port, resumed bool) {
		if !resumed {
			if h.dirty {
				h.metrics.RecordReseed()
				h.logger.Debug("restoring crc accumulator", "variant", h.variant.Name)
			}
			h.program(port)
		}
		h.out = h.stream(port, data)
	})
	if h.timed {
		h.metrics.RecordCompute(BackendHardware, len(data), time.Since(start))
	}
	return h.out
}

// sum returns the checksum of the data fed so far without touching the
// device.
func (h *Hardware[T]) sum() T { return h.out }

// program writes control, polynomial and the saved accumulator as seed.
func (h *Hardware[T]) program(port peripheral.Port) {
	port.WriteCtrl(h.ctrl | 1<<peripheral.CtrlWAS)
	port.WritePoly(h.p.poly << (32 - h.p.width))
	port.Write32(h.acc)
	port.SetCtrlBit(peripheral.CtrlWAS, false)
}

func (h *Hardware[T]) stream(port peripheral.Port, data []byte) T {
	for len(data) > 0 && uintptr(unsafe.Pointer(unsafe.SliceData(data)))&3 != 0 {
		port.Write8(data[0])
		data = data[1:]
	}
	for len(data) >= 4 {
		port.Write32(binary.LittleEndian.Uint32(data))
		data = data[4:]
	}
	if len(data) >= 2 {
		port.Write16(binary.LittleEndian.Uint16(data))
		data = data[2:]
	}
	if len(data) == 1 {
		port.Write8(data[0])
	}

	h.acc = peripheral.ReadTranspose(h.ctrl).Apply(port.Read32()^h.fxorMask, 4)
	h.dirty = true
	return h.result(port)
}

// result reads the checksum through the alias holding it.
func (h *Hardware[T]) result(port peripheral.Port) T {
	lane := peripheral.LaneHigh
	if port.CtrlBit(peripheral.CtrlTOTR1) {
		lane = peripheral.LaneLow
	}

	var v uint32
	switch h.p.storage {
	case 32:
		v = port.Read32()
	case 16:
		v = uint32(port.Read16(lane))
	default:
		v = uint32(port.Read8(lane))
		if !h.p.refOut {
			v >>= 8 - h.p.width
		}
	}
	return T(v&bitops.Mask(h.p.width) ^ h.xorSoft)
}
