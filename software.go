package fastcrc

import (
	"context"
	"time"

	"github.com/hupe1980/fastcrc/internal/accel"
	"github.com/hupe1980/fastcrc/internal/table"
)

// kernel binds a variant to its lookup table or accelerated routine.
// It is immutable and shared.
type kernel[T Word] struct {
	p      params
	tab    *table.Table[T]
	native bool
}

func newKernel[T Word](v Variant[T], accelerate bool) *kernel[T] {
	p := paramsOf(v)
	return &kernel[T]{
		p:      p,
		tab:    table.For[T](v.Width, p.poly, p.refIn),
		native: accelerate && p.width == 32 && p.refIn && accel.Supports(p.poly),
	}
}

func (k *kernel[T]) update(reg uint32, data []byte) uint32 {
	if k.native {
		return accel.Update(k.p.poly, reg, data)
	}
	return k.tab.Update(reg, data)
}

func (k *kernel[T]) checksum(data []byte) T {
	return T(k.p.finish(k.update(k.p.seed(), data)))
}

// resume continues from a previously returned checksum.
func (k *kernel[T]) resume(crc T, data []byte) T {
	return T(k.p.finish(k.update(k.p.unfinish(uint32(crc)), data)))
}

// Software is the table-driven engine.
//
// The engine owns its register; it is not safe for concurrent use. Tables are
// shared between all engines of the same polynomial.
type Software[T Word] struct {
	variant Variant[T]
	k       *kernel[T]
	reg     uint32
	seeded  bool
	metrics MetricsCollector
	timed   bool
}

// NewSoftware returns a software engine for v.
func NewSoftware[T Word](v Variant[T], optFns ...Option) (*Software[T], error) {
	o := applyOptions(optFns)
	if err := v.Validate(); err != nil {
		o.logger.LogEngine(context.Background(), v.Name, BackendSoftware, err)
		return nil, err
	}
	return newSoftware(v, o), nil
}

func newSoftware[T Word](v Variant[T], o options) *Software[T] {
	s := &Software[T]{
		variant: v,
		k:       newKernel(v, o.acceleration),
		metrics: o.metricsCollector,
		timed:   recordsCompute(o.metricsCollector),
	}
	o.logger.LogEngine(context.Background(), v.Name, BackendSoftware, nil)
	if s.k.native {
		o.logger.Debug("using accelerated kernel", "variant", v.Name, "mode", accel.ActiveMode().String())
	}
	return s
}

// Variant returns the descriptor the engine computes.
func (s *Software[T]) Variant() Variant[T] { return s.variant }

// Backend returns BackendSoftware.
func (s *Software[T]) Backend() Backend { return BackendSoftware }

// Reset loads the initial value into the register.
func (s *Software[T]) Reset() {
	s.reg = s.k.p.seed()
	s.seeded = true
}

// Compute resets the register and feeds data.
func (s *Software[T]) Compute(data []byte) T {
	s.Reset()
	return s.Update(data)
}

// Update feeds data into the current register and returns the checksum of
// everything fed since the last Compute or Reset. A fresh engine starts from
// the initial value.
func (s *Software[T]) Update(data []byte) T {
	if !s.seeded {
		s.Reset()
	}
	if !s.timed {
		s.reg = s.k.update(s.reg, data)
		return s.sum()
	}
	start := time.Now()
	s.reg = s.k.update(s.reg, data)
	s.metrics.RecordCompute(BackendSoftware, len(data), time.Since(start))
	return s.sum()
}

// sum returns the checksum of the data fed so far without feeding more.
func (s *Software[T]) sum() T {
	if !s.seeded {
		return s.k.checksum(nil)
	}
	return T(s.k.p.finish(s.reg))
}
