package fastcrc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCompute is called after each Compute or Update on an engine.
	// bytes is the input length, duration the time spent.
	RecordCompute(backend Backend, bytes int, duration time.Duration)

	// RecordReseed is called when a hardware engine had to restore its
	// accumulator because another engine used the peripheral in between.
	RecordReseed()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCompute(Backend, int, time.Duration) {}
func (NoopMetricsCollector) RecordReseed()                             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ComputeCount  atomic.Int64
	SoftwareCount atomic.Int64
	HardwareCount atomic.Int64
	Bytes         atomic.Int64
	TotalNanos    atomic.Int64
	ReseedCount   atomic.Int64
}

// RecordCompute implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompute(backend Backend, bytes int, duration time.Duration) {
	b.ComputeCount.Add(1)
	b.Bytes.Add(int64(bytes))
	b.TotalNanos.Add(duration.Nanoseconds())
	switch backend {
	case BackendSoftware:
		b.SoftwareCount.Add(1)
	case BackendHardware:
		b.HardwareCount.Add(1)
	}
}

// RecordReseed implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReseed() {
	b.ReseedCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ComputeCount:  b.ComputeCount.Load(),
		SoftwareCount: b.SoftwareCount.Load(),
		HardwareCount: b.HardwareCount.Load(),
		Bytes:         b.Bytes.Load(),
		AvgNanos:      b.getAvgNanos(),
		ReseedCount:   b.ReseedCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgNanos() int64 {
	count := b.ComputeCount.Load()
	if count == 0 {
		return 0
	}
	return b.TotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ComputeCount  int64
	SoftwareCount int64
	HardwareCount int64
	Bytes         int64
	AvgNanos      int64
	ReseedCount   int64
}

// recordsCompute reports whether mc wants compute timings. Engines skip the
// clock reads otherwise.
func recordsCompute(mc MetricsCollector) bool {
	_, noop := mc.(NoopMetricsCollector)
	return !noop
}
