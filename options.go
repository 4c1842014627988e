package fastcrc

import (
	"log/slog"

	"github.com/hupe1980/fastcrc/peripheral"
)

type options struct {
	backend          Backend
	device           *peripheral.Device
	acceleration     bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures engine construction.
type Option func(*options)

// WithBackend forces the engine backend. The default comes from
// FASTCRC_BACKEND and falls back to BackendAuto.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithDevice supplies the CRC peripheral for the hardware backend.
//
// Example:
//
//	dev := peripheral.NewDevice(peripheral.NewSimulator(), nil)
//	eng, _ := fastcrc.New(fastcrc.Modbus, fastcrc.WithDevice(dev))
func WithDevice(dev *peripheral.Device) Option {
	return func(o *options) {
		o.device = dev
	}
}

// WithAcceleration enables or disables CPU-accelerated CRC-32 kernels in
// the software engine. Enabled by default; FASTCRC_ACCEL=generic disables it
// process-wide.
func WithAcceleration(enabled bool) Option {
	return func(o *options) {
		o.acceleration = enabled
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &fastcrc.BasicMetricsCollector{}
//	eng, _ := fastcrc.New(fastcrc.CRC32, fastcrc.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Bytes: %d, Avg latency: %dns\n", stats.Bytes, stats.AvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fastcrc.NewJSONLogger(slog.LevelDebug)
//	eng, _ := fastcrc.New(fastcrc.Kermit, fastcrc.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		backend:          defaultBackend,
		acceleration:     true,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
