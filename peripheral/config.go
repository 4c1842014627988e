package peripheral

import "log/slog"

// Config locates the peripheral in physical memory.
type Config struct {
	// DevicePath is the memory device to map. Defaults to /dev/mem.
	DevicePath string
	// Base is the physical address of the CRC register block.
	Base uint64
	// BitBandRef and BitBandBase describe the peripheral bit-band region.
	// Control bits are toggled through it.
	BitBandRef  uint64
	BitBandBase uint64
	// ClockGate is the address of the clock gating register holding
	// ClockGateBit. Zero skips clock gating.
	ClockGate    uint64
	ClockGateBit uint32
	// Logger receives mapping and clock gate events. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the Kinetis K20 layout.
func DefaultConfig() Config {
	return Config{
		DevicePath:   "/dev/mem",
		Base:         DefaultBase,
		BitBandRef:   DefaultBitBandRef,
		BitBandBase:  DefaultBitBandBase,
		ClockGate:    DefaultSIMSCGC6,
		ClockGateBit: SIMClockCRC,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DevicePath == "" {
		c.DevicePath = d.DevicePath
	}
	if c.Base == 0 {
		c.Base = d.Base
	}
	if c.BitBandRef == 0 && c.BitBandBase == 0 {
		c.BitBandRef = d.BitBandRef
		c.BitBandBase = d.BitBandBase
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}
