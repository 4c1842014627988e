package accel

import (
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/crc32"
)

// Mode is the kernel family used for accelerated polynomials.
type Mode uint8

const (
	// Generic means every CRC runs on lookup tables.
	Generic Mode = iota
	// Native means supported polynomials run on CPU instructions.
	Native
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case Generic:
		return "generic"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode value.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "off", "table":
		return Generic, true
	case "native", "on":
		return Native, true
	default:
		return Generic, false
	}
}

// Normal-form polynomials with an accelerated kernel.
const (
	PolyIEEE       uint32 = 0x04C11DB7
	PolyCastagnoli uint32 = 0x1EDC6F41
)

// Package-level state, set once by the platform init.
var (
	activeMode  Mode
	hasOverride bool

	hasIEEE       bool
	hasCastagnoli bool

	castagnoliTable = crc32.MakeTable(crc32.Castagnoli)
)

func initCapabilities() {
	if override := os.Getenv("FASTCRC_ACCEL"); override != "" {
		if mode, ok := ParseMode(override); ok {
			hasOverride = true
			if mode == Generic || hasIEEE || hasCastagnoli {
				activeMode = mode
				return
			}
		}
	}

	if hasIEEE || hasCastagnoli {
		activeMode = Native
		return
	}
	activeMode = Generic
}

// ActiveMode returns the currently active Mode.
func ActiveMode() Mode {
	return activeMode
}

// IsOverridden returns true if FASTCRC_ACCEL was set.
func IsOverridden() bool {
	return hasOverride
}

// HasIEEE returns true if the CPU accelerates the IEEE polynomial.
func HasIEEE() bool {
	return hasIEEE
}

// HasCastagnoli returns true if the CPU accelerates the Castagnoli polynomial.
func HasCastagnoli() bool {
	return hasCastagnoli
}

// Supports reports whether a reflected 32-bit CRC over poly runs natively.
func Supports(poly uint32) bool {
	if activeMode != Native {
		return false
	}
	switch poly {
	case PolyIEEE:
		return hasIEEE
	case PolyCastagnoli:
		return hasCastagnoli
	default:
		return false
	}
}

// Update feeds p into the reflected register crc. It panics if poly has no
// kernel; check Supports first.
func Update(poly, crc uint32, p []byte) uint32 {
	switch poly {
	case PolyIEEE:
		return ^crc32.Update(^crc, crc32.IEEETable, p)
	case PolyCastagnoli:
		return ^crc32.Update(^crc, castagnoliTable, p)
	default:
		panic(fmt.Sprintf("accel: no kernel for polynomial %#08x", poly))
	}
}
