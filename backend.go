package fastcrc

import (
	"os"
	"strings"
)

// Backend identifies the engine implementation.
type Backend uint8

const (
	// BackendAuto selects hardware when a device is configured and software
	// otherwise.
	BackendAuto Backend = iota
	// BackendSoftware selects the table-driven engine.
	BackendSoftware
	// BackendHardware selects the peripheral engine.
	BackendHardware
)

// String returns the string representation of a Backend.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendSoftware:
		return "software"
	case BackendHardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseBackend parses a string into a Backend value.
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return BackendAuto, true
	case "software", "sw", "table":
		return BackendSoftware, true
	case "hardware", "hw", "peripheral":
		return BackendHardware, true
	default:
		return BackendAuto, false
	}
}

// defaultBackend is read once from FASTCRC_BACKEND.
var defaultBackend = func() Backend {
	if b, ok := ParseBackend(os.Getenv("FASTCRC_BACKEND")); ok {
		return b
	}
	return BackendAuto
}()
