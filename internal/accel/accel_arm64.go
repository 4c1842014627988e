//go:build arm64

package accel

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	// Apple Silicon always has the CRC32 extension but older x/sys/cpu
	// releases do not report it on darwin.
	hasIEEE = cpu.ARM64.HasCRC32 || runtime.GOOS == "darwin"
	hasCastagnoli = hasIEEE
	initCapabilities()
}
