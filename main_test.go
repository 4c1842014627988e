package fastcrc

import (
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/hupe1980/fastcrc/internal/accel"
)

// TestMain prints the backend and kernel selection so CI logs show which
// paths the tests exercised.
func TestMain(m *testing.M) {
	fmt.Printf("=== fastcrc Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("FASTCRC_BACKEND=%q (default %s)\n", os.Getenv("FASTCRC_BACKEND"), defaultBackend)
	fmt.Printf("FASTCRC_ACCEL=%q (mode %s)\n", os.Getenv("FASTCRC_ACCEL"), accel.ActiveMode())
	fmt.Printf("CRC-32 kernel native: %v\n", crc32Kernel.native)
	fmt.Printf("===========================\n\n")

	os.Exit(m.Run())
}
