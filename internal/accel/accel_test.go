package accel

import (
	"fmt"
	"hash/crc32"
	"math/rand"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain prints which kernels the CPU provides so CI logs show whether the
// native path was exercised.
func TestMain(m *testing.M) {
	fmt.Printf("=== CRC Acceleration Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("FASTCRC_ACCEL=%q\n", os.Getenv("FASTCRC_ACCEL"))
	fmt.Printf("Active mode: %s\n", ActiveMode())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("  IEEE: %v\n", HasIEEE())
	fmt.Printf("  Castagnoli: %v\n", HasCastagnoli())
	fmt.Printf("====================================\n\n")

	os.Exit(m.Run())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"generic", Generic, true},
		{" Native ", Native, true},
		{"off", Generic, true},
		{"on", Native, true},
		{"avx", Generic, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMode(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "native", Native.String())
	assert.Equal(t, "unknown", Mode(9).String())
}

func TestUpdateMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, 1000)
	rng.Read(buf)

	castagnoli := crc32.MakeTable(crc32.Castagnoli)
	for _, n := range []int{0, 1, 3, 4, 17, 64, 1000} {
		p := buf[:n]
		assert.Equal(t, crc32.ChecksumIEEE(p), ^Update(PolyIEEE, 0xFFFFFFFF, p), "ieee length %d", n)
		assert.Equal(t, crc32.Checksum(p, castagnoli), ^Update(PolyCastagnoli, 0xFFFFFFFF, p), "castagnoli length %d", n)
	}
}

func TestUpdateIsIncremental(t *testing.T) {
	data := []byte("123456789")
	whole := Update(PolyIEEE, 0xFFFFFFFF, data)
	split := Update(PolyIEEE, Update(PolyIEEE, 0xFFFFFFFF, data[:4]), data[4:])
	require.Equal(t, whole, split)
	assert.Equal(t, uint32(0xCBF43926), ^whole)
}

func TestSupports(t *testing.T) {
	assert.False(t, Supports(0x8005))
	if ActiveMode() == Generic {
		assert.False(t, Supports(PolyIEEE))
		assert.False(t, Supports(PolyCastagnoli))
	} else {
		assert.Equal(t, HasIEEE(), Supports(PolyIEEE))
		assert.Equal(t, HasCastagnoli(), Supports(PolyCastagnoli))
	}
}

func TestUpdateUnknownPolyPanics(t *testing.T) {
	assert.Panics(t, func() { Update(0x8005, 0, nil) })
}
