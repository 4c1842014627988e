package fastcrc

import (
	"hash/crc32"
	"io"
	"testing"

	"github.com/hupe1980/fastcrc/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest_HashInterface(t *testing.T) {
	h, err := NewHash(CRC32)
	require.NoError(t, err)

	_, err = io.WriteString(h, CheckInput)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCBF43926), h.Sum32())
	assert.Equal(t, []byte{0xCB, 0xF4, 0x39, 0x26}, h.Sum(nil))
	assert.Equal(t, []byte{0x01, 0xCB, 0xF4, 0x39, 0x26}, h.Sum([]byte{0x01}))
	assert.Equal(t, 4, h.Size())
	assert.Equal(t, 1, h.BlockSize())

	h.Reset()
	assert.Equal(t, uint32(0), h.Sum32())
}

func TestDigest_Sizes(t *testing.T) {
	h16, err := NewHash(Modbus)
	require.NoError(t, err)
	h16.Write(check)
	assert.Equal(t, 2, h16.Size())
	assert.Equal(t, []byte{0x4B, 0x37}, h16.Sum(nil))

	h8, err := NewHash(CRC7)
	require.NoError(t, err)
	h8.Write(check)
	assert.Equal(t, 1, h8.Size())
	assert.Equal(t, []byte{0x75}, h8.Sum(nil))
}

func TestDigest_StreamsLikeHashCRC32(t *testing.T) {
	rng := testutil.NewRNG(21)
	ours, err := NewHash(CRC32)
	require.NoError(t, err)
	ref := crc32.NewIEEE()

	for range 100 {
		p := rng.Bytes(rng.Intn(70))
		ours.Write(p)
		ref.Write(p)
		require.Equal(t, ref.Sum32(), ours.Sum32())
	}
}

func TestDigest_Hardware(t *testing.T) {
	dev, _ := newSimDevice()
	h, err := NewHash(X25, WithDevice(dev))
	require.NoError(t, err)
	assert.Equal(t, BackendHardware, h.Backend())
	assert.Equal(t, BackendHardware, h.Engine().Backend())

	for _, c := range check {
		h.Write([]byte{c})
	}
	assert.Equal(t, uint32(0x906E), h.Sum32())
}

func TestDigest_SumDoesNotCompute(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	h, err := NewHash(CRC32, WithMetricsCollector(metrics))
	require.NoError(t, err)

	assert.Equal(t, ChecksumCRC32(nil), h.Sum32())
	h.Write([]byte("abc"))
	assert.Equal(t, ChecksumCRC32([]byte("abc")), h.Sum32())
	assert.Equal(t, ChecksumCRC32([]byte("abc")), h.Sum32())
	assert.Equal(t, int64(1), metrics.GetStats().ComputeCount)
	assert.Equal(t, int64(3), metrics.GetStats().Bytes)
}

func TestDigest_HardwareSumSkipsDevice(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	dev, sim := newSimDevice()
	h, err := NewHash(Modbus, WithDevice(dev), WithMetricsCollector(metrics))
	require.NoError(t, err)

	assert.Equal(t, uint32(ChecksumModbus(nil)), h.Sum32())

	h.Write(check)
	sim.ResetStats()
	assert.Equal(t, uint32(0x4B37), h.Sum32())
	assert.Equal(t, uint32(0x4B37), h.Sum32())
	assert.Zero(t, sim.Stats())
	assert.Equal(t, int64(1), metrics.GetStats().HardwareCount)

	h.Reset()
	assert.Equal(t, uint32(ChecksumModbus(nil)), h.Sum32())
}
