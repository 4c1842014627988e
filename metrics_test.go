package fastcrc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	dev, _ := newSimDevice()

	sw, err := New(Kermit, WithMetricsCollector(metrics))
	require.NoError(t, err)
	hw, err := New(Kermit, WithMetricsCollector(metrics), WithDevice(dev))
	require.NoError(t, err)

	sw.Compute(check)
	sw.Update(check)
	hw.Compute(check[:4])

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.ComputeCount)
	assert.Equal(t, int64(2), stats.SoftwareCount)
	assert.Equal(t, int64(1), stats.HardwareCount)
	assert.Equal(t, int64(22), stats.Bytes)
	assert.GreaterOrEqual(t, stats.AvgNanos, int64(0))
	assert.Zero(t, stats.ReseedCount)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	var m BasicMetricsCollector
	assert.Equal(t, BasicMetricsStats{}, m.GetStats())

	m.RecordCompute(BackendAuto, 10, time.Millisecond)
	m.RecordReseed()
	stats := m.GetStats()
	assert.Equal(t, int64(1), stats.ComputeCount)
	assert.Zero(t, stats.SoftwareCount+stats.HardwareCount)
	assert.Equal(t, int64(time.Millisecond), stats.AvgNanos)
	assert.Equal(t, int64(1), stats.ReseedCount)
}

func TestNilOptionsFallBack(t *testing.T) {
	e, err := New(SMBus, WithMetricsCollector(nil), WithLogger(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xF4), e.Compute(check))
}

func TestEnginesSkipTimingWithoutCollector(t *testing.T) {
	assert.False(t, recordsCompute(NoopMetricsCollector{}))
	assert.True(t, recordsCompute(&BasicMetricsCollector{}))

	sw, err := NewSoftware(CRC32)
	require.NoError(t, err)
	assert.False(t, sw.timed)
	assert.Equal(t, CRC32.Check, sw.Compute(check))

	sw, err = NewSoftware(CRC32, WithMetricsCollector(&BasicMetricsCollector{}))
	require.NoError(t, err)
	assert.True(t, sw.timed)

	dev, _ := newSimDevice()
	hw, err := NewHardware(dev, CRC32)
	require.NoError(t, err)
	assert.False(t, hw.timed)
	assert.Equal(t, CRC32.Check, hw.Compute(check))
}
