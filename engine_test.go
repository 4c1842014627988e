package fastcrc

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/hupe1980/fastcrc/internal/bitops"
	"github.com/hupe1980/fastcrc/peripheral"
	"github.com/hupe1980/fastcrc/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_CheckValues(t *testing.T) {
	backends(t, func(t *testing.T, tc testCase, newEngine func() engine32) {
		e := newEngine()
		assert.Equal(t, tc.check, e.Compute([]byte(CheckInput)))
		// A second Compute starts over.
		assert.Equal(t, tc.check, e.Compute([]byte(CheckInput)))
	})
}

func TestEngine_ZeroLength(t *testing.T) {
	backends(t, func(t *testing.T, tc testCase, newEngine func() engine32) {
		want := testutil.Bitwise(tc.params, nil)
		e := newEngine()
		assert.Equal(t, want, e.Compute(nil))
		assert.Equal(t, want, e.Compute([]byte{}))
		assert.Equal(t, want, e.Update(nil), "empty update keeps the value")
	})
}

func TestEngine_IncrementalSplits(t *testing.T) {
	data := testutil.NewRNG(7).Bytes(67)
	backends(t, func(t *testing.T, tc testCase, newEngine func() engine32) {
		e := newEngine()
		whole := e.Compute(data)
		for i := 1; i < len(data); i++ {
			e.Compute(data[:i])
			require.Equal(t, whole, e.Update(data[i:]), "split at %d", i)
		}
	})
}

func TestEngine_UpdateBeforeCompute(t *testing.T) {
	backends(t, func(t *testing.T, tc testCase, newEngine func() engine32) {
		e := newEngine()
		assert.Equal(t, tc.check, e.Update([]byte(CheckInput)))

		e.Update([]byte("garbage"))
		e.Reset()
		assert.Equal(t, tc.check, e.Update([]byte(CheckInput)))
	})
}

func TestEngine_AlignmentBoundaries(t *testing.T) {
	buf := testutil.NewRNG(42).Bytes(80)
	lengths := []int{0, 1, 2, 3, 4, 5, 15, 16, 17, 63, 64, 65}

	backends(t, func(t *testing.T, tc testCase, newEngine func() engine32) {
		e := newEngine()
		for off := range 4 {
			for _, n := range lengths {
				p := buf[off : off+n]
				require.Equal(t, testutil.Bitwise(tc.params, p), e.Compute(p), "offset %d length %d", off, n)
			}
		}
	})
}

func TestEngine_AllLengths(t *testing.T) {
	buf := testutil.NewRNG(1).Bytes(304)
	for _, tc := range testCatalog {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.software(t, WithAcceleration(false))
			for off := range 4 {
				for n := 0; n <= 300; n++ {
					p := buf[off : off+n]
					require.Equal(t, testutil.Bitwise(tc.params, p), e.Compute(p), "offset %d length %d", off, n)
				}
			}
		})
	}
}

func TestEngine_SoftwareHardwareParity(t *testing.T) {
	buf := testutil.NewRNG(1000).Bytes(1000)
	dev, _ := newSimDevice()

	for _, tc := range testCatalog {
		t.Run(tc.name, func(t *testing.T) {
			sw := tc.software(t)
			hw := tc.hardware(t, dev)
			assert.Equal(t, sw.Compute(buf), hw.Compute(buf))
			assert.Equal(t, sw.Compute(buf[3:]), hw.Compute(buf[3:]))
		})
	}
}

func TestEngine_CRC7TopBitClear(t *testing.T) {
	rng := testutil.NewRNG(77)
	dev, _ := newSimDevice()
	hw, err := NewHardware(dev, CRC7)
	require.NoError(t, err)

	for range 500 {
		p := rng.Bytes(rng.Intn(40))
		assert.Zero(t, ChecksumCRC7(p)&0x80)
		assert.Zero(t, hw.Compute(p)&0x80)
	}
}

func TestEngine_AccelerationParity(t *testing.T) {
	buf := testutil.NewRNG(3).Bytes(4096)
	native, err := NewSoftware(CRC32)
	require.NoError(t, err)
	tables, err := NewSoftware(CRC32, WithAcceleration(false))
	require.NoError(t, err)

	assert.False(t, tables.k.native)
	for _, n := range []int{0, 1, 7, 64, 255, 4096} {
		assert.Equal(t, tables.Compute(buf[:n]), native.Compute(buf[:n]))
	}
}

func TestNew_BackendSelection(t *testing.T) {
	dev, _ := newSimDevice()

	e, err := New(Modbus)
	require.NoError(t, err)
	assert.Equal(t, BackendSoftware, e.Backend())

	e, err = New(Modbus, WithDevice(dev))
	require.NoError(t, err)
	assert.Equal(t, BackendHardware, e.Backend())

	e, err = New(Modbus, WithDevice(dev), WithBackend(BackendSoftware))
	require.NoError(t, err)
	assert.Equal(t, BackendSoftware, e.Backend())
	assert.Equal(t, Modbus.Name, e.Variant().Name)

	_, err = New(Modbus, WithBackend(BackendHardware))
	assert.ErrorIs(t, err, ErrNoDevice)

	_, err = NewHardware(nil, CRC32)
	assert.ErrorIs(t, err, ErrNoDevice)
}

func TestNew_InvalidVariant(t *testing.T) {
	bad := Variant[uint16]{Name: "bad", Width: 12, Poly: 0x80F}

	_, err := New(bad)
	var iv *ErrInvalidVariant
	require.ErrorAs(t, err, &iv)
	assert.Equal(t, "bad", iv.Name)
	assert.ErrorIs(t, err, ErrInvalidWidth)

	dev, _ := newSimDevice()
	_, err = New(bad, WithDevice(dev))
	assert.ErrorIs(t, err, ErrInvalidWidth)
}

func TestHardware_StreamsNarrowWrites(t *testing.T) {
	dev, sim := newSimDevice()
	hw, err := NewHardware(dev, CCITT)
	require.NoError(t, err)

	buf := make([]byte, 64)
	sim.ResetStats()
	hw.Compute(buf[:7])
	st := sim.Stats()
	assert.Equal(t, 1, st.Writes32)
	assert.Equal(t, 1, st.Writes16)
	assert.Equal(t, 1, st.Writes8)

	sim.ResetStats()
	hw.Compute(buf[1:8])
	st = sim.Stats()
	assert.Equal(t, 3, st.Writes8, "leading bytes go through the byte alias")
	assert.Equal(t, 1, st.Writes32)
	assert.Zero(t, st.Writes16)
}

func TestHardware_ClockEnabledOnce(t *testing.T) {
	dev, sim := newSimDevice()
	for _, v := range []Variant[uint32]{CRC32, CKSum, CRC32} {
		_, err := NewHardware(dev, v)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, sim.Stats().ClockEnables)
}

func TestHardware_ResumesDisplacedAccumulator(t *testing.T) {
	dev, _ := newSimDevice()
	metrics := &BasicMetricsCollector{}

	a, err := NewHardware(dev, CRC32, WithMetricsCollector(metrics))
	require.NoError(t, err)
	b, err := NewHardware(dev, Modbus)
	require.NoError(t, err)

	a.Compute([]byte("12345"))
	b.Compute([]byte("interleaved"))
	assert.Equal(t, CRC32.Check, a.Update([]byte("6789")))
	assert.Equal(t, int64(1), metrics.GetStats().ReseedCount)

	// No other engine ran in between: no reseed.
	a.Compute([]byte("1234"))
	a.Update([]byte("56789"))
	assert.Equal(t, int64(1), metrics.GetStats().ReseedCount)
}

func TestHardware_ConcurrentEngines(t *testing.T) {
	dev, _ := newSimDevice()
	data := testutil.NewRNG(9).Bytes(4096)

	engines := make([]engine32, len(testCatalog))
	for i, tc := range testCatalog {
		engines[i] = tc.hardware(t, dev)
	}

	var wg sync.WaitGroup
	for i, tc := range testCatalog {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e := engines[i]
			e.Compute(nil)
			var got uint32
			for p := data; len(p) > 0; {
				n := min(37, len(p))
				got = e.Update(p[:n])
				p = p[n:]
			}
			assert.Equal(t, tc.checksum(data), got, tc.name)
		}()
	}
	wg.Wait()
}

func TestHardware_Generic(t *testing.T) {
	dev, _ := newSimDevice()
	hw, err := NewHardware(dev, XModem)
	require.NoError(t, err)

	in := []byte(CheckInput)
	assert.Equal(t, uint16(0x2189), hw.Generic(0x1021, 0, FlagReflect, in))
	assert.Equal(t, uint16(0x8921), hw.Generic(0x1021, 0, FlagReflectSwap, in))
	assert.Equal(t, uint16(0x29B1), hw.Generic(0x1021, 0xFFFF, FlagNoReflect, in))
	assert.Equal(t, "generic", hw.Variant().Name)

	// Continues the generic computation.
	hw.Generic(0x1021, 0xFFFF, FlagNoReflect, in[:4])
	assert.Equal(t, uint16(0x29B1), hw.Update(in[4:]))

	hw32, err := NewHardware(dev, CKSum)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCBF43926), hw32.Generic(0x04C11DB7, 0xFFFFFFFF, FlagReflect|FlagXorOut, in))
}

func TestHardware_PartialXorOut(t *testing.T) {
	// XorOut that is neither zero nor all ones is applied after the read.
	v := Variant[uint16]{Name: "partial", Width: 16, Poly: 0x1021, Init: 0xFFFF, XorOut: 0x00FF}
	dev, _ := newSimDevice()
	hw, err := NewHardware(dev, v)
	require.NoError(t, err)

	p := []byte(CheckInput)
	assert.Equal(t, Checksum(v, p), hw.Compute(p))

	v.SwapOut = true
	hw, err = NewHardware(dev, v)
	require.NoError(t, err)
	assert.Equal(t, Checksum(v, p), hw.Compute(p))
	assert.Equal(t, uint16(bitops.Swap(uint32(CCITT.Check^0x00FF), 2)), hw.Compute(p))
}

func TestOpenDevice_Missing(t *testing.T) {
	_, err := OpenDevice(peripheral.Config{DevicePath: filepath.Join(t.TempDir(), "mem")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDevice)
	assert.ErrorIs(t, err, peripheral.ErrUnavailable)
}
