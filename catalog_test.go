package fastcrc

import (
	"testing"

	"github.com/hupe1980/fastcrc/peripheral"
	"github.com/hupe1980/fastcrc/testutil"
	"github.com/stretchr/testify/require"
)

// engine32 erases the result type so one test body covers every variant.
type engine32 interface {
	Compute([]byte) uint32
	Update([]byte) uint32
	Reset()
}

type widen[T Word] struct{ e Engine[T] }

func (w widen[T]) Compute(p []byte) uint32 { return uint32(w.e.Compute(p)) }
func (w widen[T]) Update(p []byte) uint32  { return uint32(w.e.Update(p)) }
func (w widen[T]) Reset()                  { w.e.Reset() }

type testCase struct {
	name     string
	width    uint8
	check    uint32
	params   testutil.Params
	checksum func([]byte) uint32
	software func(t *testing.T, opts ...Option) engine32
	hardware func(t *testing.T, dev *peripheral.Device, opts ...Option) engine32
}

func caseOf[T Word](v Variant[T]) testCase {
	return testCase{
		name:  v.Name,
		width: v.Width,
		check: uint32(v.Check),
		params: testutil.Params{
			Width:  uint(v.Width),
			Poly:   uint32(v.Poly),
			Init:   uint32(v.Init),
			RefIn:  v.RefIn,
			RefOut: v.RefOut,
			XorOut: uint32(v.XorOut),
		},
		checksum: func(p []byte) uint32 { return uint32(Checksum(v, p)) },
		software: func(t *testing.T, opts ...Option) engine32 {
			e, err := NewSoftware(v, opts...)
			require.NoError(t, err)
			return widen[T]{e}
		},
		hardware: func(t *testing.T, dev *peripheral.Device, opts ...Option) engine32 {
			e, err := NewHardware(dev, v, opts...)
			require.NoError(t, err)
			return widen[T]{e}
		},
	}
}

var testCatalog = []testCase{
	caseOf(CRC7),
	caseOf(SMBus),
	caseOf(Maxim),
	caseOf(CCITT),
	caseOf(MCRF4XX),
	caseOf(Modbus),
	caseOf(Kermit),
	caseOf(XModem),
	caseOf(X25),
	caseOf(CRC32),
	caseOf(CKSum),
}

func newSimDevice() (*peripheral.Device, *peripheral.Simulator) {
	sim := peripheral.NewSimulator()
	return peripheral.NewDevice(sim, nil), sim
}

// backends runs fn once per engine implementation.
func backends(t *testing.T, fn func(t *testing.T, tc testCase, newEngine func() engine32)) {
	for _, tc := range testCatalog {
		t.Run(tc.name+"/software", func(t *testing.T) {
			fn(t, tc, func() engine32 { return tc.software(t) })
		})
		t.Run(tc.name+"/hardware", func(t *testing.T) {
			dev, _ := newSimDevice()
			fn(t, tc, func() engine32 { return tc.hardware(t, dev) })
		})
	}
}
