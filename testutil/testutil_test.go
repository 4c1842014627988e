package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitwiseCheckValues(t *testing.T) {
	check := []byte("123456789")
	tests := []struct {
		name string
		p    Params
		want uint32
	}{
		{"crc7", Params{Width: 7, Poly: 0x09}, 0x75},
		{"smbus", Params{Width: 8, Poly: 0x07}, 0xF4},
		{"maxim", Params{Width: 8, Poly: 0x31, RefIn: true, RefOut: true}, 0xA1},
		{"ccitt", Params{Width: 16, Poly: 0x1021, Init: 0xFFFF}, 0x29B1},
		{"x25", Params{Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFF}, 0x906E},
		{"crc32", Params{Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}, 0xCBF43926},
		{"cksum", Params{Width: 32, Poly: 0x04C11DB7, XorOut: 0xFFFFFFFF}, 0x765E7680},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bitwise(tt.p, check))
		})
	}
}

func TestBitwiseEmpty(t *testing.T) {
	p := Params{Width: 16, Poly: 0x1021, Init: 0x1234, XorOut: 0x00FF}
	assert.Equal(t, uint32(0x12CB), Bitwise(p, nil))
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	assert.Equal(t, a.Bytes(64), b.Bytes(64))
	assert.Equal(t, int64(42), a.Seed())

	first := a.Uint32()
	a.Reset()
	a.Bytes(64)
	assert.Equal(t, first, a.Uint32())
	assert.Len(t, a.Bytes(0), 0)
	assert.Less(t, a.Intn(10), 10)
}
