package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name  string
		v     uint32
		width uint
		want  uint32
	}{
		{"crc7 poly", 0x09, 7, 0x48},
		{"maxim poly", 0x31, 8, 0x8C},
		{"ccitt poly", 0x1021, 16, 0x8408},
		{"modbus poly", 0x8005, 16, 0xA001},
		{"ieee poly", 0x04C11DB7, 32, 0xEDB88320},
		{"discards high bits", 0x1FF, 8, 0xFF},
		{"zero width", 0xFFFF, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reflect(tt.v, tt.width))
		})
	}
}

func TestReflectInvolution(t *testing.T) {
	for _, w := range []uint{7, 8, 16, 32} {
		for _, v := range []uint32{0, 1, 0x5A, 0x1234, 0xDEADBEEF} {
			v &= Mask(w)
			assert.Equal(t, v, Reflect(Reflect(v, w), w), "width %d value %#x", w, v)
		}
	}
}

func TestSwap(t *testing.T) {
	assert.Equal(t, uint32(0x12), Swap(0x12, 1))
	assert.Equal(t, uint32(0x3412), Swap(0x1234, 2))
	assert.Equal(t, uint32(0x78563412), Swap(0x12345678, 4))
}

func TestReflectBytes(t *testing.T) {
	assert.Equal(t, uint32(0x80402010), ReflectBytes(0x01020408))
	assert.Equal(t, uint32(0xFF00FF00), ReflectBytes(0xFF00FF00))
}

func TestMaskAndStorage(t *testing.T) {
	assert.Equal(t, uint32(0x7F), Mask(7))
	assert.Equal(t, uint32(0xFFFF), Mask(16))
	assert.Equal(t, uint32(0xFFFFFFFF), Mask(32))

	assert.Equal(t, uint(8), StorageBits(7))
	assert.Equal(t, uint(8), StorageBits(8))
	assert.Equal(t, uint(16), StorageBits(16))
	assert.Equal(t, uint(32), StorageBits(32))
}
