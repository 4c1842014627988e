package peripheral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransposeApply(t *testing.T) {
	tests := []struct {
		name string
		tr   Transpose
		v    uint32
		size uint
		want uint32
	}{
		{"none", TransposeNone, 0x12345678, 4, 0x12345678},
		{"bytes/4", TransposeBytes, 0x12345678, 4, 0x78563412},
		{"bytes/2", TransposeBytes, 0x1234, 2, 0x3412},
		{"bits", TransposeBits, 0x01020380, 4, 0x8040C001},
		{"bits+bytes/4", TransposeBitsBytes, 0x00000001, 4, 0x80000000},
		{"bits+bytes/2", TransposeBitsBytes, 0x0001, 2, 0x8000},
		{"bits+bytes/1", TransposeBitsBytes, 0x01, 1, 0x80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.Apply(tt.v, tt.size)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.v, tt.tr.Apply(got, tt.size), "transpositions are involutions")
		})
	}
}

func TestTransposeString(t *testing.T) {
	assert.Equal(t, "none", TransposeNone.String())
	assert.Equal(t, "bits", TransposeBits.String())
	assert.Equal(t, "bits+bytes", TransposeBitsBytes.String())
	assert.Equal(t, "bytes", TransposeBytes.String())
	assert.Equal(t, "unknown", Transpose(7).String())
}

func TestControl(t *testing.T) {
	tests := []struct {
		name                        string
		refIn, refOut, swap, invert bool
		tot, totr                   Transpose
		fxor                        bool
	}{
		{name: "plain", tot: TransposeBytes, totr: TransposeNone},
		{name: "reflect", refIn: true, refOut: true, invert: true, tot: TransposeBitsBytes, totr: TransposeBitsBytes, fxor: true},
		{name: "swap", swap: true, tot: TransposeBytes, totr: TransposeBytes},
		{name: "reflect+swap", refIn: true, refOut: true, swap: true, tot: TransposeBitsBytes, totr: TransposeBits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := Control(tt.refIn, tt.refOut, tt.swap, tt.invert)
			assert.Equal(t, tt.tot, WriteTranspose(ctrl))
			assert.Equal(t, tt.totr, ReadTranspose(ctrl))
			assert.Equal(t, tt.fxor, ctrl&(1<<CtrlFXOR) != 0)
			assert.NotZero(t, ctrl&(1<<CtrlTCRC))
			assert.Zero(t, ctrl&(1<<CtrlWAS))
		})
	}
}

func TestBitBandAlias(t *testing.T) {
	ctrl := DefaultBase + OffsetCtrl
	assert.Equal(t, uint64(0x42640100), BitBandAlias(DefaultBitBandRef, DefaultBitBandBase, ctrl, 0))
	assert.Equal(t, uint64(0x42640164), BitBandAlias(DefaultBitBandRef, DefaultBitBandBase, ctrl, CtrlWAS))
	assert.Equal(t, uint64(0x42640174), BitBandAlias(DefaultBitBandRef, DefaultBitBandBase, ctrl, CtrlTOTR1))
}
