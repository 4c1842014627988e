package table

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedMatchesMake(t *testing.T) {
	for _, g := range generated {
		name := fmt.Sprintf("w%d/poly%#x/ref=%t", g.width, g.poly, g.reflected)
		t.Run(name, func(t *testing.T) {
			switch tab := g.table.(type) {
			case *Table[uint8]:
				assert.Equal(t, Make[uint8](g.width, g.poly, g.reflected), tab)
			case *Table[uint16]:
				assert.Equal(t, Make[uint16](g.width, g.poly, g.reflected), tab)
			case *Table[uint32]:
				assert.Equal(t, Make[uint32](g.width, g.poly, g.reflected), tab)
			default:
				t.Fatalf("unexpected table type %T", g.table)
			}
		})
	}
}

func TestByteContribution(t *testing.T) {
	// Slices[0][i] must equal the register after feeding byte i bit by bit
	// into a zero register.
	tab := Make[uint16](16, 0x1021, false)
	for i := range 256 {
		crc := uint16(i) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
		require.Equal(t, crc, tab.Slices[0][i], "entry %d", i)
	}

	rtab := Make[uint8](8, 0x31, true)
	for i := range 256 {
		crc := uint8(i)
		for range 8 {
			if crc&1 != 0 {
				crc = crc>>1 ^ 0x8C
			} else {
				crc >>= 1
			}
		}
		require.Equal(t, crc, rtab.Slices[0][i], "entry %d", i)
	}
}

func TestKnownEntries(t *testing.T) {
	assert.Equal(t, uint32(0x77073096), crc32.Slices[0][1])
	assert.Equal(t, uint32(0x04C11DB7), cksum.Slices[0][1])
	assert.Equal(t, uint16(0xC0C1), modbus.Slices[0][1])
	assert.Equal(t, uint16(0x1189), kermit.Slices[0][1])
	assert.Equal(t, uint16(0x1021), ccitt.Slices[0][1])
	assert.Equal(t, uint8(0x07), smbus.Slices[0][1])
	assert.Equal(t, uint8(0x5E), maxim.Slices[0][1])
	assert.Equal(t, uint8(0x12), crc7.Slices[0][1])
}

func TestForReturnsShared(t *testing.T) {
	a := For[uint16](16, 0x8005, true)
	b := For[uint16](16, 0x8005, true)
	assert.Same(t, a, b)
	assert.Same(t, modbus, a)

	c := For[uint16](16, 0x3D65, false)
	d := For[uint16](16, 0x3D65, false)
	assert.Same(t, c, d)
	assert.Equal(t, Make[uint16](16, 0x3D65, false), c)
}

func TestUpdateMatchesBytewise(t *testing.T) {
	rng := rand.New(rand.NewSource(4711))
	buf := make([]byte, 512)
	rng.Read(buf)

	tables := map[string]interface {
		Update(uint32, []byte) uint32
		UpdateBytewise(uint32, []byte) uint32
	}{
		"crc7":   crc7,
		"smbus":  smbus,
		"maxim":  maxim,
		"ccitt":  ccitt,
		"kermit": kermit,
		"modbus": modbus,
		"crc32":  crc32,
		"cksum":  cksum,
		"custom": Make[uint32](32, 0x1EDC6F41, false),
	}

	for name, tab := range tables {
		t.Run(name, func(t *testing.T) {
			for off := range 4 {
				for n := 0; n <= 300; n++ {
					p := buf[off : off+n]
					seed := rng.Uint32()
					require.Equal(t, tab.UpdateBytewise(seed, p), tab.Update(seed, p), "offset %d length %d", off, n)
				}
			}
		})
	}
}

func TestHead(t *testing.T) {
	buf := make([]byte, 16)
	for off := range 4 {
		n := head(buf[off:])
		assert.Less(t, n, 4)
		assert.Equal(t, 0, head(buf[off:off]))
		assert.LessOrEqual(t, head(buf[off:off+1]), 1)
	}
}

func BenchmarkUpdate(b *testing.B) {
	buf := make([]byte, 4096)
	for _, tc := range []struct {
		name string
		up   func(uint32, []byte) uint32
	}{
		{"crc32/sliced", crc32.Update},
		{"crc32/bytewise", crc32.UpdateBytewise},
		{"ccitt/sliced", ccitt.Update},
		{"ccitt/bytewise", ccitt.UpdateBytewise},
	} {
		b.Run(tc.name, func(b *testing.B) {
			b.SetBytes(int64(len(buf)))
			for b.Loop() {
				tc.up(0, buf)
			}
		})
	}
}
