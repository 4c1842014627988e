package fastcrc

import (
	"hash/crc32"
	"testing"

	"github.com/hupe1980/fastcrc/testutil"
	"github.com/sigurn/crc16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var check = []byte(CheckInput)

func TestChecksum_NamedFunctions(t *testing.T) {
	assert.Equal(t, uint8(0x75), ChecksumCRC7(check))
	assert.Equal(t, uint8(0xF4), ChecksumSMBus(check))
	assert.Equal(t, uint8(0xA1), ChecksumMaxim(check))
	assert.Equal(t, uint16(0x29B1), ChecksumCCITT(check))
	assert.Equal(t, uint16(0x6F91), ChecksumMCRF4XX(check))
	assert.Equal(t, uint16(0x4B37), ChecksumModbus(check))
	assert.Equal(t, uint16(0x2189), ChecksumKermit(check))
	assert.Equal(t, uint16(0x31C3), ChecksumXModem(check))
	assert.Equal(t, uint16(0x906E), ChecksumX25(check))
	assert.Equal(t, uint32(0xCBF43926), ChecksumCRC32(check))
	assert.Equal(t, uint32(0x765E7680), ChecksumCKSum(check))
}

func TestChecksum_NamedUpdate(t *testing.T) {
	a, b := check[:4], check[4:]
	assert.Equal(t, uint8(0x75), UpdateCRC7(ChecksumCRC7(a), b))
	assert.Equal(t, uint8(0xF4), UpdateSMBus(ChecksumSMBus(a), b))
	assert.Equal(t, uint8(0xA1), UpdateMaxim(ChecksumMaxim(a), b))
	assert.Equal(t, uint16(0x29B1), UpdateCCITT(ChecksumCCITT(a), b))
	assert.Equal(t, uint16(0x6F91), UpdateMCRF4XX(ChecksumMCRF4XX(a), b))
	assert.Equal(t, uint16(0x4B37), UpdateModbus(ChecksumModbus(a), b))
	assert.Equal(t, uint16(0x2189), UpdateKermit(ChecksumKermit(a), b))
	assert.Equal(t, uint16(0x31C3), UpdateXModem(ChecksumXModem(a), b))
	assert.Equal(t, uint16(0x906E), UpdateX25(ChecksumX25(a), b))
	assert.Equal(t, uint32(0xCBF43926), UpdateCRC32(ChecksumCRC32(a), b))
	assert.Equal(t, uint32(0x765E7680), UpdateCKSum(ChecksumCKSum(a), b))
}

func TestChecksum_UpdateMatchesHashCRC32(t *testing.T) {
	rng := testutil.NewRNG(11)
	for range 50 {
		a, b := rng.Bytes(rng.Intn(100)), rng.Bytes(rng.Intn(100))
		crc := crc32.ChecksumIEEE(a)
		assert.Equal(t, crc32.Update(crc, crc32.IEEETable, b), UpdateCRC32(crc, b))
	}
}

func TestChecksum_Oracles(t *testing.T) {
	rng := testutil.NewRNG(5)
	inputs := [][]byte{nil, check}
	for range 20 {
		inputs = append(inputs, rng.Bytes(rng.Intn(600)))
	}

	t.Run("hash/crc32", func(t *testing.T) {
		for _, p := range inputs {
			assert.Equal(t, crc32.ChecksumIEEE(p), ChecksumCRC32(p))
		}
	})

	sixteen := []struct {
		name   string
		params crc16.Params
		fn     func([]byte) uint16
	}{
		{"ccitt", crc16.Params{Poly: 0x1021, Init: 0xFFFF, Name: "CRC-16/CCITT-FALSE"}, ChecksumCCITT},
		{"mcrf4xx", crc16.Params{Poly: 0x1021, Init: 0xFFFF, RefIn: true, RefOut: true, Name: "CRC-16/MCRF4XX"}, ChecksumMCRF4XX},
		{"modbus", crc16.Params{Poly: 0x8005, Init: 0xFFFF, RefIn: true, RefOut: true, Name: "CRC-16/MODBUS"}, ChecksumModbus},
		{"kermit", crc16.Params{Poly: 0x1021, RefIn: true, RefOut: true, Name: "CRC-16/KERMIT"}, ChecksumKermit},
		{"xmodem", crc16.Params{Poly: 0x1021, Name: "CRC-16/XMODEM"}, ChecksumXModem},
		{"x25", crc16.Params{Poly: 0x1021, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFF, Name: "CRC-16/X-25"}, ChecksumX25},
	}
	for _, tc := range sixteen {
		t.Run("crc16/"+tc.name, func(t *testing.T) {
			table := crc16.MakeTable(tc.params)
			for _, p := range inputs {
				assert.Equal(t, crc16.Checksum(p, table), tc.fn(p))
			}
		})
	}
}

func TestChecksum_Generic(t *testing.T) {
	assert.Equal(t, uint8(0xF4), Generic[uint8](0x07, 0, FlagNoReflect, check))
	assert.Equal(t, uint8(0xA1), Generic[uint8](0x31, 0, FlagReflect, check))
	assert.Equal(t, uint16(0x2189), Generic[uint16](0x1021, 0, FlagReflect, check))
	assert.Equal(t, uint16(0x8921), Generic[uint16](0x1021, 0, FlagReflectSwap, check))
	assert.Equal(t, uint16(0x906E), Generic[uint16](0x1021, 0xFFFF, FlagReflect|FlagXorOut, check))
	assert.Equal(t, uint32(0xCBF43926), Generic[uint32](0x04C11DB7, 0xFFFFFFFF, FlagReflect|FlagXorOut, check))
	assert.Equal(t, uint32(0x765E7680), Generic[uint32](0x04C11DB7, 0, FlagXorOut, check))

	// CRC-32C through the same path as an accelerated kernel.
	assert.Equal(t, uint32(0xE3069283), Generic[uint32](0x1EDC6F41, 0xFFFFFFFF, FlagReflect|FlagXorOut, check))
}

func TestChecksum_UpdateInvertsTransform(t *testing.T) {
	for _, tc := range testCatalog {
		t.Run(tc.name, func(t *testing.T) {
			data := testutil.NewRNG(int64(tc.width)).Bytes(100)
			e := tc.software(t)
			for _, i := range []int{0, 1, 33, 99, 100} {
				e.Compute(data[:i])
				require.Equal(t, tc.checksum(data), e.Update(data[i:]))
			}
		})
	}

	v := FromFlags[uint16](16, 0x1021, 0x1D0F, FlagReflectSwap|FlagXorOut)
	for i := range check {
		assert.Equal(t, Checksum(v, check), Update(v, Checksum(v, check[:i]), check[i:]), "split %d", i)
	}
}

func TestChecksum_PanicsOnInvalidVariant(t *testing.T) {
	assert.Panics(t, func() { Checksum(Variant[uint8]{Width: 16}, check) })
	assert.Panics(t, func() { Update(Variant[uint32]{Width: 16}, 0, check) })
}

func BenchmarkChecksum(b *testing.B) {
	buf := testutil.NewRNG(1).Bytes(64 << 10)
	for _, bc := range []struct {
		name string
		fn   func([]byte) uint32
	}{
		{"crc32", ChecksumCRC32},
		{"cksum", ChecksumCKSum},
		{"modbus", func(p []byte) uint32 { return uint32(ChecksumModbus(p)) }},
		{"ccitt", func(p []byte) uint32 { return uint32(ChecksumCCITT(p)) }},
		{"maxim", func(p []byte) uint32 { return uint32(ChecksumMaxim(p)) }},
		{"hash/crc32", crc32.ChecksumIEEE},
	} {
		b.Run(bc.name, func(b *testing.B) {
			b.SetBytes(int64(len(buf)))
			for b.Loop() {
				bc.fn(buf)
			}
		})
	}
}
