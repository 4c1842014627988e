package fastcrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariant_CatalogValid(t *testing.T) {
	for _, a := range Algorithms() {
		assert.NotEmpty(t, a.Aliases, a.Name)
	}
	require.NoError(t, CRC7.Validate())
	require.NoError(t, SMBus.Validate())
	require.NoError(t, Maxim.Validate())
	require.NoError(t, CCITT.Validate())
	require.NoError(t, MCRF4XX.Validate())
	require.NoError(t, Modbus.Validate())
	require.NoError(t, Kermit.Validate())
	require.NoError(t, XModem.Validate())
	require.NoError(t, X25.Validate())
	require.NoError(t, CRC32.Validate())
	require.NoError(t, CKSum.Validate())
}

func TestVariant_Validate(t *testing.T) {
	t.Run("width", func(t *testing.T) {
		for _, err := range []error{
			Variant[uint8]{Width: 16}.Validate(),
			Variant[uint8]{Width: 0}.Validate(),
			Variant[uint16]{Width: 8}.Validate(),
			Variant[uint16]{Width: 12}.Validate(),
			Variant[uint32]{Width: 16}.Validate(),
		} {
			var iv *ErrInvalidVariant
			require.ErrorAs(t, err, &iv)
			assert.ErrorIs(t, err, ErrInvalidWidth)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		for _, err := range []error{
			Variant[uint8]{Name: "p", Width: 7, Poly: 0x89}.Validate(),
			Variant[uint8]{Name: "i", Width: 7, Poly: 0x09, Init: 0x80}.Validate(),
			Variant[uint8]{Name: "x", Width: 7, Poly: 0x09, XorOut: 0xFF}.Validate(),
		} {
			assert.ErrorIs(t, err, ErrParamOverflow)
		}
	})

	t.Run("error text", func(t *testing.T) {
		err := Variant[uint16]{Name: "odd", Width: 12}.Validate()
		assert.EqualError(t, err, `invalid variant "odd" (width 12): `+ErrInvalidWidth.Error())
	})
}

func TestVariant_Flags(t *testing.T) {
	assert.Equal(t, FlagNoReflect, CCITT.Flags())
	assert.Equal(t, FlagReflect, Modbus.Flags())
	assert.Equal(t, FlagReflect|FlagXorOut, X25.Flags())
	assert.Equal(t, FlagReflect|FlagXorOut, CRC32.Flags())
	assert.Equal(t, FlagXorOut, CKSum.Flags())

	partial := Variant[uint16]{Width: 16, XorOut: 0x00FF}
	assert.Equal(t, FlagNoReflect, partial.Flags())
}

func TestVariant_FromFlagsRoundTrip(t *testing.T) {
	for _, v := range []Variant[uint16]{CCITT, MCRF4XX, Modbus, Kermit, XModem, X25} {
		got := FromFlags(v.Width, v.Poly, v.Init, v.Flags())
		assert.Equal(t, v.Check, Checksum(got, check), v.Name)
	}
	v := FromFlags[uint32](32, 0x04C11DB7, 0, FlagReflectSwap)
	assert.True(t, v.RefIn)
	assert.True(t, v.RefOut)
	assert.True(t, v.SwapOut)
	assert.Zero(t, v.XorOut)
}

func TestFlags_String(t *testing.T) {
	assert.Equal(t, "none", FlagNoReflect.String())
	assert.Equal(t, "refin|refout", FlagReflect.String())
	assert.Equal(t, "refin|refout|swapout", FlagReflectSwap.String())
	assert.Equal(t, "xorout", FlagXorOut.String())
}
