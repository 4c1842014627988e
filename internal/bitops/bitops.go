// Package bitops provides bit reflection and byte swapping at arbitrary CRC widths.
package bitops

import "math/bits"

// Mask returns a mask with the low width bits set.
func Mask(width uint) uint32 {
	if width >= 32 {
		return 0xFFFFFFFF
	}
	return 1<<width - 1
}

// Reflect reverses the low width bits of v. Bits above width are discarded.
func Reflect(v uint32, width uint) uint32 {
	if width == 0 {
		return 0
	}
	return bits.Reverse32(v) >> (32 - width)
}

// Swap reverses the byte order of v within size bytes (1, 2 or 4).
// A single byte is returned unchanged.
func Swap(v uint32, size uint) uint32 {
	switch size {
	case 2:
		return uint32(bits.ReverseBytes16(uint16(v)))
	case 4:
		return bits.ReverseBytes32(v)
	default:
		return v
	}
}

// ReflectBytes reverses the bit order inside each byte of v, keeping byte order.
func ReflectBytes(v uint32) uint32 {
	return bits.ReverseBytes32(bits.Reverse32(v))
}

// StorageBits returns the register size used to hold a CRC of the given width.
func StorageBits(width uint) uint {
	switch {
	case width <= 8:
		return 8
	case width <= 16:
		return 16
	default:
		return 32
	}
}
