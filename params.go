package fastcrc

import "github.com/hupe1980/fastcrc/internal/bitops"

// params is a Variant widened to uint32 for the kernels.
//
// The software register is right-aligned when RefIn is set and left-aligned
// in 32 bits otherwise. finish and unfinish convert between that register
// and the output value; both are bijections, so a returned checksum can be
// resumed.
type params struct {
	width   uint
	storage uint
	poly    uint32
	init    uint32
	xorOut  uint32
	refIn   bool
	refOut  bool
	swapOut bool
}

func paramsOf[T Word](v Variant[T]) params {
	return params{
		width:   uint(v.Width),
		storage: sizeBits[T](),
		poly:    uint32(v.Poly),
		init:    uint32(v.Init),
		xorOut:  uint32(v.XorOut),
		refIn:   v.RefIn,
		refOut:  v.RefOut,
		swapOut: v.SwapOut,
	}
}

// seed returns the software register holding init.
func (p params) seed() uint32 {
	return p.align(p.init)
}

func (p params) align(v uint32) uint32 {
	if p.refIn {
		return bitops.Reflect(v, p.width)
	}
	return v << (32 - p.width)
}

// finish maps a software register to the output value.
func (p params) finish(reg uint32) uint32 {
	var v uint32
	if p.refIn {
		v = reg & bitops.Mask(p.width)
	} else {
		v = reg >> (32 - p.width)
	}
	if p.refIn != p.refOut {
		v = bitops.Reflect(v, p.width)
	}
	v ^= p.xorOut
	if p.swapOut {
		v = bitops.Swap(v, p.storage/8)
	}
	return v
}

// unfinish is the inverse of finish.
func (p params) unfinish(out uint32) uint32 {
	v := out
	if p.swapOut {
		v = bitops.Swap(v, p.storage/8)
	}
	v = (v ^ p.xorOut) & bitops.Mask(p.width)
	if p.refIn != p.refOut {
		v = bitops.Reflect(v, p.width)
	}
	if p.refIn {
		return v
	}
	return v << (32 - p.width)
}
