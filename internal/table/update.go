package table

import (
	"encoding/binary"
	"unsafe"
)

// Update feeds p into the register crc and returns the new register.
//
// Reflected registers are right-aligned in crc. Normal registers are
// left-aligned in all 32 bits regardless of width; callers shift on the way
// in and out.
func (t *Table[T]) Update(crc uint32, p []byte) uint32 {
	if t.Reflected {
		return t.updateReflected(crc, p)
	}
	return t.updateNormal(crc, p)
}

// UpdateBytewise is the single-table reference path used to validate Update.
func (t *Table[T]) UpdateBytewise(crc uint32, p []byte) uint32 {
	s0 := &t.Slices[0]
	if t.Reflected {
		for _, b := range p {
			crc = uint32(s0[byte(crc)^b]) ^ crc>>8
		}
		return crc
	}
	sh := t.shift()
	for _, b := range p {
		crc = crc<<8 ^ uint32(s0[byte(crc>>24)^b])<<sh
	}
	return crc
}

func (t *Table[T]) updateReflected(crc uint32, p []byte) uint32 {
	s := &t.Slices

	n := head(p)
	for _, b := range p[:n] {
		crc = uint32(s[0][byte(crc)^b]) ^ crc>>8
	}
	p = p[n:]

	for len(p) >= 16 {
		crc = t.foldReflected(crc, binary.LittleEndian.Uint32(p))
		crc = t.foldReflected(crc, binary.LittleEndian.Uint32(p[4:]))
		crc = t.foldReflected(crc, binary.LittleEndian.Uint32(p[8:]))
		crc = t.foldReflected(crc, binary.LittleEndian.Uint32(p[12:]))
		p = p[16:]
	}
	for len(p) >= 4 {
		crc = t.foldReflected(crc, binary.LittleEndian.Uint32(p))
		p = p[4:]
	}

	for _, b := range p {
		crc = uint32(s[0][byte(crc)^b]) ^ crc>>8
	}
	return crc
}

func (t *Table[T]) foldReflected(crc, word uint32) uint32 {
	s := &t.Slices
	crc ^= word
	return uint32(s[3][byte(crc)] ^ s[2][byte(crc>>8)] ^ s[1][byte(crc>>16)] ^ s[0][crc>>24])
}

func (t *Table[T]) updateNormal(crc uint32, p []byte) uint32 {
	s := &t.Slices
	sh := t.shift()

	n := head(p)
	for _, b := range p[:n] {
		crc = crc<<8 ^ uint32(s[0][byte(crc>>24)^b])<<sh
	}
	p = p[n:]

	for len(p) >= 16 {
		crc = t.foldNormal(crc, binary.BigEndian.Uint32(p), sh)
		crc = t.foldNormal(crc, binary.BigEndian.Uint32(p[4:]), sh)
		crc = t.foldNormal(crc, binary.BigEndian.Uint32(p[8:]), sh)
		crc = t.foldNormal(crc, binary.BigEndian.Uint32(p[12:]), sh)
		p = p[16:]
	}
	for len(p) >= 4 {
		crc = t.foldNormal(crc, binary.BigEndian.Uint32(p), sh)
		p = p[4:]
	}

	for _, b := range p {
		crc = crc<<8 ^ uint32(s[0][byte(crc>>24)^b])<<sh
	}
	return crc
}

func (t *Table[T]) foldNormal(crc, word uint32, sh uint) uint32 {
	s := &t.Slices
	crc ^= word
	return uint32(s[3][crc>>24]^s[2][byte(crc>>16)]^s[1][byte(crc>>8)]^s[0][byte(crc)]) << sh
}

// shift is the distance between a left-aligned table entry and bit 31.
func (t *Table[T]) shift() uint {
	return 32 - uint(unsafe.Sizeof(T(0)))*8
}

// head returns how many leading bytes precede the first 4-byte aligned
// address in p, capped at len(p).
func head(p []byte) int {
	if len(p) == 0 {
		return 0
	}
	n := int(-uintptr(unsafe.Pointer(unsafe.SliceData(p))) & 3)
	return min(n, len(p))
}
