package table

import (
	"sync"
	"unsafe"

	"github.com/hupe1980/fastcrc/internal/bitops"
)

//go:generate go run ./cmd/gentable -o tables_gen.go

// Word is the storage type of a table entry.
type Word interface {
	~uint8 | ~uint16 | ~uint32
}

// Table holds the precomputed partial sums of one CRC polynomial.
//
// Slices[0] is the classic byte table: Slices[0][i] is the register after
// feeding byte i into a zero register. Slices[k] additionally folds k zero
// bytes, which lets Update consume four bytes with four independent probes.
//
// Reflected tables are right-aligned. Normal tables are left-aligned in the
// storage width, so a 7-bit CRC uses the 8-bit table of poly<<1.
type Table[T Word] struct {
	Width     uint8
	Poly      uint32
	Reflected bool
	Slices    [4][256]T
}

// Make builds the table for a width-bit polynomial given in normal
// (MSB-first, implicit top bit) notation.
func Make[T Word](width uint8, poly uint32, reflected bool) *Table[T] {
	t := &Table[T]{Width: width, Poly: poly, Reflected: reflected}
	storage := uint(unsafe.Sizeof(T(0))) * 8

	if reflected {
		rpoly := bitops.Reflect(poly, uint(width))
		for i := range 256 {
			crc := uint32(i)
			for range 8 {
				if crc&1 != 0 {
					crc = crc>>1 ^ rpoly
				} else {
					crc >>= 1
				}
			}
			t.Slices[0][i] = T(crc)
		}
		for k := 1; k < 4; k++ {
			for i := range 256 {
				prev := uint32(t.Slices[k-1][i])
				t.Slices[k][i] = T(prev>>8 ^ uint32(t.Slices[0][byte(prev)]))
			}
		}
		return t
	}

	mask := bitops.Mask(storage)
	top := uint32(1) << (storage - 1)
	p := poly << (storage - uint(width))
	for i := range 256 {
		crc := uint32(i) << (storage - 8)
		for range 8 {
			if crc&top != 0 {
				crc = crc<<1 ^ p
			} else {
				crc <<= 1
			}
		}
		t.Slices[0][i] = T(crc & mask)
	}
	for k := 1; k < 4; k++ {
		for i := range 256 {
			prev := uint32(t.Slices[k-1][i])
			t.Slices[k][i] = T((prev<<8 ^ uint32(t.Slices[0][byte(prev>>(storage-8))])) & mask)
		}
	}
	return t
}

type key struct {
	storage   uintptr
	width     uint8
	poly      uint32
	reflected bool
}

var cache sync.Map // key -> *Table[T]

// For returns the shared table for the given parameters. Catalog tables come
// from the generated data; anything else is built once and cached.
func For[T Word](width uint8, poly uint32, reflected bool) *Table[T] {
	k := key{storage: unsafe.Sizeof(T(0)), width: width, poly: poly, reflected: reflected}
	if t, ok := cache.Load(k); ok {
		return t.(*Table[T])
	}
	if t, ok := lookupGenerated(k).(*Table[T]); ok {
		actual, _ := cache.LoadOrStore(k, t)
		return actual.(*Table[T])
	}
	actual, _ := cache.LoadOrStore(k, Make[T](width, poly, reflected))
	return actual.(*Table[T])
}

func lookupGenerated(k key) any {
	for _, g := range generated {
		if g.storage == k.storage && g.width == k.width && g.poly == k.poly && g.reflected == k.reflected {
			return g.table
		}
	}
	return nil
}

type generatedTable struct {
	key
	table any
}

var generated = []generatedTable{
	{key{1, 7, 0x09, false}, crc7},
	{key{1, 8, 0x07, false}, smbus},
	{key{1, 8, 0x31, true}, maxim},
	{key{2, 16, 0x1021, false}, ccitt},
	{key{2, 16, 0x1021, true}, kermit},
	{key{2, 16, 0x8005, true}, modbus},
	{key{4, 32, 0x04C11DB7, true}, crc32},
	{key{4, 32, 0x04C11DB7, false}, cksum},
}
