package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	r.rand.Read(b)
	return b
}

// Params are the Rocksoft model parameters of a CRC.
type Params struct {
	Width  uint
	Poly   uint32
	Init   uint32
	RefIn  bool
	RefOut bool
	XorOut uint32
}

// Bitwise computes the CRC of data one bit at a time.
func Bitwise(p Params, data []byte) uint32 {
	mask := uint32(1)<<p.Width - 1
	if p.Width == 32 {
		mask = 0xFFFFFFFF
	}
	top := uint32(1) << (p.Width - 1)

	crc := p.Init & mask
	for _, b := range data {
		if p.RefIn {
			b = reverse8(b)
		}
		for i := 7; i >= 0; i-- {
			bit := uint32(b>>uint(i)) & 1
			if (crc&top != 0) != (bit != 0) {
				crc = (crc<<1 ^ p.Poly) & mask
			} else {
				crc = crc << 1 & mask
			}
		}
	}

	if p.RefOut {
		crc = reverse(crc, p.Width)
	}
	return (crc ^ p.XorOut) & mask
}

func reverse8(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		r = r<<1 | b&1
		b >>= 1
	}
	return r
}

func reverse(v uint32, width uint) uint32 {
	var r uint32
	for i := uint(0); i < width; i++ {
		r = r<<1 | v&1
		v >>= 1
	}
	return r
}
