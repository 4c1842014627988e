package fastcrc

import "hash"

// Digest adapts an Engine to hash.Hash32.
//
// Sum appends the checksum big-endian in the size of T, as hash/crc32 does
// for 32-bit sums.
type Digest[T Word] struct {
	engine Engine[T]
}

var _ hash.Hash32 = (*Digest[uint16])(nil)

// NewDigest wraps an engine. The engine's current message continues.
func NewDigest[T Word](e Engine[T]) *Digest[T] {
	return &Digest[T]{engine: e}
}

// NewHash returns a Digest over a new engine for v.
func NewHash[T Word](v Variant[T], optFns ...Option) (*Digest[T], error) {
	return newHash(v, applyOptions(optFns))
}

func newHash[T Word](v Variant[T], o options) (*Digest[T], error) {
	e, err := newEngine(v, o)
	if err != nil {
		return nil, err
	}
	return NewDigest(e), nil
}

// Engine returns the wrapped engine.
func (d *Digest[T]) Engine() Engine[T] { return d.engine }

// Write implements io.Writer. It never returns an error.
func (d *Digest[T]) Write(p []byte) (int, error) {
	d.engine.Update(p)
	return len(p), nil
}

// summer is implemented by the engines of this package. It reads the
// current checksum without recording a compute or touching a device.
type summer[T Word] interface {
	sum() T
}

// Sum32 returns the checksum of everything written since the last Reset.
func (d *Digest[T]) Sum32() uint32 {
	if s, ok := d.engine.(summer[T]); ok {
		return uint32(s.sum())
	}
	return uint32(d.engine.Update(nil))
}

// Sum appends the checksum to b.
func (d *Digest[T]) Sum(b []byte) []byte {
	s := d.Sum32()
	for i := d.Size() - 1; i >= 0; i-- {
		b = append(b, byte(s>>(8*i)))
	}
	return b
}

// Reset implements hash.Hash.
func (d *Digest[T]) Reset() { d.engine.Reset() }

// Size returns the checksum size in bytes.
func (d *Digest[T]) Size() int { return int(sizeBits[T]() / 8) }

// BlockSize implements hash.Hash.
func (d *Digest[T]) BlockSize() int { return 1 }

// Backend reports the backend of the wrapped engine.
func (d *Digest[T]) Backend() Backend { return d.engine.Backend() }
