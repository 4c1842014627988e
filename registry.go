package fastcrc

import (
	"context"
	"hash"
	"strings"
)

// Algorithm is a width-erased catalog entry, for callers that select the
// variant at runtime.
type Algorithm struct {
	Name    string
	Aliases []string
	Width   uint8
	Poly    uint32
	Init    uint32
	RefIn   bool
	RefOut  bool
	XorOut  uint32
	Check   uint32

	checksum func([]byte) uint32
	update   func(uint32, []byte) uint32
	newHash  func(options) (backendHash, error)
}

// backendHash is a Digest of any width.
type backendHash interface {
	hash.Hash32
	Backend() Backend
}

func algorithmOf[T Word](v Variant[T]) Algorithm {
	k := newKernel(v.mustValidate(), true)
	return Algorithm{
		Name:     v.Name,
		Aliases:  v.Aliases,
		Width:    v.Width,
		Poly:     uint32(v.Poly),
		Init:     uint32(v.Init),
		RefIn:    v.RefIn,
		RefOut:   v.RefOut,
		XorOut:   uint32(v.XorOut),
		Check:    uint32(v.Check),
		checksum: func(p []byte) uint32 { return uint32(k.checksum(p)) },
		update:   func(crc uint32, p []byte) uint32 { return uint32(k.resume(T(crc), p)) },
		newHash: func(o options) (backendHash, error) {
			d, err := newHash(v, o)
			if err != nil {
				return nil, err
			}
			return d, nil
		},
	}
}

var algorithms = []Algorithm{
	algorithmOf(CRC7),
	algorithmOf(SMBus),
	algorithmOf(Maxim),
	algorithmOf(CCITT),
	algorithmOf(MCRF4XX),
	algorithmOf(Modbus),
	algorithmOf(Kermit),
	algorithmOf(XModem),
	algorithmOf(X25),
	algorithmOf(CRC32),
	algorithmOf(CKSum),
}

// Algorithms returns the catalog in width order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// Lookup finds an algorithm by name or alias, ignoring case.
func Lookup(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, a := range algorithms {
		if a.Name == n {
			return a, nil
		}
		for _, alias := range a.Aliases {
			if alias == n {
				return a, nil
			}
		}
	}
	return Algorithm{}, &ErrUnknownVariant{Name: name}
}

// Checksum returns the software CRC of data.
func (a Algorithm) Checksum(data []byte) uint32 { return a.checksum(data) }

// Update continues a checksum returned by Checksum.
func (a Algorithm) Update(crc uint32, data []byte) uint32 { return a.update(crc, data) }

// NewHash returns a hash.Hash32 over an engine built with optFns.
func (a Algorithm) NewHash(optFns ...Option) (hash.Hash32, error) {
	return a.newHash(applyOptions(optFns))
}

// Verify computes the check string on an engine built with optFns and
// compares it to the catalog check value. The result is logged through the
// engine's logger.
func (a Algorithm) Verify(optFns ...Option) error {
	o := applyOptions(optFns)
	h, err := a.newHash(o)
	if err != nil {
		return err
	}
	_, _ = h.Write([]byte(CheckInput))
	got := h.Sum32()
	backend := h.Backend()

	o.logger.LogCheck(context.Background(), a.Name, backend, a.Check, got)
	if got != a.Check {
		return &ErrCheckMismatch{Name: a.Name, Backend: backend, Want: a.Check, Got: got}
	}
	return nil
}
