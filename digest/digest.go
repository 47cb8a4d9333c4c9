// Package digest defines the hash capability the Shawe–Taylor generator
// consumes (spec.md §6) and an adapter from the standard library's
// hash.Hash to that shape.
package digest

import "hash"

// Digest is the hash collaborator required by spec.md §6.
type Digest interface {
	// Size returns the number of bytes do_final writes.
	Size() int
	// BlockUpdate absorbs length bytes of p starting at offset.
	BlockUpdate(p []byte, offset, length int)
	// DoFinal writes Size() bytes to out starting at offset and resets
	// internal state. Returns the number of bytes written.
	DoFinal(out []byte, offset int) int
}

// hashDigest adapts a hash.Hash to the Digest interface.
type hashDigest struct {
	h hash.Hash
}

// FromHash adapts any standard library hash.Hash (sha256.New(),
// sha512.New(), sha3.New256(), …) to the Digest capability.
func FromHash(h hash.Hash) Digest {
	return &hashDigest{h: h}
}

func (d *hashDigest) Size() int {
	return d.h.Size()
}

func (d *hashDigest) BlockUpdate(p []byte, offset, length int) {
	d.h.Write(p[offset : offset+length])
}

func (d *hashDigest) DoFinal(out []byte, offset int) int {
	sum := d.h.Sum(nil)
	n := copy(out[offset:], sum)
	d.h.Reset()
	return n
}
