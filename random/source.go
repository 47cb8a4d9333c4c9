// Package random defines the RNG capability the prime engine consumes
// (spec.md §6) and a crypto/rand-backed implementation of it.
package random

import (
	"crypto/rand"
	"encoding/binary"
)

// Source is the RNG capability required by spec.md §6: uniform unbiased
// sampling sufficient to support big.CreateRandomInRange, shaped as a
// next_u32 primitive.
type Source interface {
	Uint32() (uint32, error)
}

// CryptoSource implements Source over crypto/rand. It holds no state of
// its own and is safe for concurrent use, provided each concurrent caller
// treats its own CreateRandomInRange call sequence as independent — per
// spec.md §5, the engine never shares a Source across calls.
type CryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.Reader.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// Uint32 reads four bytes from crypto/rand.Reader and returns them as a
// big-endian unsigned integer.
func (s *CryptoSource) Uint32() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}
