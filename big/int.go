// Package big contains a mostly API-compatible "math/big".Int, extended with
// the few domain operations the prime engine needs on top of it (uniform
// ranged sampling, a zero/one/two-aware bit length). Kept as a thin wrapper
// rather than a fresh bignum implementation so the engine above reads like
// ordinary big.Int-calling Go.
package big

import (
	"math/big"

	"github.com/go-errors/errors"

	"github.com/go-fips186/primegen/random"
)

// Int is an API-compatible "math/big".Int.
type Int big.Int

// Convert from a "math/big".Int.
func Convert(x *big.Int) *Int {
	return (*Int)(x)
}

// Go converts to a "math/big".Int.
func (i *Int) Go() *big.Int {
	return (*big.Int)(i)
}

// "math/big".Int API.
// We are liberal with using the conversion functions above; these are inlined by the compiler.

func NewInt(x int64) *Int { return Convert(big.NewInt(x)) }

func (i *Int) Bit(j int) uint           { return i.Go().Bit(j) }
func (i *Int) Bytes() []byte            { return i.Go().Bytes() }
func (i *Int) BitLen() int              { return i.Go().BitLen() }
func (i *Int) Int64() int64             { return i.Go().Int64() }
func (i *Int) Uint64() uint64           { return i.Go().Uint64() }
func (i *Int) IsInt64() bool            { return i.Go().IsInt64() }
func (i *Int) IsUint64() bool           { return i.Go().IsUint64() }
func (i *Int) Sign() int                { return i.Go().Sign() }
func (i *Int) Cmp(y *Int) int           { return i.Go().Cmp(y.Go()) }
func (i *Int) CmpAbs(y *Int) int        { return i.Go().CmpAbs(y.Go()) }
func (i *Int) ProbablyPrime(n int) bool { return i.Go().ProbablyPrime(n) }
func (i *Int) String() string           { return i.Go().String() }
func (i *Int) Text(base int) string     { return i.Go().Text(base) }
func (i *Int) SetInt64(x int64) *Int    { return Convert(i.Go().SetInt64(x)) }
func (i *Int) SetUint64(x uint64) *Int  { return Convert(i.Go().SetUint64(x)) }
func (i *Int) Set(x *Int) *Int          { return Convert(i.Go().Set(x.Go())) }
func (i *Int) Abs(x *Int) *Int          { return Convert(i.Go().Abs(x.Go())) }
func (i *Int) Neg(x *Int) *Int          { return Convert(i.Go().Neg(x.Go())) }
func (i *Int) Add(x, y *Int) *Int       { return Convert(i.Go().Add(x.Go(), y.Go())) }
func (i *Int) Sub(x, y *Int) *Int       { return Convert(i.Go().Sub(x.Go(), y.Go())) }
func (i *Int) Mul(x, y *Int) *Int       { return Convert(i.Go().Mul(x.Go(), y.Go())) }
func (i *Int) Quo(x, y *Int) *Int       { return Convert(i.Go().Quo(x.Go(), y.Go())) }
func (i *Int) Rem(x, y *Int) *Int       { return Convert(i.Go().Rem(x.Go(), y.Go())) }
func (i *Int) Div(x, y *Int) *Int       { return Convert(i.Go().Div(x.Go(), y.Go())) }
func (i *Int) Mod(x, y *Int) *Int       { return Convert(i.Go().Mod(x.Go(), y.Go())) }
func (i *Int) SetBytes(buf []byte) *Int { return Convert(i.Go().SetBytes(buf)) }
func (i *Int) Lsh(x *Int, n uint) *Int  { return Convert(i.Go().Lsh(x.Go(), n)) }
func (i *Int) Rsh(x *Int, n uint) *Int  { return Convert(i.Go().Rsh(x.Go(), n)) }
func (i *Int) Or(x, y *Int) *Int        { return Convert(i.Go().Or(x.Go(), y.Go())) }
func (i *Int) Xor(x, y *Int) *Int       { return Convert(i.Go().Xor(x.Go(), y.Go())) }
func (i *Int) And(x, y *Int) *Int       { return Convert(i.Go().And(x.Go(), y.Go())) }
func (i *Int) Exp(x, y, m *Int) *Int    { return Convert(i.Go().Exp(x.Go(), y.Go(), m.Go())) }
func (i *Int) GCD(x, y, a, b *Int) *Int {
	return Convert(i.Go().GCD(x.Go(), y.Go(), a.Go(), b.Go()))
}
func (i *Int) SetString(s string, base int) (*Int, bool) {
	z, ok := i.Go().SetString(s, base)
	return Convert(z), ok
}

// Well-known small values. Each call returns a fresh Int so callers can
// never observe or corrupt a shared instance by mutating their copy.
func Zero() *Int  { return NewInt(0) }
func One() *Int   { return NewInt(1) }
func Two() *Int   { return NewInt(2) }
func Three() *Int { return NewInt(3) }

// ValueOf constructs a BigInt from a uint32, per spec.md §4.1.
func ValueOf(x uint32) *Int {
	return Convert(new(big.Int).SetUint64(uint64(x)))
}

// SetBytesSigned constructs i from a big-endian magnitude tagged with a
// sign, per spec.md §4.1 ("constructor from a big-endian byte array tagged
// with sign").
func (i *Int) SetBytesSigned(sign int, magnitude []byte) *Int {
	i.SetBytes(magnitude)
	if sign < 0 {
		i.Neg(i)
	}
	return i
}

// BitLength returns the minimum number of bits needed to represent |x|;
// zero has length 0, one has length 1, two has length 2 (spec.md §4.1).
func BitLength(x *Int) int {
	return x.BitLen()
}

// ErrInvalidRange reports min > max in CreateRandomInRange.
var ErrInvalidRange = errors.New("primegen/big: min must not exceed max")

// CreateRandomInRange uniformly samples an integer in the inclusive
// interval [min, max] using rng's raw uint32 stream, by rejection over the
// smallest number of output bits that cover the range (spec.md §4.1).
//
// When min == max the value is returned without consulting rng, matching
// spec.md's contract.
func CreateRandomInRange(min, max *Int, rng random.Source) (*Int, error) {
	if min.Cmp(max) > 0 {
		return nil, ErrInvalidRange
	}
	if min.Cmp(max) == 0 {
		return new(Int).Set(min), nil
	}

	span := new(Int).Sub(max, min)
	bits := uint(span.BitLen())

	for {
		candidate, err := randomBits(bits, rng)
		if err != nil {
			return nil, err
		}
		if candidate.Cmp(span) <= 0 {
			return new(Int).Add(min, candidate), nil
		}
	}
}

// randomBits draws a uniformly random non-negative integer with at most
// `bits` significant bits from rng, one uint32 word at a time.
func randomBits(bits uint, rng random.Source) (*Int, error) {
	if bits == 0 {
		return NewInt(0), nil
	}

	words := (bits + 31) / 32
	result := NewInt(0)
	for w := uint(0); w < words; w++ {
		v, err := rng.Uint32()
		if err != nil {
			return nil, err
		}

		// The first word drawn lands at the most significant position, so
		// it alone is masked down to the bits we still need.
		if w == 0 {
			rem := bits - 32*(words-1)
			if rem < 32 {
				v &= uint32(1)<<rem - 1
			}
		}

		result.Lsh(result, 32)
		result.Or(result, ValueOf(v))
	}
	return result, nil
}
