// Package shawetaylor implements the FIPS 186-4 C.6 Shawe–Taylor provable
// prime construction, per spec.md §4.5.
package shawetaylor

import (
	"encoding/binary"

	"github.com/go-errors/errors"

	"github.com/go-fips186/primegen/big"
	"github.com/go-fips186/primegen/digest"
	"github.com/go-fips186/primegen/sieve"
)

// ErrInvalidArgument reports a precondition violation: a nil hash, a
// length below 2, or a nil/empty seed.
var ErrInvalidArgument = errors.New("primegen/shawetaylor: invalid argument")

// ErrGenerationExhausted reports that the construction exceeded its
// iteration budget (spec.md §4.5, §7) — either 4*length in the base case,
// or 4*length+old_counter in the recursive case. Pathological inputs or an
// adversarial seed can trigger this; callers should retry with a fresh
// seed.
var ErrGenerationExhausted = errors.New("primegen/shawetaylor: generation budget exhausted")

// Output is the result of GenerateRandomPrime, per spec.md §3.
type Output struct {
	// Prime has bit_length(Prime) == the requested length.
	Prime *big.Int
	// PrimeSeed is the seed after all hash-generator increments; its
	// length equals the input seed's length.
	PrimeSeed []byte
	// PrimeGenCounter is cumulative across recursion levels.
	PrimeGenCounter int
}

// GenerateRandomPrime constructs a provable prime of the given bit length
// from an externally supplied digest and seed, per spec.md §4.5 (FIPS
// 186-4 C.6). The input seed is never mutated; GenerateRandomPrime clones
// it before use.
func GenerateRandomPrime(h digest.Digest, length int, seed []byte) (Output, error) {
	if h == nil || length < 2 || len(seed) == 0 {
		return Output{}, ErrInvalidArgument
	}

	working := make([]byte, len(seed))
	copy(working, seed)

	return generate(h, length, working)
}

func generate(h digest.Digest, length int, seed []byte) (Output, error) {
	if length < 33 {
		return generateBase(h, length, seed)
	}
	return generateRecursive(h, length, seed)
}

// generateBase implements the length < 33 base case of spec.md §4.5.
func generateBase(h digest.Digest, length int, seed []byte) (Output, error) {
	cLen := h.Size()
	if cLen < 4 {
		cLen = 4
	}
	pad := cLen - h.Size()

	counter := 0
	for {
		c0 := make([]byte, cLen)
		h.BlockUpdate(seed, 0, len(seed))
		h.DoFinal(c0, pad)
		incSeed(seed, 1)

		c1 := make([]byte, cLen)
		h.BlockUpdate(seed, 0, len(seed))
		h.DoFinal(c1, pad)
		incSeed(seed, 1)

		c := binary.BigEndian.Uint32(c0[:4]) ^ binary.BigEndian.Uint32(c1[:4])

		c &= ^uint32(0) >> uint(32-length)
		c |= (uint32(1) << uint(length-1)) | 1

		counter++
		if sieve.IsPrimeU32(c) {
			return Output{Prime: big.ValueOf(c), PrimeSeed: seed, PrimeGenCounter: counter}, nil
		}
		if counter > 4*length {
			return Output{}, ErrGenerationExhausted
		}
	}
}

// generateRecursive implements the length >= 33 recursive case of
// spec.md §4.5.
func generateRecursive(h digest.Digest, length int, seed []byte) (Output, error) {
	recLength := (length + 3) / 2
	rec, err := generate(h, recLength, seed)
	if err != nil {
		return Output{}, err
	}

	c0 := rec.Prime
	seed = rec.PrimeSeed
	counter := rec.PrimeGenCounter
	oldCounter := counter

	outLen := 8 * h.Size()
	iterations := (length - 1) / outLen

	pow := new(big.Int).Lsh(big.One(), uint(length-1))

	x := hashGen(h, seed, iterations+1)
	x.Mod(x, pow)
	x.Or(x, pow)

	c0x2 := new(big.Int).Lsh(c0, 1)

	computeT2 := func(numerator *big.Int) *big.Int {
		t := new(big.Int).Div(numerator, c0x2)
		t.Add(t, big.One())
		return t.Lsh(t, 1)
	}

	t2 := computeT2(new(big.Int).Sub(x, big.One()))
	dt := 0
	c := new(big.Int).Add(new(big.Int).Mul(t2, c0), big.One())

	for {
		if big.BitLength(c) > length {
			t2 = computeT2(new(big.Int).Sub(pow, big.One()))
			c = new(big.Int).Add(new(big.Int).Mul(t2, c0), big.One())
		}

		counter++

		if sieve.HasAnySmallFactors(c) {
			incSeed(seed, uint64(iterations+1))
		} else {
			a := hashGen(h, seed, iterations+1)
			cMinusThree := new(big.Int).Sub(c, big.Three())
			a.Mod(a, cMinusThree)
			a.Add(a, big.Two())

			t2.Add(t2, big.NewInt(int64(dt)))
			dt = 0

			z := new(big.Int).Exp(a, t2, c)
			zMinusOne := new(big.Int).Sub(z, big.One())
			zMinusOne.Abs(zMinusOne)

			g := new(big.Int).GCD(nil, nil, c, zMinusOne)
			if g.Cmp(big.One()) == 0 {
				zc0 := new(big.Int).Exp(z, c0, c)
				if zc0.Cmp(big.One()) == 0 {
					return Output{Prime: c, PrimeSeed: seed, PrimeGenCounter: counter}, nil
				}
			}
		}

		if counter >= 4*length+oldCounter {
			return Output{}, ErrGenerationExhausted
		}

		dt += 2
		c = new(big.Int).Add(c, c0x2)
	}
}

// hashGen allocates a count*digest_size buffer, writes count successive
// hash(seed) outputs into it tail-to-head (the first hash at the
// highest-address slot), incrementing seed by 1 after each (count
// increments in all), and returns
// the buffer parsed as a non-negative BigInt. The seed increment mutates
// the caller's buffer in place, per spec.md §4.5/§9.
func hashGen(h digest.Digest, seed []byte, count int) *big.Int {
	size := h.Size()
	buf := make([]byte, count*size)
	for i := 0; i < count; i++ {
		h.BlockUpdate(seed, 0, len(seed))
		h.DoFinal(buf, (count-1-i)*size)
		incSeed(seed, 1)
	}
	return new(big.Int).SetBytes(buf)
}

// incSeed treats seed as a big-endian counter and adds c to it in place,
// carry propagating from the least significant byte leftward. Overflow
// past the most significant byte is silently discarded, per spec.md §4.5.
func incSeed(seed []byte, c uint64) {
	for i := len(seed) - 1; i >= 0 && c != 0; i-- {
		sum := uint64(seed[i]) + c
		seed[i] = byte(sum)
		c = sum >> 8
	}
}
