// Package millerrabin implements the FIPS 186-4 C.3 Miller–Rabin
// probabilistic primality tests (plain and enhanced), per spec.md §4.4.
package millerrabin

import (
	"github.com/go-errors/errors"

	"github.com/go-fips186/primegen/big"
	"github.com/go-fips186/primegen/random"
)

// ErrInvalidArgument reports a precondition violation: a nil candidate or
// rng, a non-positive iteration count, a candidate below 2, or a fixed
// base outside [2, candidate-2].
var ErrInvalidArgument = errors.New("primegen/millerrabin: invalid argument")

// Output is the tri-valued verdict of EnhancedProbablePrimeTest
// (spec.md §3): exactly one of ProbablyPrime, ProvablyCompositeWithFactor,
// or ProvablyCompositeNotPrimePower is reachable. The zero value is
// ProbablyPrime; callers should use the constructors below rather than
// building an Output by hand.
type Output struct {
	provablyComposite bool
	factor            *big.Int
}

// ProbablyPrime builds the "no witness found" verdict.
func ProbablyPrime() Output {
	return Output{}
}

// ProvablyCompositeWithFactor builds the verdict carrying a nontrivial
// factor of the candidate, with 1 < factor < candidate.
func ProvablyCompositeWithFactor(factor *big.Int) Output {
	return Output{provablyComposite: true, factor: factor}
}

// ProvablyCompositeNotPrimePower builds the verdict for a candidate proven
// composite without exhibiting a factor.
func ProvablyCompositeNotPrimePower() Output {
	return Output{provablyComposite: true}
}

// ProvablyComposite reports whether the candidate was proven composite.
func (o Output) ProvablyComposite() bool {
	return o.provablyComposite
}

// Factor returns the witnessed factor and whether one was found.
func (o Output) Factor() (*big.Int, bool) {
	return o.factor, o.factor != nil
}

// IsNotPrimePower is the derived predicate of spec.md §3: true iff the
// candidate was proven composite without a witnessed factor.
func (o Output) IsNotPrimePower() bool {
	return o.provablyComposite && o.factor == nil
}

func validateCommon(candidate *big.Int, rng random.Source, iterations int) error {
	if candidate == nil || big.BitLength(candidate) < 2 {
		return ErrInvalidArgument
	}
	if rng == nil {
		return ErrInvalidArgument
	}
	if iterations < 1 {
		return ErrInvalidArgument
	}
	return nil
}

// decompose splits candidateMinusOne = m * 2^a with m odd.
func decompose(candidateMinusOne *big.Int) (m *big.Int, a int) {
	m = new(big.Int).Set(candidateMinusOne)
	for m.Bit(0) == 0 {
		m.Rsh(m, 1)
		a++
	}
	return m, a
}

// probablePrimeToBase is the shared FIPS 186-4 C.3.1 witness loop, used by
// both IsProbablePrime (random bases) and IsProbablePrimeToBase (a caller
// supplied fixed base).
func probablePrimeToBase(candidate, candidateMinusOne, m *big.Int, a int, base *big.Int) bool {
	z := new(big.Int).Exp(base, m, candidate)
	if z.Cmp(big.One()) == 0 || z.Cmp(candidateMinusOne) == 0 {
		return true
	}
	for j := 0; j < a-1; j++ {
		z.Exp(z, big.Two(), candidate)
		if z.Cmp(candidateMinusOne) == 0 {
			return true
		}
		if z.Cmp(big.One()) == 0 {
			return false
		}
	}
	return false
}

// IsProbablePrime is the plain FIPS 186-4 C.3.1 test: iterations rounds,
// each drawing a fresh random base. Returns false on the first round that
// fails to accept candidate as probably prime.
func IsProbablePrime(candidate *big.Int, rng random.Source, iterations int) (bool, error) {
	if err := validateCommon(candidate, rng, iterations); err != nil {
		return false, err
	}
	if big.BitLength(candidate) == 2 {
		return true, nil
	}
	if candidate.Bit(0) == 0 {
		return false, nil
	}

	candidateMinusOne := new(big.Int).Sub(candidate, big.One())
	m, a := decompose(candidateMinusOne)
	upper := new(big.Int).Sub(candidate, big.Two())

	for i := 0; i < iterations; i++ {
		base, err := big.CreateRandomInRange(big.Two(), upper, rng)
		if err != nil {
			return false, err
		}
		if !probablePrimeToBase(candidate, candidateMinusOne, m, a, base) {
			return false, nil
		}
	}
	return true, nil
}

// IsProbablePrimeToBase is the fixed-base FIPS 186-4 C.3.1 variant: a
// single witness-loop invocation against the caller-supplied base.
func IsProbablePrimeToBase(candidate, base *big.Int) (bool, error) {
	if candidate == nil || big.BitLength(candidate) < 2 || base == nil {
		return false, ErrInvalidArgument
	}

	candidateMinusOne := new(big.Int).Sub(candidate, big.One())
	candidateMinusTwo := new(big.Int).Sub(candidate, big.Two())
	if base.Cmp(big.Two()) < 0 || base.Cmp(candidateMinusTwo) > 0 {
		return false, ErrInvalidArgument
	}

	if big.BitLength(candidate) == 2 {
		return true, nil
	}
	if candidate.Bit(0) == 0 {
		return false, nil
	}

	m, a := decompose(candidateMinusOne)
	return probablePrimeToBase(candidate, candidateMinusOne, m, a, base), nil
}

// EnhancedProbablePrimeTest is the FIPS 186-4 C.3.2 test: like
// IsProbablePrime, but additionally extracts a nontrivial factor of the
// candidate when one surfaces during the witness search, per spec.md §4.4.
func EnhancedProbablePrimeTest(candidate *big.Int, rng random.Source, iterations int) (Output, error) {
	if err := validateCommon(candidate, rng, iterations); err != nil {
		return Output{}, err
	}
	if big.BitLength(candidate) == 2 {
		return ProbablyPrime(), nil
	}
	if candidate.Bit(0) == 0 {
		return ProvablyCompositeWithFactor(big.Two()), nil
	}

	candidateMinusOne := new(big.Int).Sub(candidate, big.One())
	m, a := decompose(candidateMinusOne)
	upper := new(big.Int).Sub(candidate, big.Two())

	for i := 0; i < iterations; i++ {
		base, err := big.CreateRandomInRange(big.Two(), upper, rng)
		if err != nil {
			return Output{}, err
		}

		g := new(big.Int).GCD(nil, nil, base, candidate)
		if g.Cmp(big.One()) > 0 {
			return ProvablyCompositeWithFactor(g), nil
		}

		z := new(big.Int).Exp(base, m, candidate)
		if z.Cmp(big.One()) == 0 || z.Cmp(candidateMinusOne) == 0 {
			continue
		}

		x := new(big.Int).Set(z)
		primeToBase := false
		for j := 0; j < a-1; j++ {
			x.Set(z)
			z.Exp(z, big.Two(), candidate)
			if z.Cmp(candidateMinusOne) == 0 {
				primeToBase = true
				break
			}
			if z.Cmp(big.One()) == 0 {
				break
			}
		}
		if primeToBase {
			continue
		}

		if z.Cmp(big.One()) != 0 {
			x.Set(z)
			zSquared := new(big.Int).Exp(z, big.Two(), candidate)
			if zSquared.Cmp(big.One()) != 0 {
				x.Set(zSquared)
			}
		}

		xMinusOne := new(big.Int).Sub(x, big.One())
		xMinusOne.Abs(xMinusOne)
		g2 := new(big.Int).GCD(nil, nil, xMinusOne, candidate)
		if g2.Cmp(big.One()) > 0 {
			return ProvablyCompositeWithFactor(g2), nil
		}
		return ProvablyCompositeNotPrimePower(), nil
	}

	return ProbablyPrime(), nil
}
