package primegen

import (
	"github.com/go-fips186/primegen/big"
	"github.com/go-fips186/primegen/digest"
	"github.com/go-fips186/primegen/millerrabin"
	"github.com/go-fips186/primegen/random"
	"github.com/go-fips186/primegen/shawetaylor"
	"github.com/go-fips186/primegen/sieve"
)

// SmallFactorLimit is the largest prime HasAnySmallFactors tests against,
// per spec.md §4.2.
const SmallFactorLimit = sieve.SmallFactorLimit

// GenerateRandomPrime constructs a provable prime of the given bit length,
// per spec.md §4.5 (FIPS 186-4 C.6). See package shawetaylor.
func GenerateRandomPrime(hash digest.Digest, length int, seed []byte) (shawetaylor.Output, error) {
	Logger.WithField("length", length).Debug("generating Shawe-Taylor prime")
	out, err := shawetaylor.GenerateRandomPrime(hash, length, seed)
	if err != nil {
		Logger.WithError(err).Debug("Shawe-Taylor generation failed")
		return out, err
	}
	Logger.WithField("prime_gen_counter", out.PrimeGenCounter).Debug("Shawe-Taylor generation succeeded")
	return out, nil
}

// EnhancedProbablePrimeTest is the FIPS 186-4 C.3.2 test. See package
// millerrabin.
func EnhancedProbablePrimeTest(candidate *big.Int, rng random.Source, iterations int) (millerrabin.Output, error) {
	return millerrabin.EnhancedProbablePrimeTest(candidate, rng, iterations)
}

// IsProbablePrime is the plain FIPS 186-4 C.3.1 test. See package
// millerrabin.
func IsProbablePrime(candidate *big.Int, rng random.Source, iterations int) (bool, error) {
	return millerrabin.IsProbablePrime(candidate, rng, iterations)
}

// IsProbablePrimeToBase is the fixed-base FIPS 186-4 C.3.1 variant. See
// package millerrabin.
func IsProbablePrimeToBase(candidate, base *big.Int) (bool, error) {
	return millerrabin.IsProbablePrimeToBase(candidate, base)
}

// HasAnySmallFactors runs the small-factor sieve. See package sieve.
func HasAnySmallFactors(candidate *big.Int) bool {
	return sieve.HasAnySmallFactors(candidate)
}
