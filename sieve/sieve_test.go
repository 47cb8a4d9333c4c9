package sieve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-fips186/primegen/big"
)

func TestHasAnySmallFactorsKnownValues(t *testing.T) {
	require.True(t, HasAnySmallFactors(big.NewInt(211)))
	require.False(t, HasAnySmallFactors(big.NewInt(223)))
	require.True(t, HasAnySmallFactors(big.NewInt(221))) // 13*17
}

func TestHasAnySmallFactorsCompleteness(t *testing.T) {
	// P1: for every prime p <= 211, has_any_small_factors(k*p) holds for k up to a sample bound.
	for _, p := range []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43,
		47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
		127, 131, 137, 139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193,
		197, 199, 211} {
		for k := int64(1); k <= 1000; k++ {
			require.True(t, HasAnySmallFactors(big.NewInt(k*p)),
				"expected %d*%d to have a small factor", k, p)
		}
	}
}

func TestHasAnySmallFactorsSoundnessOnPrimes(t *testing.T) {
	// P2: primes strictly between 211 and a sample bound must pass the sieve.
	for _, q := range []int64{223, 227, 229, 233, 239, 241, 251, 257, 263, 269,
		271, 277, 281, 283, 293, 307, 311, 313, 317, 331, 337, 347, 349, 353} {
		require.False(t, HasAnySmallFactors(big.NewInt(q)), "expected %d to pass the sieve", q)
	}
}
