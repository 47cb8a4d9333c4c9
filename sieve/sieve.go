// Package sieve implements the small-factor sieve and the 32-bit exact
// primality tester of spec.md §4.2/§4.3.
package sieve

import (
	"github.com/go-fips186/primegen/big"
)

// SmallFactorLimit is the largest prime the sieve tests against, per
// spec.md §4.2.
const SmallFactorLimit = 211

// smallFactorGroup bundles a set of small primes whose product fits in a
// uint32, so that HasAnySmallFactors needs only one big.Int modulus per
// group followed by cheap machine-word remainder checks. The exact
// groupings are part of the contract (spec.md §4.2): they are preserved
// group-for-group rather than simply sorted into uint64-sized buckets.
type smallFactorGroup struct {
	primes  []uint32
	product uint32
}

var smallFactorGroups = []smallFactorGroup{
	{primes: []uint32{2, 3, 5, 7, 11, 13, 17, 19, 23}, product: 223092870},
	{primes: []uint32{29, 31, 37, 41, 43}, product: 58642669},
	{primes: []uint32{47, 53, 59, 61, 67}, product: 600662303},
	{primes: []uint32{71, 73, 79, 83}, product: 33984931},
	{primes: []uint32{89, 97, 101, 103}, product: 89809099},
	{primes: []uint32{107, 109, 113, 127}, product: 167375713},
	{primes: []uint32{131, 137, 139, 149}, product: 371700317},
	{primes: []uint32{151, 157, 163, 167}, product: 645328247},
	{primes: []uint32{173, 179, 181, 191}, product: 1070560157},
	{primes: []uint32{193, 197, 199, 211}, product: 1596463769},
}

// HasAnySmallFactors reports whether candidate is divisible by any prime
// up to SmallFactorLimit. Precondition: candidate >= 2 (spec.md §4.2).
func HasAnySmallFactors(candidate *big.Int) bool {
	for _, group := range smallFactorGroups {
		rem := new(big.Int).Mod(candidate, big.ValueOf(group.product))
		remainder := uint32(rem.Uint64())
		for _, p := range group.primes {
			if remainder%p == 0 {
				return true
			}
		}
	}
	return false
}
