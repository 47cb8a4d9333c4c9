// Package primegen implements the FIPS 186-4 C.3 Miller–Rabin primality
// tests and the FIPS 186-4 C.6 Shawe–Taylor provable prime construction.
// See the millerrabin, shawetaylor, sieve, digest, random and big
// subpackages for the individual components; this package re-exports
// their public entry points as one convenient surface.
package primegen
