package sieve

// smallPrimeMask encodes, bit-for-bit, which values below 31 are prime:
// bit x is set iff x is prime. Spec.md §4.3 pins this exact constant.
const smallPrimeMask = 0x208A28AC

// coprimeToThirtyMask encodes, bit-for-bit, which residues mod 30 are
// coprime to 30 (i.e. not divisible by 2, 3 or 5): {1,7,11,13,17,19,23,29}.
const coprimeToThirtyMask = 0x208A2882

// wheelOffsets is the wheel-2-3-5 step sequence within one block of 30,
// per spec.md §4.3.
var wheelOffsets = [8]uint32{1, 7, 11, 13, 17, 19, 23, 29}

// IsPrimeU32 decides primality exactly for any candidate fitting in an
// unsigned 32-bit word, per spec.md §4.3.
func IsPrimeU32(x uint32) bool {
	if x < 31 {
		return (smallPrimeMask>>x)&1 == 1
	}

	mod30 := x % 30
	if (coprimeToThirtyMask>>mod30)&1 == 0 {
		return false
	}

	base := uint32(0)
	for {
		for _, off := range wheelOffsets {
			d := base + off
			if d <= 1 {
				continue
			}
			if x%d == 0 {
				return x == d
			}
		}

		base += 30
		if base > 0xFFFF || uint64(base)*uint64(base) >= uint64(x) {
			return true
		}
	}
}
