package primegen

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-fips186/primegen/big"
	"github.com/go-fips186/primegen/digest"
	"github.com/go-fips186/primegen/random"
)

func TestFacadeGeneratesAndConfirmsAPrime(t *testing.T) {
	out, err := GenerateRandomPrime(digest.FromHash(sha256.New()), 128, []byte{0x01, 0x02})
	require.NoError(t, err)
	require.Equal(t, 128, big.BitLength(out.Prime))

	rng := random.NewCryptoSource()
	ok, err := IsProbablePrime(out.Prime, rng, 20)
	require.NoError(t, err)
	require.True(t, ok)

	require.False(t, HasAnySmallFactors(out.Prime))
}

func TestFacadeSmallFactorLimitMatchesSieve(t *testing.T) {
	require.Equal(t, 211, SmallFactorLimit)
}

func TestFacadeEnhancedTestReportsCompositeWitness(t *testing.T) {
	rng := random.NewCryptoSource()
	out, err := EnhancedProbablePrimeTest(big.NewInt(91), rng, 10)
	require.NoError(t, err)
	require.True(t, out.ProvablyComposite())
}
