package big

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-fips186/primegen/random"
)

func TestValueOf(t *testing.T) {
	require.Equal(t, int64(0), ValueOf(0).Int64())
	require.Equal(t, int64(4294967295), ValueOf(4294967295).Int64())
}

func TestBitLength(t *testing.T) {
	require.Equal(t, 0, BitLength(NewInt(0)))
	require.Equal(t, 1, BitLength(NewInt(1)))
	require.Equal(t, 2, BitLength(NewInt(2)))
	require.Equal(t, 2, BitLength(NewInt(3)))
	require.Equal(t, 9, BitLength(NewInt(256)))
}

func TestSetBytesSigned(t *testing.T) {
	x := new(Int).SetBytesSigned(1, []byte{0x01, 0x00})
	require.Equal(t, int64(256), x.Int64())

	y := new(Int).SetBytesSigned(-1, []byte{0x01, 0x00})
	require.Equal(t, int64(-256), y.Int64())
}

func TestCreateRandomInRangeDegenerate(t *testing.T) {
	v := NewInt(42)
	result, err := CreateRandomInRange(v, v, nil)
	require.NoError(t, err)
	require.Zero(t, result.Cmp(v))
}

func TestCreateRandomInRangeInvalid(t *testing.T) {
	_, err := CreateRandomInRange(NewInt(10), NewInt(5), random.NewCryptoSource())
	require.Error(t, err)
}

func TestCreateRandomInRangeBounds(t *testing.T) {
	rng := random.NewCryptoSource()
	min := NewInt(100)
	max := NewInt(1000)
	for i := 0; i < 200; i++ {
		v, err := CreateRandomInRange(min, max, rng)
		require.NoError(t, err)
		require.True(t, v.Cmp(min) >= 0)
		require.True(t, v.Cmp(max) <= 0)
	}
}

// fixedSource replays a fixed sequence of words, letting a test pin down
// exactly which word lands at which position.
type fixedSource struct {
	words []uint32
	next  int
}

func (s *fixedSource) Uint32() (uint32, error) {
	v := s.words[s.next]
	s.next++
	return v, nil
}

func TestCreateRandomInRangeMultiWordSpan(t *testing.T) {
	// span = 2^40 - 1 needs two 32-bit words: the first word drawn must
	// land at the *most significant* position and be masked to the 8
	// remaining bits, the second word is a full unmasked draw.
	max, ok := new(Int).SetString("FFFFFFFFFF", 16)
	require.True(t, ok)
	min := NewInt(0)

	rng := &fixedSource{words: []uint32{0xFF, 0xDEADBEEF}}
	v, err := CreateRandomInRange(min, max, rng)
	require.NoError(t, err)

	want, ok := new(Int).SetString("FFDEADBEEF", 16)
	require.True(t, ok)
	require.Zero(t, v.Cmp(want))
	require.True(t, v.Cmp(max) <= 0)
}

func TestCreateRandomInRangeBoundsMultiWord(t *testing.T) {
	min := NewInt(0)
	max, ok := new(Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFF", 16)
	require.True(t, ok)
	rng := random.NewCryptoSource()
	for i := 0; i < 50; i++ {
		v, err := CreateRandomInRange(min, max, rng)
		require.NoError(t, err)
		require.True(t, v.Cmp(min) >= 0)
		require.True(t, v.Cmp(max) <= 0)
	}
}
