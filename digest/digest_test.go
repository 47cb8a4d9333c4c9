package digest

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromHashRoundTrip(t *testing.T) {
	d := FromHash(sha256.New())
	require.Equal(t, sha256.Size, d.Size())

	d.BlockUpdate([]byte("hello world"), 0, len("hello world"))
	out := make([]byte, d.Size())
	n := d.DoFinal(out, 0)
	require.Equal(t, sha256.Size, n)

	want := sha256.Sum256([]byte("hello world"))
	require.Equal(t, want[:], out)
}

func TestFromHashResetsBetweenCalls(t *testing.T) {
	d := FromHash(sha256.New())

	d.BlockUpdate([]byte("a"), 0, 1)
	first := make([]byte, d.Size())
	d.DoFinal(first, 0)

	d.BlockUpdate([]byte("a"), 0, 1)
	second := make([]byte, d.Size())
	d.DoFinal(second, 0)

	require.Equal(t, first, second)
}
