package bwt_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/strlab/bwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip_Fixtures: transform then invert the classic inputs.
func TestRoundTrip_Fixtures(t *testing.T) {
	for _, s := range []string{"banana", "abracadabra", "mississippi", "a", ""} {
		last, idx, err := bwt.Transform(s)
		require.NoError(t, err, "s=%q", s)
		require.Len(t, last, len(s)+1, "last column includes the sentinel (%q)", s)

		got, err := bwt.Inverse(last, idx)
		require.NoError(t, err, "s=%q", s)
		assert.Equal(t, s, got, "round trip of %q", s)
	}
}

// TestTransform_GroupsSymbols sanity-checks the well-known banana
// transform.
func TestTransform_GroupsSymbols(t *testing.T) {
	last, idx, err := bwt.Transform("banana")
	require.NoError(t, err)
	assert.Equal(t, "annb\x00aa", last)
	assert.Equal(t, 4, idx)
}

// TestTransform_RejectsNul: the sentinel byte cannot appear in input.
func TestTransform_RejectsNul(t *testing.T) {
	_, _, err := bwt.Transform("ab\x00cd")
	assert.ErrorIs(t, err, bwt.ErrNulByte)
}

// TestInverse_BadIndex covers both out-of-range directions.
func TestInverse_BadIndex(t *testing.T) {
	last, _, err := bwt.Transform("banana")
	require.NoError(t, err)

	_, err = bwt.Inverse(last, -1)
	assert.ErrorIs(t, err, bwt.ErrBadIndex)
	_, err = bwt.Inverse(last, len(last))
	assert.ErrorIs(t, err, bwt.ErrBadIndex)
}

// TestRoundTrip_Random fuzzes the round trip over seeded random
// strings.
func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(53))
	for trial := 0; trial < 60; trial++ {
		var sb strings.Builder
		n := rng.Intn(40)
		for i := 0; i < n; i++ {
			sb.WriteByte(byte('a' + rng.Intn(4)))
		}
		s := sb.String()

		last, idx, err := bwt.Transform(s)
		require.NoError(t, err, "s=%q", s)
		got, err := bwt.Inverse(last, idx)
		require.NoError(t, err, "s=%q", s)
		assert.Equal(t, s, got, "round trip of %q", s)
	}
}
