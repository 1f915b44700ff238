package editdist_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/strlab/editdist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistance_Fixtures pins the classic pairs.
func TestDistance_Fixtures(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"sunday", "saturday", 3},
		{"flaw", "lawn", 2},
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"same", "same", 0},
	}
	for _, tc := range cases {
		dist, script, err := editdist.Distance(tc.a, tc.b, nil)
		require.NoError(t, err, "a=%q b=%q", tc.a, tc.b)
		assert.Equal(t, tc.want, dist, "a=%q b=%q", tc.a, tc.b)
		assert.Nil(t, script, "default ReturnScript=false yields nil script")
	}
}

// TestDistance_ScriptNeedsMatrix: script recovery is a FullMatrix
// feature.
func TestDistance_ScriptNeedsMatrix(t *testing.T) {
	opts := editdist.DefaultOptions()
	opts.ReturnScript = true
	opts.MemoryMode = editdist.TwoRows

	_, _, err := editdist.Distance("ab", "ba", &opts)
	assert.ErrorIs(t, err, editdist.ErrScriptNeedsMatrix)
}

// applyScript replays an edit script on a and returns the rebuilt
// string; the ops must consume a left to right.
func applyScript(t *testing.T, a, b string, script []editdist.Op) string {
	t.Helper()

	ra, rb := []rune(a), []rune(b)
	var out []rune
	i := 0
	for _, op := range script {
		switch op.Kind {
		case editdist.OpMatch:
			require.Equal(t, i, op.I, "match must consume a in order")
			out = append(out, ra[op.I])
			i++
		case editdist.OpSubstitute:
			require.Equal(t, i, op.I, "substitute must consume a in order")
			out = append(out, rb[op.J])
			i++
		case editdist.OpDelete:
			require.Equal(t, i, op.I, "delete must consume a in order")
			i++
		case editdist.OpInsert:
			out = append(out, rb[op.J])
		}
	}
	require.Equal(t, len(ra), i, "script must consume all of a")

	return string(out)
}

// TestDistance_ScriptRebuildsTarget: replaying the script on a yields
// b, and the number of non-match ops equals the distance.
func TestDistance_ScriptRebuildsTarget(t *testing.T) {
	opts := editdist.DefaultOptions()
	opts.ReturnScript = true

	pairs := [][2]string{
		{"kitten", "sitting"},
		{"sunday", "saturday"},
		{"", "abc"},
		{"abc", ""},
		{"abcdef", "abcdef"},
	}
	for _, pair := range pairs {
		dist, script, err := editdist.Distance(pair[0], pair[1], &opts)
		require.NoError(t, err)
		assert.Equal(t, pair[1], applyScript(t, pair[0], pair[1], script),
			"a=%q b=%q", pair[0], pair[1])

		edits := 0
		for _, op := range script {
			if op.Kind != editdist.OpMatch {
				edits++
			}
		}
		assert.Equal(t, dist, edits, "a=%q b=%q", pair[0], pair[1])
	}
}

// TestDistance_TwoRowsMatchesFullMatrix fuzzes both storage modes
// against each other.
func TestDistance_TwoRowsMatchesFullMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	full := editdist.DefaultOptions()
	rolling := editdist.DefaultOptions()
	rolling.MemoryMode = editdist.TwoRows

	for trial := 0; trial < 200; trial++ {
		a := randomWord(rng, rng.Intn(20))
		b := randomWord(rng, rng.Intn(20))

		df, _, err := editdist.Distance(a, b, &full)
		require.NoError(t, err)
		dr, script, err := editdist.Distance(a, b, &rolling)
		require.NoError(t, err)

		assert.Equal(t, df, dr, "a=%q b=%q", a, b)
		assert.Nil(t, script, "TwoRows never returns a script")
	}
}

// TestDistance_Unicode counts multi-byte symbols as single edits.
func TestDistance_Unicode(t *testing.T) {
	dist, _, err := editdist.Distance("язык", "лязг", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, dist)
}

func randomWord(rng *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('a' + rng.Intn(3)))
	}

	return sb.String()
}
