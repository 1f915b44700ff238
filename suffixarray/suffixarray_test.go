package suffixarray_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/katalvlaran/strlab/suffixarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_Fixtures pins the documented arrays.
func TestBuild_Fixtures(t *testing.T) {
	assert.Equal(t, []int{5, 3, 1, 0, 4, 2}, suffixarray.Build("banana"))
	assert.Equal(t, []int{2, 0, 1}, suffixarray.Build("aba"))
	assert.Equal(t, []int{0}, suffixarray.Build("x"))
	assert.Nil(t, suffixarray.Build(""))
}

// TestBuild_IsSortedPermutation: the result is a permutation of 0..n−1
// with suffixes in strictly increasing order.
func TestBuild_IsSortedPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for trial := 0; trial < 100; trial++ {
		var sb strings.Builder
		n := 1 + rng.Intn(50)
		for i := 0; i < n; i++ {
			sb.WriteByte(byte('a' + rng.Intn(3)))
		}
		s := sb.String()
		sa := suffixarray.Build(s)

		require.Len(t, sa, n, "s=%q", s)
		seen := make([]bool, n)
		for _, p := range sa {
			require.False(t, seen[p], "duplicate position in %q", s)
			seen[p] = true
		}
		for i := 1; i < n; i++ {
			assert.Less(t, s[sa[i-1]:], s[sa[i]:], "order at %d for %q", i, s)
		}
	}
}

// TestLCP_Banana pins Kasai's output for the classic fixture.
func TestLCP_Banana(t *testing.T) {
	s := "banana"
	sa := suffixarray.Build(s)
	assert.Equal(t, []int{1, 3, 0, 0, 2}, suffixarray.LCP(s, sa))
}

// TestLCP_Degenerate: fewer than two suffixes have no neighbors.
func TestLCP_Degenerate(t *testing.T) {
	assert.Nil(t, suffixarray.LCP("", nil))
	assert.Nil(t, suffixarray.LCP("x", suffixarray.Build("x")))
}

// TestLCP_Oracle recomputes each neighbor LCP by direct comparison.
func TestLCP_Oracle(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	for trial := 0; trial < 100; trial++ {
		var sb strings.Builder
		n := 2 + rng.Intn(40)
		for i := 0; i < n; i++ {
			sb.WriteByte(byte('a' + rng.Intn(2)))
		}
		s := sb.String()
		sa := suffixarray.Build(s)
		lcp := suffixarray.LCP(s, sa)

		require.Len(t, lcp, n-1, "s=%q", s)
		for i := 0; i < n-1; i++ {
			a, b := s[sa[i]:], s[sa[i+1]:]
			k := 0
			for k < len(a) && k < len(b) && a[k] == b[k] {
				k++
			}
			assert.Equal(t, k, lcp[i], "s=%q i=%d", s, i)
		}
	}
}

// TestLookup covers hits, misses, and degenerate patterns.
func TestLookup(t *testing.T) {
	s := "banana"
	sa := suffixarray.Build(s)

	assert.Equal(t, []int{1, 3}, suffixarray.Lookup(s, sa, "ana"))
	assert.Equal(t, []int{0}, suffixarray.Lookup(s, sa, "ban"))
	assert.Equal(t, []int{1, 3, 5}, suffixarray.Lookup(s, sa, "a"))
	assert.Nil(t, suffixarray.Lookup(s, sa, "nab"))
	assert.Nil(t, suffixarray.Lookup(s, sa, ""))
	assert.Nil(t, suffixarray.Lookup(s, sa, "bananas"))
}

// TestLookup_Oracle fuzzes against the naive scan.
func TestLookup_Oracle(t *testing.T) {
	rng := rand.New(rand.NewSource(47))
	for trial := 0; trial < 150; trial++ {
		var sb strings.Builder
		n := 1 + rng.Intn(40)
		for i := 0; i < n; i++ {
			sb.WriteByte(byte('a' + rng.Intn(2)))
		}
		s := sb.String()
		sa := suffixarray.Build(s)

		m := 1 + rng.Intn(4)
		if m > n {
			m = n
		}
		at := rng.Intn(n - m + 1)
		pattern := s[at : at+m]

		var want []int
		for i := 0; i+len(pattern) <= len(s); i++ {
			if s[i:i+len(pattern)] == pattern {
				want = append(want, i)
			}
		}
		got := suffixarray.Lookup(s, sa, pattern)
		assert.Equal(t, want, got, "s=%q pattern=%q", s, pattern)
		assert.True(t, sort.IntsAreSorted(got), "ascending order for %q/%q", s, pattern)
	}
}
