package suffixarray

import "sort"

// Build returns the suffix array of s: start positions of all suffixes
// in lexicographic order.  An empty s yields nil.
//
// Suffixes are compared directly, the transparent formulation:
// O(n² log n) worst case, O(n log n) on typical text.
func Build(s string) []int {
	if len(s) == 0 {
		return nil
	}

	sa := make([]int, len(s))
	var i int
	for i = range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool { return s[sa[a]:] < s[sa[b]:] })

	return sa
}

// LCP returns Kasai's longest-common-prefix array for s and its suffix
// array sa: lcp[i] is the shared prefix length of the suffixes at
// sa[i] and sa[i+1], so len(lcp) == len(sa)−1.  Inputs shorter than
// two suffixes yield nil.
//
// Kasai's trick: processing suffixes in text order, the match length
// drops by at most one between consecutive positions, so total
// re-matching work is O(n).
func LCP(s string, sa []int) []int {
	n := len(sa)
	if n < 2 {
		return nil
	}

	rank := make([]int, n)
	var i int
	for i = range sa {
		rank[sa[i]] = i
	}

	lcp := make([]int, n-1)
	k := 0
	for i = 0; i < n; i++ {
		if rank[i] == n-1 {
			k = 0

			continue
		}
		j := sa[rank[i]+1]
		for i+k < n && j+k < n && s[i+k] == s[j+k] {
			k++
		}
		lcp[rank[i]] = k
		if k > 0 {
			k--
		}
	}

	return lcp
}

// Lookup returns the start positions of every occurrence of pattern in
// s, ascending, by binary-searching the suffix array for the block of
// suffixes prefixed by pattern.  An empty pattern yields nil.
//
// Complexity: O(m log n) for the two boundary searches plus O(z log z)
// to order the occurrences.
func Lookup(s string, sa []int, pattern string) []int {
	if len(pattern) == 0 || len(pattern) > len(s) {
		return nil
	}

	// First suffix ≥ pattern.
	lo := sort.Search(len(sa), func(i int) bool { return s[sa[i]:] >= pattern })
	// First suffix whose pattern-length prefix exceeds pattern.
	hi := sort.Search(len(sa), func(i int) bool {
		suf := s[sa[i]:]
		if len(suf) > len(pattern) {
			suf = suf[:len(pattern)]
		}

		return suf > pattern
	})
	if lo >= hi {
		return nil
	}

	out := make([]int, hi-lo)
	copy(out, sa[lo:hi])
	sort.Ints(out)

	return out
}
