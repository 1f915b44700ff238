// Package suffixautomaton builds a suffix automaton — the minimal DAG
// recognizing every substring of a string — online, one symbol at a time,
// in amortized O(1) per symbol.
//
// 🚀 What is a suffix automaton?
//
//	A deterministic automaton whose states are equivalence classes of
//	substrings sharing the same set of ending positions ("endpos") in the
//	built string.  Every path from the initial state spells a substring;
//	every substring is spelled by exactly one path.  It is the smallest
//	such automaton: at most 2n−1 states and 3n−4 transitions for a string
//	of length n ≥ 2.  Widely used for:
//	  • Longest common substring of two strings
//	  • Substring membership in O(|query|)
//	  • Counting distinct substrings
//	  • k-th lexicographic substring
//	  • Smallest cyclic rotation
//
// ✨ Key features:
//   - online construction: Extend appends one symbol in amortized O(1)
//   - arena storage: states live in one slice, all references are indices
//   - queries never mutate the automaton and may interleave with Extend
//   - any Unicode input: transitions are sparse maps keyed by rune
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strlab/suffixautomaton"
//
//	sa := suffixautomaton.NewFromString("abacaba")
//	sa.Contains("acab")                   // true
//	sa.LongestCommonSubstring("acab")     // 4
//	sa.DistinctSubstrings()               // 21
//
// Performance:
//
//   - Construction: O(n) amortized (O(n log k) with the map transition
//     representation, k = alphabet size)
//   - LongestCommonSubstring: O(m) for a query of length m
//   - Memory: O(n) states, O(n) transitions
//
// Construction must be sequential: each Extend depends on the extension
// point set by the previous one.  Synchronize externally if the automaton
// is shared across goroutines.
package suffixautomaton
