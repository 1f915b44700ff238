// Package boyermoore implements Boyer–Moore substring search with both
// classic heuristics, plus the simplified Horspool variant.
//
// 🚀 How does it work?
//
//	The pattern is compared right to left.  On a mismatch the window
//	jumps by the larger of two precomputed shifts:
//	  • bad character — align the mismatched text byte with its last
//	    occurrence in the pattern (or skip past it entirely)
//	  • good suffix — align the already-matched suffix with its next
//	    occurrence in the pattern, or with a matching pattern prefix
//
//	Horspool keeps only a bad-character table keyed by the window's
//	last byte — shorter code, same expected sublinearity.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strlab/boyermoore"
//
//	boyermoore.FindAll("abacaabadcabacabaabb", "abacab")  // [10]
//	boyermoore.FindAllHorspool("aaaaaa", "aaa")           // [0 1 2 3]
//
// Performance:
//
//   - Time:   O(n/m) best case, O(n + m) typical, O(n·m) degenerate
//     for Horspool; full Boyer–Moore stays O(n + m) per window thanks
//     to the good-suffix rule
//   - Memory: O(m + 256) tables
//
// Byte-oriented: the tables index all 256 byte values, as in the
// classic formulation.
package boyermoore
