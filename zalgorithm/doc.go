// Package zalgorithm computes the Z-array of a string and uses it for
// pattern search.
//
// 🚀 What is the Z-array?
//
//	z[i] is the length of the longest substring starting at i that is
//	also a prefix of the string (z[0] is left at 0 by convention).  The
//	algorithm maintains the rightmost "Z-box" [l, r] — the interval
//	matching a prefix — and reuses previously computed values inside
//	it, so every symbol is compared O(1) times on average.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strlab/zalgorithm"
//
//	zalgorithm.ZArray("abacaba")          // [0 0 1 0 3 0 1]
//	zalgorithm.Find("abacaba", "aba")     // [0 4]
//
// Search concatenates pattern + '\x00' + text and reads occurrences off
// the combined Z-array — the separator guarantees no Z value crosses it.
//
// Performance:
//
//   - Time:   O(n) for ZArray, O(n + m) for Find
//   - Memory: O(n + m)
package zalgorithm
