// Package suffixarray builds a suffix array with its LCP table and
// answers pattern lookups by binary search.
//
// 🚀 What is a suffix array?
//
//	The lexicographically sorted list of all suffix start positions of
//	a string.  Together with the LCP array (longest common prefix of
//	neighboring suffixes, built by Kasai's algorithm in O(n)) it
//	answers substring search, longest repeated substring, and many
//	other classic queries.
//
// Construction here sorts suffixes directly — O(n² log n) worst case —
// on purpose: it is the transparent formulation, and this library
// favors readable constructions over SA-IS/DC3 engineering.  Kasai's
// LCP pass and the binary-search lookup have the standard optimal
// bounds.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strlab/suffixarray"
//
//	sa := suffixarray.Build("banana")          // [5 3 1 0 4 2]
//	suffixarray.LCP("banana", sa)              // [1 3 0 0 2]
//	suffixarray.Lookup("banana", sa, "ana")    // [1 3]
//
// Performance:
//
//   - Build:  O(n² log n) worst case, O(n log n) typical
//   - LCP:    O(n)
//   - Lookup: O(m log n + z)
package suffixarray
