// Package rabinkarp implements Rabin–Karp substring search with a
// polynomial rolling hash.
//
// 🚀 How does it work?
//
//	The pattern's hash and the hash of the first text window are
//	computed once; every subsequent window hash is derived from the
//	previous one in O(1) by removing the leading symbol and appending
//	the next.  A hash hit is verified symbol by symbol, so collisions
//	cost time but never correctness.
//
// The classic schoolbook parameters are kept deliberately: base 256
// (byte alphabet) and modulus 101.  A small prime modulus makes the
// collision path easy to exercise in tests; the verification step
// makes it harmless.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strlab/rabinkarp"
//
//	rabinkarp.FindAll("abracadabra", "abra")   // [0 7]
//
// Performance:
//
//   - Time:   O(n + m) expected, O(n·m) adversarial worst case
//   - Memory: O(1) beyond the output
package rabinkarp
