// Package bwt implements the Burrows–Wheeler transform and its
// inverse.
//
// 🚀 What is the BWT?
//
//	A reversible permutation of a string that groups equal symbols
//	together, which is why it sits at the front of compressors (bzip2).
//	Append a sentinel, sort all rotations, read the last column — that
//	column plus the sorted position of the original string is enough to
//	reconstruct the input exactly.
//
// This package keeps the pedagogical formulation: explicit rotation
// sort for the transform and the repeated-column-sort table method for
// the inverse.  Production transforms use suffix arrays for O(n)
// behavior; here clarity wins.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strlab/bwt"
//
//	last, idx := bwt.Transform("banana")
//	orig, err := bwt.Inverse(last, idx)   // "banana"
//
// Performance:
//
//   - Transform: O(n² log n)
//   - Inverse:   O(n² log n)
//   - Memory:    O(n²) for the rotation/table slices
//
// The sentinel is '\x00'; input containing NUL bytes is not supported
// and is rejected by Transform.
package bwt
