// Package editdist computes the Levenshtein edit distance between two
// strings, with an optional edit script and memory optimizations.
//
// 🚀 What is edit distance?
//
//	The minimum number of single-symbol insertions, deletions, and
//	substitutions turning one string into another.  It's widely used
//	in:
//	  • Spell checking & fuzzy search
//	  • Diffing and merge tooling
//	  • DNA/protein sequence comparison
//	  • Record deduplication
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, edit-script recovery
//   - two-rows mode: O(min(N,M)) memory (choose via MemoryMode)
//   - on-demand edit script (ReturnScript=true): the exact sequence of
//     match/substitute/insert/delete steps
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strlab/editdist"
//
//	opts := editdist.DefaultOptions()
//	opts.ReturnScript = true
//
//	dist, script, err := editdist.Distance("kitten", "sitting", &opts)
//	// dist == 3
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows)
//
// Strings are compared rune-wise, so multi-byte symbols count as one
// edit unit.
package editdist
