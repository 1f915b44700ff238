// Package kmp implements Knuth–Morris–Pratt substring search via the
// prefix-function (LPS) table.
//
// 🚀 What is KMP?
//
//	KMP scans the text once, never re-reading a text symbol.  On a
//	mismatch at pattern position j it falls back to lps[j−1] — the
//	length of the longest proper prefix of the pattern that is also a
//	suffix of the matched part — instead of restarting the comparison.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strlab/kmp"
//
//	kmp.Find("ababcabcabababd", "ababd")    // 10
//	kmp.FindAll("aaaa", "aa")               // [0 1 2]
//
// Performance:
//
//   - Time:   O(n + m), n = len(text), m = len(pattern)
//   - Memory: O(m) for the LPS table
package kmp
