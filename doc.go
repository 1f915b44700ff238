// Package strlab is your in-memory playground for classic string
// algorithms — from single-pattern search to suffix structures and
// sequence alignment.
//
// 🚀 What is strlab?
//
//	A pedagogical, pure-Go library where every package is one algorithm:
//		• Suffix automaton: online construction, substring & LCS queries
//		• Single-pattern search: KMP, Z-algorithm, Rabin–Karp, Boyer–Moore
//		• Multi-pattern search: Aho–Corasick
//		• Suffix array + Kasai LCP
//		• Palindromes: Manacher
//		• Alignment: Levenshtein edit distance with edit-script recovery
//		• Burrows–Wheeler transform & inverse
//
// ✨ Why choose strlab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Self-contained – each package is independent, no shared runtime
//   - Pure Go – no cgo, no hidden deps
//   - Honest complexity – every doc.go states the real bounds, including
//     the deliberately simple constructions kept for clarity
//
// Each package ships with runnable examples (example_test.go), property
// tests against brute-force oracles, and benchmarks where performance is
// part of the algorithm's story.
//
// Package index:
//
//	suffixautomaton/ — online suffix automaton (substrings, LCS, k-th substring)
//	kmp/             — Knuth–Morris–Pratt prefix-function search
//	zalgorithm/      — Z-array and Z-based search
//	rabinkarp/       — rolling-hash search
//	boyermoore/      — bad-character + good-suffix search (and Horspool)
//	ahocorasick/     — multi-pattern automaton with failure links
//	suffixarray/     — suffix array, Kasai LCP, binary-search lookup
//	manacher/        — longest palindromic substring in O(n)
//	bwt/             — Burrows–Wheeler transform and inverse
//	editdist/        — Levenshtein distance with edit-script recovery
//
// Dive into each package's doc.go for the full walkthrough, complexity
// analysis, and usage patterns.
//
//	go get github.com/katalvlaran/strlab
package strlab
