// Package ahocorasick matches many patterns against a text in one
// pass, using a trie augmented with failure links.
//
// 🚀 What is Aho–Corasick?
//
//	A finite automaton built from a dictionary of patterns.  Trie edges
//	follow matching symbols; failure links jump to the longest proper
//	suffix of the current position that is still a prefix of some
//	pattern, so the text pointer never moves backwards.  Output lists
//	are merged along failure links during construction, so every match
//	— including patterns nested inside others — is reported the moment
//	its last symbol is read.
//
// ✨ Key features:
//   - one automaton, any number of patterns, one linear scan
//   - overlapping and nested matches all reported
//   - arena-of-nodes layout: links are integer indices, no pointers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strlab/ahocorasick"
//
//	m, err := ahocorasick.NewMatcher([]string{"he", "she", "hers"})
//	if err != nil { ... }
//	m.FindAll("ushers")
//	// [{1 she} {2 he} {2 hers}]
//
// Performance:
//
//   - Build:  O(L) total pattern length (O(L log k) with map edges)
//   - Search: O(n + z), z = number of matches
//   - Memory: O(L) nodes
//
// The matcher is immutable after NewMatcher and safe for concurrent
// FindAll calls.
package ahocorasick
