// Package ahocorasick defines the matcher arena, match records, and
// sentinel errors.
package ahocorasick

import "errors"

var (
	// ErrNoPatterns indicates NewMatcher was called with an empty
	// dictionary.
	ErrNoPatterns = errors.New("ahocorasick: at least one pattern is required")

	// ErrEmptyPattern indicates the dictionary contains an empty
	// string, which would match at every position.
	ErrEmptyPattern = errors.New("ahocorasick: empty pattern is not allowed")
)

// Match is one occurrence of a dictionary pattern in the text.
//
//   - Pos:     rune offset of the first matched symbol.
//   - Pattern: the dictionary entry that matched.
type Match struct {
	Pos     int
	Pattern string
}

// node is one trie position.  Links are indices into the matcher's
// arena; the root is index 0.
type node struct {
	next map[rune]int
	fail int
	out  []int // indices into patterns, merged along failure links
}

// Matcher is a compiled Aho–Corasick automaton.  Immutable after
// construction; a single Matcher may serve concurrent FindAll calls.
type Matcher struct {
	nodes    []node
	patterns []string
	// runeLen caches the rune length of each pattern for start-offset
	// arithmetic during FindAll.
	runeLen []int
}
