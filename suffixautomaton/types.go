// Package suffixautomaton defines the state arena and sentinel errors
// for the suffix automaton.
package suffixautomaton

import "errors"

// ErrKOutOfRange is returned by KthSubstring when k is not in
// [1, DistinctSubstrings()].
var ErrKOutOfRange = errors.New("suffixautomaton: k is out of range")

// noLink marks a state with no suffix link; only the initial state
// carries it.
const noLink = -1

// state is one equivalence class of substrings sharing an endpos set.
//
//   - length: length of the longest substring in the class.
//   - link:   index of the state holding the longest proper suffix that
//     falls into a different class, or noLink for the initial state.
//   - next:   transitions — appending symbol r to any substring of this
//     class lands in states[next[r]].
//
// States are addressed by their index in the owning Automaton's arena;
// no pointers cross state boundaries.
type state struct {
	length int
	link   int
	next   map[rune]int
}

// Automaton is an online suffix automaton over runes.
//
// The arena (states) is append-only: index 0 is the permanent initial
// state for the empty string, and last is the extension point — the
// state recognizing the whole string built so far.
//
// The zero value is not usable; construct with New or NewFromString.
type Automaton struct {
	states []state
	last   int
}
