package suffixautomaton

import "sort"

// Contains reports whether w is a substring of the built string.
// The empty string is a substring of every string, including the empty
// one.
//
// Complexity: O(len(w)) map lookups.
func (a *Automaton) Contains(w string) bool {
	v := 0
	var r rune
	for _, r = range w {
		to, ok := a.states[v].next[r]
		if !ok {
			return false
		}
		v = to
	}

	return true
}

// DistinctSubstrings returns the number of distinct non-empty
// substrings of the built string.
//
// Each non-initial state contributes length(s) − length(link(s))
// substrings: the lengths its class covers beyond those of its suffix
// link.  Summing over all states counts every distinct substring
// exactly once.
//
// Complexity: O(states).
func (a *Automaton) DistinctSubstrings() int {
	total := 0
	var i int
	for i = 1; i < len(a.states); i++ {
		total += a.states[i].length - a.states[a.states[i].link].length
	}

	return total
}

// KthSubstring returns the k-th (1-based) distinct non-empty substring
// of the built string in lexicographic order.
//
// It counts, per state, the number of paths leaving that state through
// the transition DAG (each path spells one distinct substring), then
// descends greedily through transitions in symbol order, discarding the
// subtree counts of symbols that sort before the answer.
//
// Returns ErrKOutOfRange when k < 1 or k > DistinctSubstrings().
//
// Complexity: O(states · k_alphabet log k_alphabet) for the count pass
// plus O(answer length) for the descent.
func (a *Automaton) KthSubstring(k int) (string, error) {
	if k < 1 {
		return "", ErrKOutOfRange
	}

	// paths[v] = number of substrings spelled by paths starting at v,
	// including the empty path.  Transitions strictly increase length,
	// so processing states by decreasing length is a topological order.
	order := make([]int, len(a.states))
	var i int
	for i = range order {
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool {
		return a.states[order[x]].length > a.states[order[y]].length
	})

	paths := make([]int, len(a.states))
	var to int
	for _, i = range order {
		paths[i] = 1
		for _, to = range a.states[i].next {
			paths[i] += paths[to]
		}
	}

	// paths[0]−1 non-empty substrings start at the initial state.
	if k > paths[0]-1 {
		return "", ErrKOutOfRange
	}

	// Greedy descent in symbol order.
	var out []rune
	v := 0
	for k > 0 {
		syms := sortedSymbols(a.states[v].next)
		var r rune
		for _, r = range syms {
			to = a.states[v].next[r]
			if k <= paths[to] {
				out = append(out, r)
				k-- // the substring ending right here
				v = to

				break
			}
			k -= paths[to]
		}
	}

	return string(out), nil
}

// MinimalRotation returns the lexicographically smallest rotation of s.
//
// It builds the automaton of s+s and walks len(s) steps from the
// initial state, always taking the smallest available symbol — every
// rotation of s is a substring of s+s, so the walk spells the minimal
// one.
//
// Complexity: O(n · k_alphabet log k_alphabet), n = len(s).
func MinimalRotation(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}

	a := NewFromString(string(runes) + string(runes))
	out := make([]rune, 0, len(runes))
	v := 0
	var i int
	for i = 0; i < len(runes); i++ {
		r := sortedSymbols(a.states[v].next)[0]
		out = append(out, r)
		v = a.states[v].next[r]
	}

	return string(out)
}

// NumStates returns the number of states in the arena, the initial
// state included.  After building from a string of n ≥ 2 symbols it is
// at most 2n−1.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// NumTransitions returns the total transition count.  After building
// from a string of n ≥ 3 symbols it is at most 3n−4.
func (a *Automaton) NumTransitions() int {
	total := 0
	var i int
	for i = range a.states {
		total += len(a.states[i].next)
	}

	return total
}

// sortedSymbols returns the transition symbols of next in increasing
// order.
func sortedSymbols(next map[rune]int) []rune {
	syms := make([]rune, 0, len(next))
	var r rune
	for r = range next {
		syms = append(syms, r)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	return syms
}
