package suffixautomaton

// New returns an automaton recognizing only the empty string: a single
// initial state with length 0, no suffix link, and no transitions.
func New() *Automaton {
	return &Automaton{
		states: []state{{length: 0, link: noLink, next: map[rune]int{}}},
		last:   0,
	}
}

// NewFromString builds the automaton of s by extending symbol by symbol.
// An empty s leaves just the initial state.
//
// Complexity: O(len(s)) amortized.
func NewFromString(s string) *Automaton {
	a := New()
	var r rune
	for _, r = range s {
		a.Extend(r)
	}

	return a
}

// Extend appends one symbol to the recognized string.
//
// Algorithm (the classic online construction):
//  1. Create state cur with length = length(last) + 1.
//  2. Walk the suffix-link chain from last; every state missing a
//     transition on r gains one pointing at cur.
//  3. If the walk falls off the chain, cur's suffixes are all new:
//     link cur to the initial state.
//  4. Otherwise the walk stopped at p with an existing transition to
//     some q.  If length(q) == length(p)+1, q already represents
//     exactly the suffixes cur needs: link cur to q.  Otherwise split
//     q's class: clone q at length(p)+1 (with a snapshot copy of q's
//     transitions), redirect the chain's transitions from q to the
//     clone, and hang both q and cur off the clone.
//  5. cur becomes the new extension point.
//
// At most two states are appended per call.  Amortized O(1) per call
// across a full build (O(log k) map factor, k = alphabet size).
//
// Extend calls must be sequential; the automaton is not safe for
// concurrent mutation.
func (a *Automaton) Extend(r rune) {
	// 1) Allocate cur, one longer than the current whole string.
	cur := len(a.states)
	a.states = append(a.states, state{
		length: a.states[a.last].length + 1,
		link:   noLink,
		next:   map[rune]int{},
	})

	// 2) Walk suffix links, wiring missing transitions to cur.
	p := a.last
	for p != noLink {
		if _, ok := a.states[p].next[r]; ok {
			break
		}
		a.states[p].next[r] = cur
		p = a.states[p].link
	}

	switch {
	// 3) Chain exhausted: r never appeared before.
	case p == noLink:
		a.states[cur].link = 0

	default:
		// q is resolved before any further rewriting in this call.
		q := a.states[p].next[r]

		// 4a) q is a clean extension of p: reuse it as cur's link.
		if a.states[q].length == a.states[p].length+1 {
			a.states[cur].link = q
			break
		}

		// 4b) Split: clone q at the shorter length.  The transition
		// map is an independent snapshot — later rewrites of q must
		// not leak into the clone.
		clone := len(a.states)
		cloneNext := make(map[rune]int, len(a.states[q].next))
		var sym rune
		var to int
		for sym, to = range a.states[q].next {
			cloneNext[sym] = to
		}
		a.states = append(a.states, state{
			length: a.states[p].length + 1,
			link:   a.states[q].link,
			next:   cloneNext,
		})

		// Redirect the chain's r-transitions from q to clone.
		for p != noLink && a.states[p].next[r] == q {
			a.states[p].next[r] = clone
			p = a.states[p].link
		}
		a.states[q].link = clone
		a.states[cur].link = clone
	}

	// 5) cur now recognizes the whole extended string.
	a.last = cur
}

// LongestCommonSubstring returns the length of the longest substring
// shared by the built string and t.  Symbols of t need not come from
// the built string's alphabet.
//
// The walk keeps a current state v and matched length l.  On a missing
// transition it retreats along suffix links, shrinking l to the
// retreated state's length; falling off the chain resets the walk to
// the initial state.  Each symbol does O(1) amortized work (the usual
// potential argument on l), so the whole query is O(len(t)).
//
// Empty t, or no shared substring, yields 0.  A full match of t is
// naturally capped by the built string's own length via transition
// availability.
func (a *Automaton) LongestCommonSubstring(t string) int {
	v, l, best := 0, 0, 0
	var r rune
	for _, r = range t {
		// Retreat until a transition on r exists or the chain ends.
		for v != noLink {
			if _, ok := a.states[v].next[r]; ok {
				break
			}
			v = a.states[v].link
			if v != noLink {
				l = a.states[v].length
			}
		}
		if v == noLink {
			v, l = 0, 0

			continue
		}
		v = a.states[v].next[r]
		l++
		if l > best {
			best = l
		}
	}

	return best
}
