package ahocorasick

import "unicode/utf8"

// NewMatcher compiles the pattern dictionary into an automaton.
//
// Construction:
//  1. Insert every pattern into a trie; the node finishing a pattern
//     records that pattern's index.
//  2. Breadth-first over the trie, set each node's failure link to the
//     longest proper suffix of its path that is also a trie path.
//  3. Merge the failure target's output list into the node's own, so
//     nested patterns surface without chasing links at search time.
//
// Returns ErrNoPatterns for an empty dictionary and ErrEmptyPattern if
// any entry is "".  Duplicate patterns are collapsed: each occurrence
// position is reported once per distinct pattern.
//
// Complexity: O(L log k), L = total pattern length, k = alphabet size.
func NewMatcher(patterns []string) (*Matcher, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	m := &Matcher{nodes: []node{{next: map[rune]int{}}}}

	// 1) Trie insertion.
	seen := make(map[string]struct{}, len(patterns))
	var p string
	for _, p = range patterns {
		if p == "" {
			return nil, ErrEmptyPattern
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}

		v := 0
		var r rune
		for _, r = range p {
			to, ok := m.nodes[v].next[r]
			if !ok {
				to = len(m.nodes)
				m.nodes = append(m.nodes, node{next: map[rune]int{}})
				m.nodes[v].next[r] = to
			}
			v = to
		}
		m.nodes[v].out = append(m.nodes[v].out, len(m.patterns))
		m.patterns = append(m.patterns, p)
		m.runeLen = append(m.runeLen, utf8.RuneCountInString(p))
	}

	// 2) + 3) BFS failure links with output merging.  Depth-1 nodes
	// fail to the root.
	queue := make([]int, 0, len(m.nodes))
	for _, to := range m.nodes[0].next {
		queue = append(queue, to)
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for r, to := range m.nodes[v].next {
			// Failure of the child: follow v's failure chain until a
			// node with an r-edge appears (or the root absorbs it).
			f := m.nodes[v].fail
			for f != 0 {
				if _, ok := m.nodes[f].next[r]; ok {
					break
				}
				f = m.nodes[f].fail
			}
			if cand, ok := m.nodes[f].next[r]; ok && cand != to {
				m.nodes[to].fail = cand
			}
			m.nodes[to].out = append(m.nodes[to].out, m.nodes[m.nodes[to].fail].out...)
			queue = append(queue, to)
		}
	}

	return m, nil
}

// FindAll scans text once and returns every occurrence of every
// dictionary pattern, ordered by match end; matches ending at the same
// symbol come longest first (a pattern precedes its proper suffixes).
// Pos is a rune offset.
//
// Complexity: O(n + z), z = total matches.
func (m *Matcher) FindAll(text string) []Match {
	var out []Match
	v := 0
	i := 0 // rune index
	var r rune
	for _, r = range text {
		for v != 0 {
			if _, ok := m.nodes[v].next[r]; ok {
				break
			}
			v = m.nodes[v].fail
		}
		if to, ok := m.nodes[v].next[r]; ok {
			v = to
		}
		var pi int
		for _, pi = range m.nodes[v].out {
			out = append(out, Match{Pos: i - m.runeLen[pi] + 1, Pattern: m.patterns[pi]})
		}
		i++
	}

	return out
}

// NumPatterns returns the number of distinct dictionary patterns
// compiled into the matcher.
func (m *Matcher) NumPatterns() int {
	return len(m.patterns)
}
