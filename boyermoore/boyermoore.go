package boyermoore

// badCharTable maps every byte to its last index in pattern, -1 when
// absent.
func badCharTable(pattern string) [256]int {
	var table [256]int
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(pattern); i++ {
		table[pattern[i]] = i
	}

	return table
}

// goodSuffixTable computes shift[j]: how far the window may jump when
// the mismatch happens just before pattern position j (i.e. the suffix
// pattern[j:] already matched).
//
// bpos[i] tracks the border position of the suffix starting at i; the
// first pass fills shifts for suffixes reoccurring inside the pattern,
// the second pass falls back to the widest matching prefix.
func goodSuffixTable(pattern string) []int {
	m := len(pattern)
	shift := make([]int, m+1)
	bpos := make([]int, m+1)

	i, j := m, m+1
	bpos[i] = j
	for i > 0 {
		for j <= m && (i < m && pattern[i-1] != pattern[j-1]) {
			if shift[j] == 0 {
				shift[j] = j - i
			}
			j = bpos[j]
		}
		i--
		j--
		bpos[i] = j
	}

	j = bpos[0]
	for i = 0; i <= m; i++ {
		if shift[i] == 0 {
			shift[i] = j
		}
		if i == j {
			j = bpos[j]
		}
	}

	return shift
}

// FindAll returns the byte indices of every occurrence of pattern in
// text, ascending, using both the bad-character and strong good-suffix
// heuristics.  An empty pattern yields nil.
//
// Complexity: O(n + m) with O(m + 256) table memory.
func FindAll(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return nil
	}

	bad := badCharTable(pattern)
	good := goodSuffixTable(pattern)

	var out []int
	s := 0
	for s <= n-m {
		j := m - 1
		for j >= 0 && pattern[j] == text[s+j] {
			j--
		}
		if j < 0 {
			out = append(out, s)
			s += good[0]

			continue
		}
		bcShift := j - bad[text[s+j]]
		gsShift := good[j+1]
		shift := bcShift
		if gsShift > shift {
			shift = gsShift
		}
		if shift < 1 {
			shift = 1
		}
		s += shift
	}

	return out
}

// FindAllHorspool is the Boyer–Moore–Horspool simplification: shifts
// come from the window's last byte only.
//
// Complexity: O(n·m) worst case, sublinear on typical inputs.
func FindAllHorspool(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return nil
	}

	// Shift by the distance from a byte's last occurrence (excluding
	// the final position) to the end of the pattern.
	var skip [256]int
	for i := range skip {
		skip[i] = m
	}
	for i := 0; i < m-1; i++ {
		skip[pattern[i]] = m - 1 - i
	}

	var out []int
	s := 0
	for s <= n-m {
		j := m - 1
		for j >= 0 && pattern[j] == text[s+j] {
			j--
		}
		if j < 0 {
			out = append(out, s)
		}
		s += skip[text[s+m-1]]
	}

	return out
}

// Find returns the byte index of the first occurrence of pattern in
// text, or -1 when absent.  An empty pattern matches at index 0.
func Find(text, pattern string) int {
	if len(pattern) == 0 {
		return 0
	}
	if all := FindAll(text, pattern); len(all) > 0 {
		return all[0]
	}

	return -1
}
