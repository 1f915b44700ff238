package kmp

// PrefixTable computes the LPS array of pattern: lps[i] is the length
// of the longest proper prefix of pattern[:i+1] that is also a suffix
// of it.  This is the failure function driving the search.
//
// Complexity: O(m) — the (length, i) pair advances monotonically.
func PrefixTable(pattern string) []int {
	lps := make([]int, len(pattern))
	length := 0 // length of the previous longest prefix-suffix
	i := 1
	for i < len(pattern) {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length != 0:
			// Fall back without consuming pattern[i].
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}

	return lps
}

// Find returns the byte index of the first occurrence of pattern in
// text, or -1 when absent.  An empty pattern matches at index 0.
//
// Complexity: O(n + m).
func Find(text, pattern string) int {
	if len(pattern) == 0 {
		return 0
	}
	if len(pattern) > len(text) {
		return -1
	}

	lps := PrefixTable(pattern)
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != pattern[j] {
			j = lps[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			return i - j + 1
		}
	}

	return -1
}

// FindAll returns the byte indices of every (possibly overlapping)
// occurrence of pattern in text, in ascending order.  An empty pattern
// yields nil.
//
// Complexity: O(n + m + z), z = number of occurrences.
func FindAll(text, pattern string) []int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil
	}

	lps := PrefixTable(pattern)
	var out []int
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != pattern[j] {
			j = lps[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			out = append(out, i-j+1)
			j = lps[j-1] // keep scanning for overlapping matches
		}
	}

	return out
}
