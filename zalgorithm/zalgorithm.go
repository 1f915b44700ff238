package zalgorithm

// ZArray returns the Z-array of s: z[i] is the length of the longest
// common prefix of s and s[i:].  z[0] is 0 by convention.
//
// The [l, r] Z-box is the rightmost window known to match a prefix:
//   - i > r: compute naively, then adopt the new box if it reaches
//     further right.
//   - i ≤ r: mirror index i−l answers immediately when its value stays
//     inside the box; otherwise extend from r+1.
//
// Complexity: O(n) — r only moves right.
func ZArray(s string) []int {
	n := len(s)
	z := make([]int, n)
	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i <= r {
			k := i - l
			if z[k] < r-i+1 {
				z[i] = z[k]

				continue
			}
			z[i] = r - i + 1
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i]-1 > r {
			l, r = i, i+z[i]-1
		}
	}

	return z
}

// Find returns the byte indices of every occurrence of pattern in
// text, in ascending order, via the Z-array of pattern+'\x00'+text.
// An empty pattern yields nil.
//
// Complexity: O(n + m).
func Find(text, pattern string) []int {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return nil
	}

	z := ZArray(pattern + "\x00" + text)
	var out []int
	for i := m + 1; i < len(z); i++ {
		if z[i] >= m {
			out = append(out, i-m-1)
		}
	}

	return out
}
