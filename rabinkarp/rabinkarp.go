package rabinkarp

const (
	base    = 256 // size of the byte alphabet
	modulus = 101 // prime modulus for the rolling hash
)

// FindAll returns the byte indices of every occurrence of pattern in
// text, in ascending order.  An empty pattern yields nil.
//
// Each window shares its hash with the previous one: subtract the
// outgoing byte's contribution (precomputed base^(m−1) mod q), shift,
// add the incoming byte.  Matching hashes are confirmed by direct
// comparison before reporting.
//
// Complexity: O(n + m) expected.
func FindAll(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return nil
	}

	// lead = base^(m-1) mod q, the weight of a window's first byte.
	lead := 1
	for i := 0; i < m-1; i++ {
		lead = (lead * base) % modulus
	}

	pHash, wHash := 0, 0
	for i := 0; i < m; i++ {
		pHash = (base*pHash + int(pattern[i])) % modulus
		wHash = (base*wHash + int(text[i])) % modulus
	}

	var out []int
	for i := 0; i+m <= n; i++ {
		if pHash == wHash && text[i:i+m] == pattern {
			out = append(out, i)
		}
		if i+m < n {
			wHash = (base*(wHash-int(text[i])*lead) + int(text[i+m])) % modulus
			if wHash < 0 {
				wHash += modulus
			}
		}
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
