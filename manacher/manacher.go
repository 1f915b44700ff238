package manacher

// LongestPalindrome returns the longest palindromic substring of s.
// Ties break toward the leftmost occurrence.  An empty s yields "".
//
// Complexity: O(n).
func LongestPalindrome(s string) string {
	runes := []rune(s)
	start, length := Longest(s)
	if length == 0 {
		return ""
	}

	return string(runes[start : start+length])
}

// Longest returns the rune offset and rune length of the longest
// palindromic substring of s, leftmost on ties.  An empty s yields
// (0, 0).
//
// The scan works over the '#'-interleaved transform of s ("aba" →
// "#a#b#a#"), which unifies odd- and even-length palindromes; compared
// offsets always share parity, so a literal '#' in the input can never
// collide with a separator slot.  Radius p[i] in the transform equals
// the palindrome's length in s.
//
// Complexity: O(n) — the right border only advances.
func Longest(s string) (start, length int) {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0, 0
	}

	t := make([]rune, 0, 2*len(runes)+1)
	t = append(t, '#')
	var r rune
	for _, r = range runes {
		t = append(t, r, '#')
	}

	p := make([]int, len(t))
	center, right := 0, 0
	var i int
	for i = 0; i < len(t); i++ {
		if i < right {
			// Mirror seed, clipped to the known border.
			mirror := 2*center - i
			p[i] = min(right-i, p[mirror])
		}
		for i-p[i]-1 >= 0 && i+p[i]+1 < len(t) && t[i+p[i]+1] == t[i-p[i]-1] {
			p[i]++
		}
		if i+p[i] > right {
			center, right = i, i+p[i]
		}
	}

	best, bestCenter := 0, 0
	for i = 0; i < len(t); i++ {
		if p[i] > best {
			best, bestCenter = p[i], i
		}
	}

	return (bestCenter - best) / 2, best
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
