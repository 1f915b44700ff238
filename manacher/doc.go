// Package manacher finds the longest palindromic substring in linear
// time.
//
// 🚀 How does it work?
//
//	The input is interleaved with '#' separators and fenced with '^'
//	and '$' sentinels ("aba" → "^#a#b#a#$"), so even- and odd-length
//	palindromes become one case.  A radius array p is filled left to
//	right: inside the rightmost known palindrome [c−r, c+r] the mirror
//	position seeds p[i], and expansion continues only past the border.
//	Each expansion step pushes the border right, so the total work is
//	linear.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strlab/manacher"
//
//	manacher.LongestPalindrome("babad")   // "bab"
//	manacher.LongestPalindrome("cbbd")    // "bb"
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(n) for the transformed string and radius array
//
// Input is treated as a rune sequence, so multi-byte symbols palindrome
// correctly.
package manacher
