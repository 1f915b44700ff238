package bwt

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNulByte indicates the input already contains the '\x00'
	// sentinel the transform needs to reserve.
	ErrNulByte = errors.New("bwt: input must not contain NUL bytes")

	// ErrBadIndex indicates the primary index passed to Inverse does
	// not address a row of the rotation table.
	ErrBadIndex = errors.New("bwt: primary index out of range")
)

// Transform returns the Burrows–Wheeler transform of s: the last
// column of the sorted rotation table of s+'\x00', and the row index
// holding the sentinel-terminated original.
//
// Returns ErrNulByte if s already contains the sentinel.
//
// Complexity: O(n² log n) — explicit rotations, sorted directly.
func Transform(s string) (string, int, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return "", 0, ErrNulByte
	}

	t := s + "\x00"
	n := len(t)
	rotations := make([]string, n)
	var i int
	for i = 0; i < n; i++ {
		rotations[i] = t[i:] + t[:i]
	}
	sort.Strings(rotations)

	var last strings.Builder
	last.Grow(n)
	idx := 0
	for i = 0; i < n; i++ {
		last.WriteByte(rotations[i][n-1])
		if rotations[i] == t {
			idx = i
		}
	}

	return last.String(), idx, nil
}

// Inverse reconstructs the original string from a transform produced
// by Transform.
//
// The table method: prepend the last column to the (re-sorted) table n
// times; row idx then holds the sentinel-terminated original, and the
// sentinel is stripped before returning.
//
// Returns ErrBadIndex when idx does not address a table row.
//
// Complexity: O(n² log n).
func Inverse(last string, idx int) (string, error) {
	n := len(last)
	if idx < 0 || idx >= n {
		return "", ErrBadIndex
	}

	table := make([]string, n)
	for round := 0; round < n; round++ {
		var i int
		for i = 0; i < n; i++ {
			table[i] = string(last[i]) + table[i]
		}
		sort.Strings(table)
	}

	return strings.TrimSuffix(table[idx], "\x00"), nil
}
