// Package editdist defines options, memory modes, and the edit-script
// vocabulary for Levenshtein distance.
package editdist

import "errors"

// ErrScriptNeedsMatrix indicates that edit-script recovery requires
// MemoryMode=FullMatrix.
var ErrScriptNeedsMatrix = errors.New("editdist: ReturnScript requires MemoryMode=FullMatrix")

// MemoryMode controls how Distance stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)×(m+1) matrix in memory.
//     Allows distance + full backtrace of the edit script.
//     Memory: O(n·m).
//
//   - TwoRows — only keep two rows (current and previous).
//     Greatly reduces memory to O(min(n, m)), but cannot recover the
//     script.  Use when you only need the distance.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support script recovery.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no script recovery.
	TwoRows
)

// OpKind classifies one step of an edit script.
type OpKind int

const (
	// OpMatch keeps a symbol unchanged.
	OpMatch OpKind = iota
	// OpSubstitute replaces a's symbol with b's.
	OpSubstitute
	// OpDelete removes a symbol of a.
	OpDelete
	// OpInsert adds a symbol of b.
	OpInsert
)

// String returns the conventional one-letter code (M/S/D/I).
func (k OpKind) String() string {
	switch k {
	case OpMatch:
		return "M"
	case OpSubstitute:
		return "S"
	case OpDelete:
		return "D"
	case OpInsert:
		return "I"
	default:
		return "?"
	}
}

// Op is one edit-script step.  I and J are rune indices into a and b:
// matches and substitutions consume a[I] and b[J]; a deletion consumes
// a[I] (J marks the position reached in b); an insertion consumes b[J]
// (I marks the position reached in a).
type Op struct {
	Kind OpKind
	I, J int
}

// Options configures Distance.
//
// Fields:
//   - ReturnScript — if true, Distance will backtrack and return the
//     optimal edit script.  Requires MemoryMode=FullMatrix.
//   - MemoryMode   — choose FullMatrix or TwoRows storage.
type Options struct {
	ReturnScript bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the defaults: FullMatrix storage, no script.
func DefaultOptions() Options {
	return Options{
		ReturnScript: false,
		MemoryMode:   FullMatrix,
	}
}
