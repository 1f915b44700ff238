package editdist

// Distance computes the Levenshtein distance between a and b.
// Returns (distance, script, error).
//
// If opts.ReturnScript is true, opts.MemoryMode must be FullMatrix.
// A nil opts behaves like DefaultOptions().
//
// Algorithm outline (full matrix):
//  1. Let n = len(a), m = len(b) in runes.  Allocate (n+1)×(m+1) D.
//  2. Initialize D[i][0] = i, D[0][j] = j: converting to/from the
//     empty string costs one op per symbol.
//  3. For each (i, j): D[i][j] = D[i−1][j−1] when the symbols match,
//     else 1 + min(delete D[i−1][j], insert D[i][j−1],
//     substitute D[i−1][j−1]).
//  4. distance = D[n][m].
//  5. If ReturnScript, backtrack from (n, m) preferring matches, then
//     substitutions, then deletions, then insertions, and reverse the
//     collected steps in place.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(min(n,m)) (TwoRows)
func Distance(a, b string, opts *Options) (int, []Op, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.ReturnScript && cfg.MemoryMode != FullMatrix {
		return 0, nil, ErrScriptNeedsMatrix
	}

	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)

	if cfg.MemoryMode == TwoRows {
		return distanceTwoRows(ra, rb), nil, nil
	}

	// Full DP matrix.
	dp := make([][]int, n+1)
	var i, j int
	for i = range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j = 0; j <= m; j++ {
		dp[0][j] = j
	}

	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			if ra[i-1] == rb[j-1] {
				dp[i][j] = dp[i-1][j-1]

				continue
			}
			dp[i][j] = 1 + min3(dp[i-1][j], dp[i][j-1], dp[i-1][j-1])
		}
	}

	var script []Op
	if cfg.ReturnScript {
		script = backtrack(dp, ra, rb)
	}

	return dp[n][m], script, nil
}

// distanceTwoRows is the rolling-row variant: only the previous and
// current rows are kept, iterating over the shorter string as columns.
func distanceTwoRows(ra, rb []rune) int {
	// Keep the column dimension minimal.
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	n, m := len(ra), len(rb)

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	var i, j int
	for j = 0; j <= m; j++ {
		prev[j] = j
	}
	for i = 1; i <= n; i++ {
		curr[0] = i
		for j = 1; j <= m; j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]

				continue
			}
			curr[j] = 1 + min3(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack walks the full matrix from (n, m) to (0, 0), emitting ops
// in reverse and flipping them at the end.
func backtrack(dp [][]int, ra, rb []rune) []Op {
	var script []Op
	i, j := len(ra), len(rb)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && ra[i-1] == rb[j-1] && dp[i][j] == dp[i-1][j-1]:
			script = append(script, Op{Kind: OpMatch, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+1:
			script = append(script, Op{Kind: OpSubstitute, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+1:
			script = append(script, Op{Kind: OpDelete, I: i - 1, J: j})
			i--
		default:
			script = append(script, Op{Kind: OpInsert, I: i, J: j - 1})
			j--
		}
	}

	// reverse script in-place
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return script
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
