// Package distance computes the Levenshtein edit distance between two strings.
package distance

import (
	"github.com/baditaflorin/go_pronunciation_similarity/internal/pool"
)

var rows = pool.NewRowPool(128)

// Levenshtein returns the minimum number of single-byte insertions, deletions,
// or substitutions needed to turn a into b.
//
// Inputs are expected to be normalized ASCII, so bytes are compared directly.
// Only one DP row of len(shorter)+1 cells is kept alive. Results are
// cross-checked against agnivade/levenshtein and antzucaro/matchr in tests.
func Levenshtein(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	// a is now the longer string
	if len(b) == 0 {
		return len(a)
	}

	rowPtr := rows.Get(len(b) + 1)
	defer rows.Put(rowPtr)
	row := *rowPtr

	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0] // dp[i-1][0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			up := row[j] // dp[i-1][j]
			if a[i-1] == b[j-1] {
				row[j] = diag
			} else {
				row[j] = 1 + min(up, row[j-1], diag)
			}
			diag = up
		}
	}

	return row[len(b)]
}
