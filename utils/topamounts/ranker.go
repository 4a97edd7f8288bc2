package topamounts

import (
	"sort"

	"github.com/Aashish23092/statement-top-amounts/dto"
)

// TopN is the number of entries kept per side.
const TopN = 5

// Top returns the n largest entries by value. Entries of equal value keep
// their collection order. The input slice is left untouched.
func Top(entries []dto.AmountEntry, n int) []dto.AmountEntry {
	sorted := make([]dto.AmountEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
