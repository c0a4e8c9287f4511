package engine

import (
	"sort"
	"strings"

	"github.com/theirongolddev/billtab/internal/model"
)

// OrderForDisplay returns a copy of the bills in display order: stable
// ascending by due date with undated bills after all dated ones, ties
// broken by case-insensitive name. Storage order is never touched; this
// is recomputed on every render request.
func OrderForDisplay(bills []model.Bill) []model.Bill {
	ordered := make([]model.Bill, len(bills))
	copy(ordered, bills)

	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := ordered[i].Date, ordered[j].Date
		switch {
		case di == "" && dj != "":
			return false
		case di != "" && dj == "":
			return true
		case di != dj:
			// Canonical YYYY-MM-DD: lexical order is chronological.
			return di < dj
		}
		return strings.ToLower(ordered[i].Name) < strings.ToLower(ordered[j].Name)
	})

	return ordered
}
