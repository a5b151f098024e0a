package catalog

import (
	"strings"

	"cellar/internal/model"
)

// FilterAll is the wildcard value matching every record for a field.
const FilterAll = "All"

// FilterState is the current search text and selected type/country chips.
type FilterState struct {
	Search  string
	Type    string
	Country string
}

// NewFilterState returns the default state matching the whole catalog.
func NewFilterState() FilterState {
	return FilterState{Type: FilterAll, Country: FilterAll}
}

// Matches reports whether the wine passes the filter. It is a pure function:
// search is an empty-or-substring match on name and winery (case
// insensitive), type and country are exact matches unless set to FilterAll.
func Matches(w model.Wine, f FilterState) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(w.Name), needle) &&
			!strings.Contains(strings.ToLower(w.Winery), needle) {
			return false
		}
	}
	if f.Type != FilterAll && w.Type != f.Type {
		return false
	}
	if f.Country != FilterAll && w.Country != f.Country {
		return false
	}
	return true
}

// Filter returns the wines matching f, preserving catalog order.
func Filter(wines []model.Wine, f FilterState) []model.Wine {
	matched := make([]model.Wine, 0, len(wines))
	for _, w := range wines {
		if Matches(w, f) {
			matched = append(matched, w)
		}
	}
	return matched
}
