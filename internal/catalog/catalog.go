// Package catalog holds the static wine list and the pure filtering and
// pagination logic that drives the catalog view.
package catalog

import (
	"cellar/internal/model"
)

// Store is the load-once collection of wine records.
type Store struct {
	wines []model.Wine
	byID  map[int]model.Wine
}

// NewStore builds a store from already-normalized records.
func NewStore(wines []model.Wine) *Store {
	byID := make(map[int]model.Wine, len(wines))
	for _, w := range wines {
		byID[w.ID] = w
	}
	return &Store{wines: wines, byID: byID}
}

// Wines returns all records in catalog order. Callers must not mutate the
// returned slice.
func (s *Store) Wines() []model.Wine {
	return s.wines
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.wines)
}

// ByID looks up a wine by identifier.
func (s *Store) ByID(id int) (model.Wine, bool) {
	w, ok := s.byID[id]
	return w, ok
}

// Types returns the distinct non-empty wine types in first-seen order,
// for building the filter chips.
func (s *Store) Types() []string {
	return distinct(s.wines, func(w model.Wine) string { return w.Type })
}

// Countries returns the distinct non-empty countries in first-seen order.
func (s *Store) Countries() []string {
	return distinct(s.wines, func(w model.Wine) string { return w.Country })
}

func distinct(wines []model.Wine, field func(model.Wine) string) []string {
	seen := make(map[string]bool, len(wines))
	var values []string
	for _, w := range wines {
		v := field(w)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
