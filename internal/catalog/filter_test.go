package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellar/internal/model"
)

func testWines() []model.Wine {
	return []model.Wine{
		{ID: 1, Rank: 1, Name: "Château X", Winery: "Domaine Y", Type: "Red", Country: "France", Score: 95, Price: 50},
		{ID: 2, Rank: 2, Name: "Ridge Monte Bello", Winery: "Ridge Vineyards", Type: "Red", Country: "United States", Score: 97, Price: 260},
		{ID: 3, Rank: 3, Name: "Cloudy Bay Sauvignon Blanc", Winery: "Cloudy Bay", Type: "White", Country: "New Zealand", Score: 91, Price: 35},
		{ID: 4, Rank: 4, Name: "Billecart-Salmon Brut", Winery: "Billecart-Salmon", Type: "Sparkling", Country: "France", Score: 93, Price: 80},
	}
}

func TestMatches(t *testing.T) {
	wines := testWines()

	tests := []struct {
		name   string
		filter FilterState
		wantID []int
	}{
		{
			name:   "default state matches everything",
			filter: NewFilterState(),
			wantID: []int{1, 2, 3, 4},
		},
		{
			name:   "search matches name case-insensitively",
			filter: FilterState{Search: "château", Type: FilterAll, Country: FilterAll},
			wantID: []int{1},
		},
		{
			name:   "search matches winery",
			filter: FilterState{Search: "ridge", Type: FilterAll, Country: FilterAll},
			wantID: []int{2},
		},
		{
			name:   "type filter is exact",
			filter: FilterState{Type: "Red", Country: FilterAll},
			wantID: []int{1, 2},
		},
		{
			name:   "country filter is exact",
			filter: FilterState{Type: FilterAll, Country: "France"},
			wantID: []int{1, 4},
		},
		{
			name:   "filters combine with AND",
			filter: FilterState{Search: "salmon", Type: "Sparkling", Country: "France"},
			wantID: []int{4},
		},
		{
			name:   "no match yields empty list",
			filter: FilterState{Type: "White", Country: "France"},
			wantID: []int{},
		},
		{
			name:   "type filter is case-sensitive",
			filter: FilterState{Type: "red", Country: FilterAll},
			wantID: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(wines, tt.filter)
			ids := make([]int, 0, len(got))
			for _, w := range got {
				ids = append(ids, w.ID)
			}
			assert.Equal(t, tt.wantID, ids)
		})
	}
}

func TestMatches_Pure(t *testing.T) {
	wine := testWines()[0]
	filter := FilterState{Search: "château", Type: "Red", Country: "France"}
	first := Matches(wine, filter)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Matches(wine, filter))
	}
}

func TestFilter_SubsetOfCatalog(t *testing.T) {
	wines := testWines()
	got := Filter(wines, FilterState{Type: "Red", Country: FilterAll})
	for _, w := range got {
		assert.Equal(t, "Red", w.Type)
	}
}

func TestFilter_SingleRecordScenario(t *testing.T) {
	wines := []model.Wine{
		{ID: 1, Name: "Château X", Winery: "Domaine Y", Type: "Red", Country: "France", Score: 95, Price: 50},
	}

	filtered := Filter(wines, NewFilterState())
	require.Len(t, filtered, 1)
	assert.Equal(t, filtered, Page(filtered, 1, DefaultPageSize))

	assert.Empty(t, Filter(wines, FilterState{Type: "White", Country: FilterAll}))
}

func TestStore_Vocabularies(t *testing.T) {
	store := NewStore(testWines())

	assert.Equal(t, []string{"Red", "White", "Sparkling"}, store.Types())
	assert.Equal(t, []string{"France", "United States", "New Zealand"}, store.Countries())
}

func TestStore_ByID(t *testing.T) {
	store := NewStore(testWines())

	w, ok := store.ByID(3)
	require.True(t, ok)
	assert.Equal(t, "Cloudy Bay Sauvignon Blanc", w.Name)

	_, ok = store.ByID(99)
	assert.False(t, ok)
}
