package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellar/internal/model"
)

func TestParse_Defaults(t *testing.T) {
	data := []byte(`[
		{
			"top100_rank": "1",
			"wine_full": "Château X",
			"winery_full": "Domaine Y",
			"label_url": "https://example.com/label.png",
			"varietal": "Cabernet Sauvignon",
			"vintage": "2021",
			"region": "Bordeaux",
			"country": "France",
			"color": "Red",
			"score": 95,
			"price": "$50",
			"note": "Dense and structured."
		},
		{}
	]`)

	store, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	full := store.Wines()[0]
	assert.Equal(t, 1, full.ID)
	assert.Equal(t, 1, full.Rank)
	assert.Equal(t, "Château X", full.Name)
	assert.Equal(t, "Domaine Y", full.Winery)
	assert.Equal(t, "2021", full.Vintage)
	assert.Equal(t, 95, full.Score)
	assert.Equal(t, 50.0, full.Price)

	// Empty record gets placeholders and its source position as ID.
	empty := store.Wines()[1]
	assert.Equal(t, 2, empty.ID)
	assert.Equal(t, 0, empty.Rank)
	assert.Equal(t, model.UnknownName, empty.Name)
	assert.Equal(t, model.UnknownWinery, empty.Winery)
	assert.Equal(t, model.UnknownRegion, empty.Region)
	assert.Equal(t, model.UnknownCountry, empty.Country)
	assert.Equal(t, model.UnknownValue, empty.Vintage)
	assert.Equal(t, model.UnknownValue, empty.Type)
	assert.Equal(t, model.UnknownDescription, empty.Description)
	assert.Equal(t, 0, empty.Score)
	assert.Equal(t, 0.0, empty.Price)
}

func TestParse_FlexibleFieldTypes(t *testing.T) {
	data := []byte(`[
		{"top100_rank": 7, "wine_full": "Quinta Z", "vintage": 2019, "score": "92", "price": 41.5}
	]`)

	store, err := Parse(data)
	require.NoError(t, err)

	w := store.Wines()[0]
	assert.Equal(t, 7, w.Rank)
	assert.Equal(t, "2019", w.Vintage)
	assert.Equal(t, 92, w.Score)
	assert.Equal(t, 41.5, w.Price)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"not": "an array"`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wines.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"wine_full": "Solo"}]`), 0o600))

	store, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "Solo", store.Wines()[0].Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$50", 50},
		{"50", 50},
		{" $12.99 ", 12.99},
		{"", 0},
		{"n/a", 0},
		{"$-5", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parsePrice(tt.in), "input %q", tt.in)
	}
}
