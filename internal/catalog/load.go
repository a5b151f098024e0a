package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cellar/internal/model"
)

// rawWine mirrors one record of the source data file. The publisher's feed is
// loosely typed: numeric fields sometimes arrive as strings, so every field
// is decoded through flexString and normalized afterwards.
type rawWine struct {
	Rank     flexString `json:"top100_rank"`
	Name     flexString `json:"wine_full"`
	Winery   flexString `json:"winery_full"`
	LabelURL flexString `json:"label_url"`
	Varietal flexString `json:"varietal"`
	Vintage  flexString `json:"vintage"`
	Region   flexString `json:"region"`
	Country  flexString `json:"country"`
	Color    flexString `json:"color"`
	Score    flexString `json:"score"`
	Price    flexString `json:"price"`
	Note     flexString `json:"note"`
}

// flexString decodes a JSON string, number, or null into a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

// LoadFile reads and normalizes the catalog data file.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog JSON and applies per-field defaults. Malformed
// individual fields degrade to placeholders; only unparseable JSON fails.
func Parse(data []byte) (*Store, error) {
	var raw []rawWine
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog data: %w", err)
	}

	wines := make([]model.Wine, 0, len(raw))
	for i, r := range raw {
		wines = append(wines, normalize(r, i+1))
	}
	return NewStore(wines), nil
}

// normalize maps a raw record to a Wine, substituting the 1-based source
// position when the rank is missing or unusable.
func normalize(r rawWine, position int) model.Wine {
	rank := parseInt(string(r.Rank))
	id := rank
	if id == 0 {
		id = position
	}

	vintage := strings.TrimSpace(string(r.Vintage))
	if parseInt(vintage) == 0 {
		vintage = model.UnknownValue
	}

	return model.Wine{
		ID:          id,
		Rank:        rank,
		Name:        defaultText(string(r.Name), model.UnknownName),
		Winery:      defaultText(string(r.Winery), model.UnknownWinery),
		ImageURL:    strings.TrimSpace(string(r.LabelURL)),
		Varietal:    defaultText(string(r.Varietal), model.UnknownValue),
		Vintage:     vintage,
		Region:      defaultText(string(r.Region), model.UnknownRegion),
		Country:     defaultText(string(r.Country), model.UnknownCountry),
		Type:        defaultText(string(r.Color), model.UnknownValue),
		Score:       parseInt(string(r.Score)),
		Price:       parsePrice(string(r.Price)),
		Description: defaultText(string(r.Note), model.UnknownDescription),
	}
}

func defaultText(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parsePrice strips a leading currency symbol and parses the remainder.
// Unparseable prices default to 0.
func parsePrice(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil || p < 0 {
		return 0
	}
	return p
}
