// Package export serializes the tasting ledger joined with the catalog into
// downloadable CSV and JSON payloads.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"cellar/internal/catalog"
	"cellar/internal/common"
	"cellar/internal/model"
)

// Format selects the output encoding.
type Format string

const (
	// FormatCSV produces comma-delimited text.
	FormatCSV Format = "csv"
	// FormatJSON produces a pretty-printed JSON array.
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", common.ErrInvalidConfig, s)
	}
}

// Row is one exported ledger entry joined with its catalog record. Field
// order is the export column order.
type Row struct {
	Rank    int     `json:"Rank"`
	Wine    string  `json:"Wine"`
	Winery  string  `json:"Winery"`
	Vintage string  `json:"Vintage"`
	Type    string  `json:"Type"`
	Region  string  `json:"Region"`
	Country string  `json:"Country"`
	Status  string  `json:"Status"`
	Score   int     `json:"Score"`
	Price   string  `json:"Price"`
}

var csvHeader = []string{
	"Rank", "Wine", "Winery", "Vintage", "Type", "Region", "Country", "Status", "Score", "Price",
}

// BuildRows joins the ledger with the catalog. Ledger entries whose wine is
// no longer in the catalog are skipped. Go map iteration is unordered, so
// rows are sorted by wine ID to keep output deterministic; this is
// ledger-key order, not catalog rank order.
func BuildRows(ledger model.Ledger, store *catalog.Store) []Row {
	ids := make([]int, 0, len(ledger))
	for id := range ledger {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	rows := make([]Row, 0, len(ids))
	for _, id := range ids {
		w, ok := store.ByID(id)
		if !ok {
			continue
		}
		rows = append(rows, Row{
			Rank:    w.Rank,
			Wine:    w.Name,
			Winery:  w.Winery,
			Vintage: w.Vintage,
			Type:    w.Type,
			Region:  w.Region,
			Country: w.Country,
			Status:  ledger[id].Label(),
			Score:   w.Score,
			Price:   "$" + formatPrice(w.Price),
		})
	}
	return rows
}

// Encode serializes the ledger joined with the catalog in the given format.
// Callers are expected to suppress export for an empty ledger; encoding an
// empty row list is still well-defined (header or empty array only).
func Encode(ledger model.Ledger, store *catalog.Store, format Format) ([]byte, error) {
	rows := BuildRows(ledger, store)
	switch format {
	case FormatCSV:
		return encodeCSV(rows), nil
	case FormatJSON:
		return encodeJSON(rows)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", common.ErrInvalidConfig, format)
	}
}

// encodeCSV wraps every value in double quotes. Embedded quotes are not
// escaped; catalog values do not contain them.
func encodeCSV(rows []Row) []byte {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, r := range rows {
		values := []string{
			strconv.Itoa(r.Rank),
			r.Wine,
			r.Winery,
			r.Vintage,
			r.Type,
			r.Region,
			r.Country,
			r.Status,
			strconv.Itoa(r.Score),
			r.Price,
		}
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = `"` + v + `"`
		}
		lines = append(lines, strings.Join(quoted, ","))
	}
	return []byte(strings.Join(lines, "\n"))
}

func encodeJSON(rows []Row) ([]byte, error) {
	payload, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export rows: %w", err)
	}
	return payload, nil
}

// Filename returns the download name for an export taken at the given time,
// e.g. wine-tasting-list-2026-09-01.csv.
func Filename(format Format, now time.Time) string {
	return fmt.Sprintf("wine-tasting-list-%s.%s", now.Format("2006-01-02"), format)
}

// formatPrice renders a price with no padding: whole dollars without
// decimals, fractional prices with only the digits they carry.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
