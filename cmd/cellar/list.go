package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cellar/internal/catalog"
	"cellar/internal/model"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List wines matching the given filters",
		Long: `Print a page of the catalog. The same filters the browser offers are
available as flags; filters combine with AND semantics and the type and
country filters accept "All" as a wildcard.

Examples:
  cellar list
  cellar list --country France --page 2
  cellar list --search cabernet --type Red`,
		RunE: runList,
	}

	cmd.Flags().String("search", "", "Case-insensitive match on name or winery")
	cmd.Flags().String("type", catalog.FilterAll, "Wine type filter")
	cmd.Flags().String("country", catalog.FilterAll, "Country filter")
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("page-size", catalog.DefaultPageSize, "Wines per page")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	store, err := loadCatalog(ctx, db)
	if err != nil {
		return err
	}

	filter := catalog.NewFilterState()
	filter.Search, _ = cmd.Flags().GetString("search")
	filter.Type, _ = cmd.Flags().GetString("type")
	filter.Country, _ = cmd.Flags().GetString("country")
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	filtered := catalog.Filter(store.Wines(), filter)
	if len(filtered) == 0 {
		fmt.Println("No wines match the given filters.")
		return nil
	}

	ledger := db.LoadLedger(ctx)
	for _, w := range catalog.Page(filtered, page, pageSize) {
		status := ""
		if s := ledger.Status(w.ID); s.Valid() {
			status = " [" + s.Label() + "]"
		}
		fmt.Printf("#%3d  %-44s %-24s %-10s %3d pts  $%.0f%s\n",
			w.Rank, truncateCol(w.Name, 44), truncateCol(w.Winery, 24),
			w.Vintage, w.Score, w.Price, status)
	}

	total := catalog.TotalPages(len(filtered), pageSize)
	if total > 1 {
		fmt.Printf("\nPage %d of %d (%d wines)\n", page, total, len(filtered))
	}
	return nil
}

func truncateCol(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// statusLabel is shared by list and record output.
func statusLabel(s model.TastingStatus) string {
	if s.Valid() {
		return s.Label()
	}
	return "-"
}
