package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func recordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Show your tasting record",
		RunE:  runRecord,
	}
}

func runRecord(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	ledger := db.LoadLedger(ctx)
	if len(ledger) == 0 {
		fmt.Println("Your tasting record is empty.")
		return nil
	}

	store, err := loadCatalog(ctx, db)
	if err != nil {
		return err
	}

	ids := make([]int, 0, len(ledger))
	for id := range ledger {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		name := fmt.Sprintf("wine %d (not in catalog)", id)
		if w, ok := store.ByID(id); ok {
			name = fmt.Sprintf("#%d %s, %s", w.Rank, w.Name, w.Winery)
		}
		fmt.Printf("%-14s %s\n", statusLabel(ledger.Status(id)), name)
	}

	tasted, want := ledger.Counts()
	fmt.Printf("\nTasted: %d / Want to Taste: %d\n", tasted, want)
	return nil
}
