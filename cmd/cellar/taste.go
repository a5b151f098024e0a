package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cellar/internal/model"
)

func tasteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "taste [wine-id] [tasted|want]",
		Short: "Toggle a wine's tasting status",
		Long: `Mark a wine as tasted or want-to-taste, or clear the mark.

Applying the status a wine already has removes it; applying the other
status replaces it. The record is saved immediately.

Examples:
  cellar taste 12 tasted
  cellar taste 12 want
  cellar taste 12 tasted   # run again to clear`,
		Args: cobra.ExactArgs(2),
		RunE: runTaste,
	}
}

func runTaste(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	wineID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid wine id %q", args[0])
	}
	status := model.TastingStatus(args[1])
	if !status.Valid() {
		return fmt.Errorf("invalid status %q: use tasted or want", args[1])
	}

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	store, err := loadCatalog(ctx, db)
	if err != nil {
		return err
	}
	wine, ok := store.ByID(wineID)
	if !ok {
		return fmt.Errorf("no wine with id %d", wineID)
	}

	ledger := db.LoadLedger(ctx)
	ledger = ledger.Toggle(wineID, status)
	if err := db.SaveLedger(ctx, ledger); err != nil {
		return fmt.Errorf("failed to save tasting record: %w", err)
	}

	if after := ledger.Status(wineID); after.Valid() {
		fmt.Printf("%s: %s\n", wine.Name, after.Label())
	} else {
		fmt.Printf("%s: mark cleared\n", wine.Name)
	}
	return nil
}
