package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"cellar/internal/catalog"
	"cellar/internal/config"
	"cellar/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Seed the catalog from a JSON file",
		Long: `Import a Top 100 catalog JSON file into the local database.

The importer tolerates loosely typed source data: numeric fields may
arrive as strings, and missing names, regions, and notes are filled
with placeholders. Re-importing replaces the previous catalog.

Examples:
  cellar import top100.json
  cellar import --dry-run top100.json`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx := cmd.Context()

	store, err := catalog.LoadFile(config.ExpandPath(args[0]))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	wines := store.Wines()

	slog.Info("🍷 Importing catalog...",
		"file", args[0],
		"wines", len(wines),
		"dry_run", dryRun)

	if dryRun {
		for _, w := range wines {
			fmt.Printf("#%3d  %-44s %-24s %s\n", w.Rank, w.Name, w.Winery, w.Country)
		}
		slog.Info("Dry run complete, nothing saved", "wines", len(wines))
		return nil
	}

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// SaveWines replaces the table in one transaction; the bar tracks
	// the per-wine validation pass in front of it.
	bar := progressbar.NewOptions(len(wines),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing wines..."),
	)

	valid := make([]model.Wine, 0, len(wines))
	for _, w := range wines {
		if w.Name == "" {
			slog.Warn("Skipping wine without a name", "id", w.ID)
		} else {
			valid = append(valid, w)
		}
		_ = bar.Add(1)
	}
	fmt.Fprintln(os.Stderr)

	if err := db.SaveWines(ctx, valid); err != nil {
		return fmt.Errorf("failed to save wines: %w", err)
	}

	slog.Info("✅ Catalog imported", "wines", len(valid))
	return nil
}
