package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cellar/internal/common"
	"cellar/internal/config"
	"cellar/internal/controller"
	"cellar/internal/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export your tasting record to CSV or JSON",
		Long: `Write the tasting record to a dated file in the output directory.

Examples:
  cellar export
  cellar export --format json --out ~/Documents`,
		RunE: runExport,
	}

	cmd.Flags().String("format", "csv", "Output format (csv, json)")
	cmd.Flags().String("out", ".", "Output directory")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	outDir, _ := cmd.Flags().GetString("out")

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	ledger := db.LoadLedger(ctx)
	if len(ledger) == 0 {
		return fmt.Errorf("%w: nothing to export", common.ErrEmptyLedger)
	}

	store, err := loadCatalog(ctx, db)
	if err != nil {
		return err
	}

	ctrl := controller.New(ctx, store, db, newRecorder())
	payload, name, err := ctrl.Export(ctx, format)
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	path := filepath.Join(config.ExpandPath(outDir), name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("Exported %d entries to %s\n", len(ledger), path)
	return nil
}
