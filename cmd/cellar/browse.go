package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cellar/internal/controller"
	"cellar/internal/service"
	"cellar/internal/sommelier"
	"cellar/internal/ui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Open the interactive catalog browser. Search and filter the Top 100,
mark wines as tasted or want-to-taste, export your tasting record, and
chat with Dr. Vinny.`,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
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

	ctrl := controller.New(ctx, store, db, newRecorder())

	// A missing API key disables the chat panel, not the browser.
	var somm service.Sommelier
	if cfg := sommelierConfig(); cfg.APIKey != "" {
		somm, err = sommelier.NewClient(ctx, cfg)
		if err != nil {
			slog.Warn("Sommelier unavailable", "error", err)
			somm = nil
		}
	}

	program := tea.NewProgram(ui.New(ctrl, somm), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
