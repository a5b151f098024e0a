package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"cellar/internal/catalog"
	"cellar/internal/common"
	"cellar/internal/config"
	"cellar/internal/service"
	"cellar/internal/sommelier"
	"cellar/internal/storage"
	"cellar/internal/telemetry"
)

// databasePath resolves the SQLite path from config, defaulting to the
// XDG data directory.
func databasePath() (string, error) {
	if path := viper.GetString("database.path"); path != "" {
		return config.ExpandPath(path), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "cellar", "cellar.db"), nil
}

// openStorage opens the database and brings the schema up to date.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	path, err := databasePath()
	if err != nil {
		return nil, err
	}
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return store, nil
}

// loadCatalog prefers the seeded database and falls back to the JSON
// catalog named by catalog.path.
func loadCatalog(ctx context.Context, db service.Storage) (*catalog.Store, error) {
	if db != nil {
		count, err := db.CountWines(ctx)
		if err == nil && count > 0 {
			wines, err := db.GetWines(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to load wines: %w", err)
			}
			return catalog.NewStore(wines), nil
		}
	}

	path := config.ExpandPath(viper.GetString("catalog.path"))
	if path == "" {
		return nil, common.NewUserError(
			"No catalog available. Run 'cellar import <file>' or set catalog.path",
			common.ErrEmptyCatalog)
	}
	store, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	if store.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrEmptyCatalog, path)
	}
	return store, nil
}

// newRecorder honors the telemetry.enabled switch.
func newRecorder() telemetry.Recorder {
	if viper.GetBool("telemetry.enabled") {
		return telemetry.NewLogRecorder()
	}
	return telemetry.Nop()
}

// sommelierConfig assembles the provider settings from viper.
func sommelierConfig() sommelier.Config {
	cfg := sommelier.Config{
		Provider:    viper.GetString("llm.provider"),
		APIKey:      viper.GetString("llm.api_key"),
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	}
	if t := viper.GetDuration("llm.timeout"); t > 0 {
		cfg.Timeout = t
	} else {
		cfg.Timeout = 30 * time.Second
	}
	return cfg
}
