// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"cellar/internal/model"
)

// Well-known settings keys, one slot per persisted piece of user state.
const (
	SettingTastingLedger = "tasting_ledger"
	SettingHideWelcome   = "hide_welcome"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Catalog cache operations
	SaveWines(ctx context.Context, wines []model.Wine) error
	GetWines(ctx context.Context) ([]model.Wine, error)
	CountWines(ctx context.Context) (int, error)

	// Settings slot operations (tasting ledger, welcome flag)
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	// Tasting ledger operations layered over the settings slots
	LoadLedger(ctx context.Context) model.Ledger
	SaveLedger(ctx context.Context, ledger model.Ledger) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Sommelier is the one-shot generative text capability behind the chat
// assistant. Implementations are external and fallible; callers substitute a
// fixed apology when Generate fails.
type Sommelier interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
