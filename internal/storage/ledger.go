package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"cellar/internal/common"
	"cellar/internal/model"
	"cellar/internal/service"
)

// LoadLedger reads the persisted tasting ledger. An absent or malformed slot
// yields an empty ledger; this call never fails the caller.
func (s *SQLiteStorage) LoadLedger(ctx context.Context) model.Ledger {
	value, err := s.GetSetting(ctx, service.SettingTastingLedger)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			slog.Warn("Failed to load tasting ledger, starting empty", "error", err)
		}
		return model.Ledger{}
	}

	var ledger model.Ledger
	if err := json.Unmarshal([]byte(value), &ledger); err != nil {
		common.LogError(fmt.Errorf("%w: %v", common.ErrDatabaseCorrupted, err),
			"Corrupt tasting ledger payload, starting empty",
			common.Fields{"setting": service.SettingTastingLedger})
		return model.Ledger{}
	}
	if ledger == nil {
		ledger = model.Ledger{}
	}
	return ledger
}

// SaveLedger persists the full ledger. Called after every mutation.
func (s *SQLiteStorage) SaveLedger(ctx context.Context, ledger model.Ledger) error {
	payload, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode tasting ledger: %w", err)
	}
	return s.SetSetting(ctx, service.SettingTastingLedger, string(payload))
}
