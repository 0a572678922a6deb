package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-client/internal/logger"
)

const (
	selectSetting = `SELECT value FROM settings WHERE key = ?;`

	upsertSetting = `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
)

// GetSetting implements [SettingsRepository].
func (s *syncState) GetSetting(ctx context.Context, key string) (string, error) {
	var value string

	err := s.q.QueryRowContext(ctx, selectSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("setting %q: %w", key, ErrNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.GetSetting").
			Str("key", key).
			Msg("failed to read setting")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

// SetSetting implements [SettingsRepository].
func (s *syncState) SetSetting(ctx context.Context, key, value string) error {
	if _, err := s.q.ExecContext(ctx, upsertSetting, key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.SetSetting").
			Str("key", key).
			Msg("failed to store setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
