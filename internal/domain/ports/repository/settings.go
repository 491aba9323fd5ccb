package repository

import (
	"context"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
)

// SettingsRepository stores the single ReminderSettings record.
type SettingsRepository interface {
	// Load returns ErrNotFound when nothing was ever saved; callers fall
	// back to model.DefaultReminderSettings.
	Load(ctx context.Context, tx Tx) (*model.ReminderSettings, error)
	// Save replaces the settings wholesale.
	Save(ctx context.Context, tx Tx, s *model.ReminderSettings) error
}
