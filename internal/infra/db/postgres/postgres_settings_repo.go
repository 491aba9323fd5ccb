package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/repository"
)

var _ repository.SettingsRepository = (*settingsRepo)(nil)

// settingsRepo stores the single ReminderSettings row. A fixed row id
// keeps the save a plain upsert.
type settingsRepo struct {
	pool *pgxpool.Pool
}

const settingsRowID = 1

func NewSettingsRepo(pool *pgxpool.Pool) *settingsRepo {
	return &settingsRepo{pool: pool}
}

func (r *settingsRepo) Load(ctx context.Context, tx repository.Tx) (*model.ReminderSettings, error) {
	const q = `
SELECT reminder_days, local_enabled, email_enabled, email_address, default_currency
  FROM reminder_settings
 WHERE id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, settingsRowID)
	if err != nil {
		return nil, err
	}
	var s model.ReminderSettings
	if err := row.Scan(&s.ReminderDays, &s.LocalEnabled, &s.EmailEnabled, &s.EmailAddress, &s.DefaultCurrency); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return &s, nil
}

func (r *settingsRepo) Save(ctx context.Context, tx repository.Tx, s *model.ReminderSettings) error {
	const q = `
INSERT INTO reminder_settings (id, reminder_days, local_enabled, email_enabled, email_address, default_currency)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (id) DO UPDATE SET
  reminder_days=$2, local_enabled=$3, email_enabled=$4, email_address=$5, default_currency=$6;`

	_, err := execSQL(ctx, r.pool, tx, q,
		settingsRowID, s.ReminderDays, s.LocalEnabled, s.EmailEnabled, s.EmailAddress, s.DefaultCurrency)
	if err != nil {
		return domain.ErrOperationFailed
	}
	return nil
}
