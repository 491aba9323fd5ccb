package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/repository"
)

var _ repository.SentReminderRepository = (*sentReminderRepo)(nil)

type sentReminderRepo struct {
	pool *pgxpool.Pool
}

func NewSentReminderRepo(pool *pgxpool.Pool) *sentReminderRepo {
	return &sentReminderRepo{pool: pool}
}

func (r *sentReminderRepo) FindAll(ctx context.Context, tx repository.Tx) ([]*model.SentReminder, error) {
	const q = `SELECT voucher_id, threshold_days, sent_at FROM sent_reminders;`
	rows, err := queryRows(ctx, r.pool, tx, q)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrInvalidExecContext):
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()
	var out []*model.SentReminder
	for rows.Next() {
		var s model.SentReminder
		if err := rows.Scan(&s.VoucherID, &s.ThresholdDays, &s.SentAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrReadDatabaseRow
	}
	return out, nil
}

func (r *sentReminderRepo) MarkSent(ctx context.Context, tx repository.Tx, voucherID string, thresholdDays int, sentAt time.Time) error {
	const q = `
INSERT INTO sent_reminders (id, voucher_id, threshold_days, sent_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (voucher_id, threshold_days) DO NOTHING;`

	// The UNIQUE constraint on (voucher_id, threshold_days) makes
	// re-recording a pair a no-op, which is exactly the at-most-once
	// invariant the scheduler leans on.
	_, err := execSQL(ctx, r.pool, tx, q, uuid.NewString(), voucherID, thresholdDays, sentAt)
	if err != nil {
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *sentReminderRepo) DeleteByVoucher(ctx context.Context, tx repository.Tx, voucherID string) error {
	const q = `DELETE FROM sent_reminders WHERE voucher_id=$1;`
	if _, err := execSQL(ctx, r.pool, tx, q, voucherID); err != nil {
		return domain.ErrOperationFailed
	}
	return nil
}
