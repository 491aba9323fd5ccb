package repository

import (
	"context"
	"time"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
)

// SentReminderRepository is the durable sent-log behind the reminder
// scheduler's idempotence. A (voucher, threshold) pair is recorded at
// most once.
type SentReminderRepository interface {
	FindAll(ctx context.Context, tx Tx) ([]*model.SentReminder, error)
	// MarkSent records a pair; recording an already-present pair is a
	// no-op, not an error.
	MarkSent(ctx context.Context, tx Tx, voucherID string, thresholdDays int, sentAt time.Time) error
	// DeleteByVoucher garbage-collects the records of a deleted voucher.
	DeleteByVoucher(ctx context.Context, tx Tx, voucherID string) error
}
