package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/repository"
)

// Compile-time check
var _ VoucherUseCase = (*voucherUC)(nil)

type VoucherUseCase interface {
	// Create validates and persists a new voucher, returning it with its id.
	Create(ctx context.Context, input model.Voucher) (*model.Voucher, error)
	List(ctx context.Context) ([]*model.Voucher, error)
	Get(ctx context.Context, id string) (*model.Voucher, error)
	// Delete removes the voucher and garbage-collects its sent-reminder
	// records in the same transaction.
	Delete(ctx context.Context, id string) error
	// Stats derives the aggregate status counts at the current instant.
	Stats(ctx context.Context) (model.Stats, error)
	// ExpiringSoon lists non-expired vouchers with at most windowDays
	// remaining, soonest first. windowDays <= 0 falls back to 7.
	ExpiringSoon(ctx context.Context, windowDays int) ([]*model.Voucher, error)
	// PrefillFromScan turns extracted fields into an unsaved draft
	// voucher. It never persists anything.
	PrefillFromScan(fields model.ScannedFields) *model.Voucher
}

type voucherUC struct {
	vouchers repository.VoucherRepository
	sentLog  repository.SentReminderRepository
	txm      repository.TransactionManager
	log      *zerolog.Logger
	now      func() time.Time
}

func NewVoucherUseCase(
	vouchers repository.VoucherRepository,
	sentLog repository.SentReminderRepository,
	txm repository.TransactionManager,
	logger *zerolog.Logger,
) *voucherUC {
	ucLog := logger.With().Str("component", "VoucherUC").Logger()
	return &voucherUC{
		vouchers: vouchers,
		sentLog:  sentLog,
		txm:      txm,
		log:      &ucLog,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *voucherUC) Create(ctx context.Context, input model.Voucher) (*model.Voucher, error) {
	v, err := model.NewVoucher(uuid.NewString(), input)
	if err != nil {
		return nil, err
	}
	if err := u.vouchers.Save(ctx, repository.NoTX, v); err != nil {
		return nil, err
	}
	u.log.Info().Str("voucher_id", v.ID).Str("brand", v.BrandName).Msg("voucher created")
	return v, nil
}

func (u *voucherUC) List(ctx context.Context) ([]*model.Voucher, error) {
	return u.vouchers.FindAll(ctx, repository.NoTX)
}

func (u *voucherUC) Get(ctx context.Context, id string) (*model.Voucher, error) {
	return u.vouchers.FindByID(ctx, repository.NoTX, id)
}

func (u *voucherUC) Delete(ctx context.Context, id string) error {
	err := u.txm.WithTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		if err := u.vouchers.Delete(ctx, tx, id); err != nil {
			return err
		}
		// Sent-log rows for a deleted voucher are unreachable; collect
		// them here rather than leaving them for a sweeper.
		return u.sentLog.DeleteByVoucher(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	u.log.Info().Str("voucher_id", id).Msg("voucher deleted")
	return nil
}

func (u *voucherUC) Stats(ctx context.Context) (model.Stats, error) {
	vouchers, err := u.vouchers.FindAll(ctx, repository.NoTX)
	if err != nil {
		return model.Stats{}, err
	}
	return model.ComputeStats(vouchers, u.now()), nil
}

func (u *voucherUC) ExpiringSoon(ctx context.Context, windowDays int) ([]*model.Voucher, error) {
	if windowDays <= 0 {
		windowDays = model.ExpiringSoonWindowDays
	}
	vouchers, err := u.vouchers.FindAll(ctx, repository.NoTX)
	if err != nil {
		return nil, err
	}
	return model.ExpiringWithin(vouchers, u.now(), windowDays), nil
}

func (u *voucherUC) PrefillFromScan(fields model.ScannedFields) *model.Voucher {
	draft := &model.Voucher{
		BrandName:      strings.TrimSpace(fields.BrandName),
		DiscountAmount: strings.TrimSpace(fields.DiscountAmount),
		VoucherCode:    strings.TrimSpace(fields.VoucherCode),
		Category:       strings.TrimSpace(fields.Category),
		Description:    strings.TrimSpace(fields.Description),
		Scope:          model.ScopeAnywhere,
		Redemption:     model.RedemptionBoth,
	}
	// A malformed extracted date just leaves the field blank for the
	// user to fill in; the scan is a pre-fill, not a source of truth.
	if t, err := model.ParseExpiryDate(fields.ExpiryDate); err == nil {
		draft.ExpiryDate = t
	}
	return draft
}
