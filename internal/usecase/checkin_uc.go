package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/repository"
)

// Compile-time check
var _ CheckInUseCase = (*checkInUC)(nil)

type CheckInUseCase interface {
	// FindNearby matches a store-name-or-region check-in query against
	// the voucher set. An empty result is not an error.
	FindNearby(ctx context.Context, q model.CheckInQuery) ([]*model.Voucher, error)
}

type checkInUC struct {
	vouchers repository.VoucherRepository
	log      *zerolog.Logger
	now      func() time.Time
}

func NewCheckInUseCase(vouchers repository.VoucherRepository, logger *zerolog.Logger) *checkInUC {
	ucLog := logger.With().Str("component", "CheckInUC").Logger()
	return &checkInUC{
		vouchers: vouchers,
		log:      &ucLog,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *checkInUC) FindNearby(ctx context.Context, q model.CheckInQuery) ([]*model.Voucher, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	vouchers, err := u.vouchers.FindAll(ctx, repository.NoTX)
	if err != nil {
		return nil, err
	}
	matches, err := model.MatchNearby(vouchers, q, u.now())
	if err != nil {
		return nil, err
	}
	u.log.Debug().Int("matches", len(matches)).Msg("check-in query evaluated")
	return matches, nil
}
