package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/adapter"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/repository"
)

// Compile-time check
var _ ReminderUseCase = (*reminderUC)(nil)

type ReminderUseCase interface {
	// RunCycle performs one reminder evaluation: snapshot the clock,
	// load vouchers + settings + sent-log, compute newly-due
	// (voucher, threshold) pairs, dispatch them, and record them as
	// sent. Returns the number of newly-due pairs.
	RunCycle(ctx context.Context) (int, error)
}

// ReminderDispatcher is the slice of the notification dispatcher this
// use case needs: fan one payload out to the channels the settings
// enable and report per-channel outcomes.
type ReminderDispatcher interface {
	Dispatch(ctx context.Context, p model.ReminderPayload, s *model.ReminderSettings) []adapter.DispatchOutcome
}

type reminderUC struct {
	vouchers   repository.VoucherRepository
	settings   repository.SettingsRepository
	sentLog    repository.SentReminderRepository
	dispatcher ReminderDispatcher
	log        *zerolog.Logger
	now        func() time.Time
}

func NewReminderUseCase(
	vouchers repository.VoucherRepository,
	settings repository.SettingsRepository,
	sentLog repository.SentReminderRepository,
	dispatcher ReminderDispatcher,
	logger *zerolog.Logger,
) *reminderUC {
	ucLog := logger.With().Str("component", "ReminderUC").Logger()
	return &reminderUC{
		vouchers:   vouchers,
		settings:   settings,
		sentLog:    sentLog,
		dispatcher: dispatcher,
		log:        &ucLog,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *reminderUC) RunCycle(ctx context.Context) (int, error) {
	now := u.now()

	// Step 1: snapshot state. Any load failure aborts the whole cycle
	// with nothing recorded, so the next tick retries from scratch.
	vouchers, err := u.vouchers.FindAll(ctx, repository.NoTX)
	if err != nil {
		return 0, fmt.Errorf("%w: load vouchers: %v", domain.ErrSchedulerStorage, err)
	}
	settings, err := u.loadSettings(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: load settings: %v", domain.ErrSchedulerStorage, err)
	}
	sent, err := u.sentLog.FindAll(ctx, repository.NoTX)
	if err != nil {
		return 0, fmt.Errorf("%w: load sent log: %v", domain.ErrSchedulerStorage, err)
	}

	due := computeDuePairs(vouchers, settings.ReminderDays, sent, now)
	if len(due) == 0 {
		return 0, nil
	}

	// Dispatch every pair through every enabled channel. A failed
	// channel for one pair never blocks other channels or other pairs.
	for _, p := range due {
		for _, out := range u.dispatcher.Dispatch(ctx, p, settings) {
			switch {
			case out.Err != nil:
				u.log.Error().Err(out.Err).
					Str("channel", out.Channel).
					Str("voucher_id", p.VoucherID).
					Int("days_left", p.DaysLeft).
					Msg("channel dispatch failed")
			case out.Skipped:
				u.log.Debug().Str("channel", out.Channel).
					Str("voucher_id", p.VoucherID).
					Msg("channel skipped")
			}
		}
	}

	// Attempted dispatch is the idempotence boundary: record every pair
	// we tried, delivery confirmation does not exist in this system.
	var recordErr error
	for _, p := range due {
		if err := u.sentLog.MarkSent(ctx, repository.NoTX, p.VoucherID, p.DaysLeft, now); err != nil {
			recordErr = err
			u.log.Error().Err(err).
				Str("voucher_id", p.VoucherID).Int("threshold", p.DaysLeft).
				Msg("failed to record sent reminder; pair may re-fire next cycle")
		}
	}

	u.log.Info().Int("due", len(due)).Msg("reminder cycle dispatched")
	return len(due), recordErr
}

func (u *reminderUC) loadSettings(ctx context.Context) (*model.ReminderSettings, error) {
	s, err := u.settings.Load(ctx, repository.NoTX)
	if errors.Is(err, domain.ErrNotFound) {
		return model.DefaultReminderSettings(), nil
	}
	return s, err
}

// computeDuePairs applies the firing rule: for a non-expired voucher, a
// threshold T is due when days remaining <= T and no threshold <= T has
// fired for that voucher yet. Thresholds are walked ascending, so a
// voucher fires at most its smallest applicable threshold per cycle and
// a threshold crossed while the process was down still fires exactly
// once instead of being missed.
func computeDuePairs(vouchers []*model.Voucher, thresholds []int, sent []*model.SentReminder, now time.Time) []model.ReminderPayload {
	asc := append([]int(nil), thresholds...)
	sort.Ints(asc)

	fired := make(map[string][]int)
	for _, r := range sent {
		fired[r.VoucherID] = append(fired[r.VoucherID], r.ThresholdDays)
	}

	var due []model.ReminderPayload
	for _, v := range vouchers {
		if v.IsExpired(now) {
			continue
		}
		days := v.DaysRemaining(now)
		for _, t := range asc {
			if days > t {
				continue
			}
			if anyAtMost(fired[v.ID], t) {
				break
			}
			due = append(due, model.ReminderPayload{
				BrandName: v.BrandName,
				DaysLeft:  t,
				VoucherID: v.ID,
			})
			// Firing t suppresses every larger threshold for this
			// voucher, now and on future cycles.
			break
		}
	}
	return due
}

func anyAtMost(fired []int, t int) bool {
	for _, f := range fired {
		if f <= t {
			return true
		}
	}
	return false
}
