package sched

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/infra/metrics"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/usecase"
)

const cycleLockKey = "reminder_cycle_lock"

// CycleLocker guards the cycle across processes. Single-process
// deployments pass nil and rely on the worker's own mutex.
type CycleLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (token string, err error)
	Unlock(ctx context.Context, key, token string) error
}

// ReminderWorker drives the reminder use case: once at startup, then on
// every tick, plus on-demand triggers. At most one cycle runs at a time;
// a tick that lands mid-cycle is skipped outright, never queued — the
// next cycle sees current state and catches up through the firing rule.
type ReminderWorker struct {
	interval time.Duration
	remUC    usecase.ReminderUseCase
	locker   CycleLocker
	log      *zerolog.Logger

	running sync.Mutex
	trigger chan struct{}
}

func NewReminderWorker(interval time.Duration, remUC usecase.ReminderUseCase, locker CycleLocker, logger *zerolog.Logger) *ReminderWorker {
	workerLog := logger.With().Str("component", "ReminderWorker").Logger()
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ReminderWorker{
		interval: interval,
		remUC:    remUC,
		locker:   locker,
		log:      &workerLog,
		trigger:  make(chan struct{}, 1),
	}
}

// Run loops until ctx is cancelled. Cycles execute inline, so Run only
// returns once an in-flight cycle has finished persisting its sent-log.
func (w *ReminderWorker) Run(ctx context.Context) error {
	w.log.Info().Dur("interval", w.interval).Msg("Starting reminder worker")
	// Run once on startup, then on every tick
	w.runCycle()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Stopping reminder worker")
			return ctx.Err()
		case <-ticker.C:
			w.runCycle()
		case <-w.trigger:
			w.runCycle()
		}
	}
}

// TriggerNow schedules an extra cycle as soon as the loop is free. Safe
// to call from any goroutine; coalesces with a pending trigger.
func (w *ReminderWorker) TriggerNow() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// RunNow executes one cycle synchronously for on-demand callers.
// Returns ErrCycleInProgress when a cycle is already running.
func (w *ReminderWorker) RunNow(ctx context.Context) (int, error) {
	if !w.running.TryLock() {
		return 0, domain.ErrCycleInProgress
	}
	defer w.running.Unlock()
	return w.cycleLocked(ctx)
}

func (w *ReminderWorker) runCycle() {
	if !w.running.TryLock() {
		metrics.IncCycle("skipped")
		w.log.Warn().Msg("tick skipped: cycle still running")
		return
	}
	defer w.running.Unlock()

	// The cycle context is detached from the run context: shutdown must
	// not interrupt a cycle between dispatch and sent-log persistence.
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	if _, err := w.cycleLocked(ctx); err != nil {
		w.log.Error().Err(err).Msg("reminder cycle failed")
	}
}

func (w *ReminderWorker) cycleLocked(ctx context.Context) (int, error) {
	if w.locker != nil {
		token, err := w.locker.TryLock(ctx, cycleLockKey, w.interval)
		if errors.Is(err, domain.ErrLockNotAcquired) {
			metrics.IncCycle("skipped")
			w.log.Debug().Msg("cycle lock held by another process; skipping")
			return 0, nil
		}
		if err != nil {
			metrics.IncCycle("error")
			return 0, err
		}
		defer func() {
			if err := w.locker.Unlock(ctx, cycleLockKey, token); err != nil {
				w.log.Warn().Err(err).Msg("cycle lock release failed; TTL will reap it")
			}
		}()
	}

	due, err := w.remUC.RunCycle(ctx)
	if err != nil {
		metrics.IncCycle("error")
		return due, err
	}
	metrics.IncCycle("ok")
	if due > 0 {
		metrics.AddDuePairs(due)
		w.log.Info().Int("count", due).Msg("expiry reminders dispatched")
	}
	return due, nil
}
