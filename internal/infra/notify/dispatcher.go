package notify

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/adapter"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/infra/metrics"
)

// Channel names as they appear in settings and metrics.
const (
	ChannelLocal = "local-notification"
	ChannelEmail = "email"
)

// Dispatcher fans one reminder payload out to the channels the settings
// enable. Each send is bounded by the dispatch timeout so a hanging
// transport is a failed outcome for that pair only, never a stalled
// scheduler. The dispatcher performs no retries.
type Dispatcher struct {
	local   adapter.NotificationChannel
	email   adapter.NotificationChannel
	timeout time.Duration
	log     *zerolog.Logger
}

func NewDispatcher(local, email adapter.NotificationChannel, timeout time.Duration, logger *zerolog.Logger) *Dispatcher {
	dispLog := logger.With().Str("component", "Dispatcher").Logger()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{local: local, email: email, timeout: timeout, log: &dispLog}
}

func (d *Dispatcher) Dispatch(ctx context.Context, p model.ReminderPayload, s *model.ReminderSettings) []adapter.DispatchOutcome {
	var outcomes []adapter.DispatchOutcome
	if s.LocalEnabled && d.local != nil {
		outcomes = append(outcomes, d.send(ctx, d.local, p))
	}
	if s.EmailEnabled && d.email != nil {
		outcomes = append(outcomes, d.send(ctx, d.email, p))
	}
	return outcomes
}

func (d *Dispatcher) send(ctx context.Context, ch adapter.NotificationChannel, p model.ReminderPayload) adapter.DispatchOutcome {
	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := ch.Send(sendCtx, p)
	switch {
	case err == nil:
		metrics.IncDispatch(ch.Name(), "sent")
		return adapter.DispatchOutcome{Channel: ch.Name()}
	case isSkip(err):
		metrics.IncDispatch(ch.Name(), "skipped")
		return adapter.DispatchOutcome{Channel: ch.Name(), Skipped: true}
	default:
		metrics.IncDispatch(ch.Name(), "failed")
		return adapter.DispatchOutcome{Channel: ch.Name(), Err: err}
	}
}

// ErrSkip is the sentinel a channel returns when it decided not to
// deliver without it being a failure (local channel without permission).
var ErrSkip = errors.New("channel skipped")

func isSkip(err error) bool {
	return errors.Is(err, ErrSkip)
}
