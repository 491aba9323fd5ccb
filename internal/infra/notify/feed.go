package notify

import (
	"context"
	"sync"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.NotificationChannel = (*FeedChannel)(nil)

// FeedChannel is the local-notification channel: it fires to whatever
// surface the user is currently looking at by buffering payloads until
// the pending-reminders poll drains them. When notification permission
// is absent the channel skips silently; that is not an error condition.
type FeedChannel struct {
	mu       sync.Mutex
	buf      []model.ReminderPayload
	capacity int
	probe    adapter.PermissionProbe
}

func NewFeedChannel(capacity int, probe adapter.PermissionProbe) *FeedChannel {
	if capacity <= 0 {
		capacity = 100
	}
	return &FeedChannel{capacity: capacity, probe: probe}
}

func (f *FeedChannel) Name() string { return ChannelLocal }

func (f *FeedChannel) Send(ctx context.Context, p model.ReminderPayload) error {
	if f.probe != nil && !f.probe.Granted(ctx) {
		return ErrSkip
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buf = append(f.buf, p)
	// Oldest entries fall off; an unread backlog of stale reminders has
	// no value to the user.
	if len(f.buf) > f.capacity {
		f.buf = f.buf[len(f.buf)-f.capacity:]
	}
	return nil
}

// Drain returns the buffered payloads and clears the feed. This backs
// the pending-reminders poll: every payload is handed out once.
func (f *FeedChannel) Drain() []model.ReminderPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.buf
	f.buf = nil
	return out
}

// StaticProbe is a PermissionProbe with a fixed answer, used for wiring
// and tests.
type StaticProbe bool

func (p StaticProbe) Granted(context.Context) bool { return bool(p) }
