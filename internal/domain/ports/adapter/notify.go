package adapter

import (
	"context"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
)

// NotificationChannel delivers one reminder payload over one transport.
// Implementations perform no retries; a failed send is reported once.
type NotificationChannel interface {
	Name() string
	Send(ctx context.Context, p model.ReminderPayload) error
}

// DispatchOutcome reports what happened on one channel for one payload.
// Skipped means the channel chose not to send (e.g. permission absent);
// a nil Err with Skipped false means the send was attempted and handed
// to the transport.
type DispatchOutcome struct {
	Channel string
	Skipped bool
	Err     error
}

// PermissionProbe models the ambient notification-permission state as an
// explicit capability. The local channel queries it before every send
// and is skipped silently when permission is absent.
type PermissionProbe interface {
	Granted(ctx context.Context) bool
}
