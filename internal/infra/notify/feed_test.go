package notify

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
)

func TestFeedChannel(t *testing.T) {
	t.Run("should hand out each payload exactly once", func(t *testing.T) {
		f := NewFeedChannel(10, StaticProbe(true))

		_ = f.Send(context.Background(), model.ReminderPayload{BrandName: "Acme", DaysLeft: 3})
		_ = f.Send(context.Background(), model.ReminderPayload{BrandName: "Beans", DaysLeft: 1})

		got := f.Drain()
		if len(got) != 2 || got[0].BrandName != "Acme" || got[1].BrandName != "Beans" {
			t.Fatalf("unexpected drain: %+v", got)
		}
		if again := f.Drain(); len(again) != 0 {
			t.Fatalf("second drain returned payloads: %+v", again)
		}
	})

	t.Run("should drop the oldest entries past capacity", func(t *testing.T) {
		f := NewFeedChannel(3, StaticProbe(true))
		for i := 0; i < 5; i++ {
			_ = f.Send(context.Background(), model.ReminderPayload{BrandName: fmt.Sprintf("brand-%d", i)})
		}

		got := f.Drain()
		if len(got) != 3 || got[0].BrandName != "brand-2" {
			t.Fatalf("unexpected drain: %+v", got)
		}
	})

	t.Run("should skip silently without permission", func(t *testing.T) {
		f := NewFeedChannel(10, StaticProbe(false))

		err := f.Send(context.Background(), model.ReminderPayload{BrandName: "Acme"})

		if !errors.Is(err, ErrSkip) {
			t.Fatalf("expected ErrSkip, got %v", err)
		}
		if got := f.Drain(); len(got) != 0 {
			t.Fatalf("skipped payload was buffered: %+v", got)
		}
	})
}
