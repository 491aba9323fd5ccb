package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
)

const settingsKey = "reminder_settings"

// SettingsCache keeps the single ReminderSettings record in redis so the
// scheduler's every-cycle read does not hit postgres.
type SettingsCache struct {
	client *redClient
	ttl    time.Duration
}

func NewSettingsCache(client *redClient, ttl time.Duration) *SettingsCache {
	return &SettingsCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *SettingsCache) Store(ctx context.Context, s *model.ReminderSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, settingsKey, data, c.ttl)
}

func (c *SettingsCache) Get(ctx context.Context) (*model.ReminderSettings, error) {
	data, err := c.client.Get(ctx, settingsKey)
	if err != nil {
		return nil, err
	}
	var s model.ReminderSettings
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *SettingsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, settingsKey)
}
