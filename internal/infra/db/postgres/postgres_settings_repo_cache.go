package postgres

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/repository"
	red "github.com/zcprivacy-byte/voucher-vault-1/internal/infra/redis"
)

var _ repository.SettingsRepository = (*cachedSettingsRepo)(nil)

// cachedSettingsRepo is a read-through cache in front of the settings
// row. The reminder scheduler reads settings every cycle; redis absorbs
// that without a postgres round trip. Cache failures fall back to the
// database, never surface.
type cachedSettingsRepo struct {
	inner repository.SettingsRepository
	cache *red.SettingsCache
	log   *zerolog.Logger
}

func NewCachedSettingsRepo(inner repository.SettingsRepository, cache *red.SettingsCache, logger *zerolog.Logger) *cachedSettingsRepo {
	repoLog := logger.With().Str("component", "SettingsRepoCache").Logger()
	return &cachedSettingsRepo{inner: inner, cache: cache, log: &repoLog}
}

func (r *cachedSettingsRepo) Load(ctx context.Context, tx repository.Tx) (*model.ReminderSettings, error) {
	// Transactional reads bypass the cache.
	if tx == nil {
		if s, err := r.cache.Get(ctx); err == nil {
			return s, nil
		}
	}
	s, err := r.inner.Load(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Store(ctx, s); err != nil {
		r.log.Warn().Err(err).Msg("settings cache store failed")
	}
	return s, nil
}

func (r *cachedSettingsRepo) Save(ctx context.Context, tx repository.Tx, s *model.ReminderSettings) error {
	if err := r.inner.Save(ctx, tx, s); err != nil {
		return err
	}
	if err := r.cache.Store(ctx, s); err != nil {
		r.log.Warn().Err(err).Msg("settings cache refresh failed")
		if derr := r.cache.Invalidate(ctx); derr != nil {
			r.log.Warn().Err(derr).Msg("settings cache invalidate failed")
		}
	}
	return nil
}
