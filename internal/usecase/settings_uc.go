package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/repository"
)

// Compile-time check
var _ SettingsUseCase = (*settingsUC)(nil)

type SettingsUseCase interface {
	// Get returns the stored settings, or the defaults when nothing was
	// ever saved.
	Get(ctx context.Context) (*model.ReminderSettings, error)
	// Save replaces the settings wholesale after validation.
	Save(ctx context.Context, s *model.ReminderSettings) (*model.ReminderSettings, error)
	AddReminderDay(ctx context.Context, day int) (*model.ReminderSettings, error)
	RemoveReminderDay(ctx context.Context, day int) (*model.ReminderSettings, error)
}

type settingsUC struct {
	settings repository.SettingsRepository
	log      *zerolog.Logger
}

func NewSettingsUseCase(settings repository.SettingsRepository, logger *zerolog.Logger) *settingsUC {
	ucLog := logger.With().Str("component", "SettingsUC").Logger()
	return &settingsUC{settings: settings, log: &ucLog}
}

func (u *settingsUC) Get(ctx context.Context) (*model.ReminderSettings, error) {
	s, err := u.settings.Load(ctx, repository.NoTX)
	if errors.Is(err, domain.ErrNotFound) {
		return model.DefaultReminderSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (u *settingsUC) Save(ctx context.Context, s *model.ReminderSettings) (*model.ReminderSettings, error) {
	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := u.settings.Save(ctx, repository.NoTX, s); err != nil {
		return nil, err
	}
	u.log.Info().Ints("reminder_days", s.ReminderDays).
		Bool("local", s.LocalEnabled).Bool("email", s.EmailEnabled).
		Msg("reminder settings saved")
	return s, nil
}

func (u *settingsUC) AddReminderDay(ctx context.Context, day int) (*model.ReminderSettings, error) {
	s, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.AddReminderDay(day); err != nil {
		return nil, err
	}
	return u.Save(ctx, s)
}

func (u *settingsUC) RemoveReminderDay(ctx context.Context, day int) (*model.ReminderSettings, error) {
	s, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.RemoveReminderDay(day)
	return u.Save(ctx, s)
}
