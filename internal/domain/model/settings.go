package model

import (
	"sort"
	"strings"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
)

const (
	MinReminderDay = 1
	MaxReminderDay = 365
)

// ReminderSettings is the single per-installation reminder configuration.
// ReminderDays holds distinct "remind me this many days before expiry"
// thresholds, kept sorted ascending.
type ReminderSettings struct {
	ReminderDays    []int  `json:"reminder_days"`
	LocalEnabled    bool   `json:"local_enabled"`
	EmailEnabled    bool   `json:"email_enabled"`
	EmailAddress    string `json:"email_address,omitempty"`
	DefaultCurrency string `json:"default_currency"`
}

// DefaultReminderSettings is what a fresh installation starts with.
func DefaultReminderSettings() *ReminderSettings {
	return &ReminderSettings{
		ReminderDays:    []int{1, 3, 7},
		LocalEnabled:    true,
		DefaultCurrency: "USD",
	}
}

// Validate checks day bounds, uniqueness, and the email invariant: an
// enabled email channel needs an address.
func (s *ReminderSettings) Validate() error {
	seen := make(map[int]bool, len(s.ReminderDays))
	for _, d := range s.ReminderDays {
		if d < MinReminderDay || d > MaxReminderDay {
			return domain.ErrValidation
		}
		if seen[d] {
			return domain.ErrValidation
		}
		seen[d] = true
	}
	if s.EmailEnabled && strings.TrimSpace(s.EmailAddress) == "" {
		return domain.ErrEmailNotConfigured
	}
	return nil
}

// Normalize sorts the reminder days ascending. Callers mutate the slice
// through AddReminderDay/RemoveReminderDay, which keep it sorted already;
// this is for settings arriving over the wire.
func (s *ReminderSettings) Normalize() {
	sort.Ints(s.ReminderDays)
}

// AddReminderDay inserts a threshold, rejecting out-of-range values and
// duplicates.
func (s *ReminderSettings) AddReminderDay(day int) error {
	if day < MinReminderDay || day > MaxReminderDay {
		return domain.ErrValidation
	}
	for _, d := range s.ReminderDays {
		if d == day {
			return domain.ErrValidation
		}
	}
	s.ReminderDays = append(s.ReminderDays, day)
	sort.Ints(s.ReminderDays)
	return nil
}

// RemoveReminderDay drops a threshold; removing an absent day is not an
// error.
func (s *ReminderSettings) RemoveReminderDay(day int) {
	out := s.ReminderDays[:0]
	for _, d := range s.ReminderDays {
		if d != day {
			out = append(out, d)
		}
	}
	s.ReminderDays = out
}
