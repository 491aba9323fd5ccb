package model

import (
	"errors"
	"testing"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
)

func TestReminderSettingsValidate(t *testing.T) {
	t.Run("should accept the defaults", func(t *testing.T) {
		if err := DefaultReminderSettings().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("should reject out-of-range days", func(t *testing.T) {
		for _, day := range []int{0, -1, 366} {
			s := &ReminderSettings{ReminderDays: []int{day}}
			if err := s.Validate(); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("day %d: expected ErrValidation, got %v", day, err)
			}
		}
	})

	t.Run("should reject duplicate days", func(t *testing.T) {
		s := &ReminderSettings{ReminderDays: []int{3, 7, 3}}
		if err := s.Validate(); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("should require an address when email is enabled", func(t *testing.T) {
		s := &ReminderSettings{ReminderDays: []int{1}, EmailEnabled: true}
		if err := s.Validate(); !errors.Is(err, domain.ErrEmailNotConfigured) {
			t.Fatalf("expected ErrEmailNotConfigured, got %v", err)
		}
		s.EmailAddress = "me@example.com"
		if err := s.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAddRemoveReminderDay(t *testing.T) {
	t.Run("should keep days sorted after insert", func(t *testing.T) {
		s := DefaultReminderSettings()
		if err := s.AddReminderDay(5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int{1, 3, 5, 7}
		if len(s.ReminderDays) != len(want) {
			t.Fatalf("unexpected days: %v", s.ReminderDays)
		}
		for i, d := range want {
			if s.ReminderDays[i] != d {
				t.Fatalf("unexpected days: %v", s.ReminderDays)
			}
		}
	})

	t.Run("should reject duplicates and out-of-range days", func(t *testing.T) {
		s := DefaultReminderSettings()
		if err := s.AddReminderDay(3); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("duplicate: expected ErrValidation, got %v", err)
		}
		if err := s.AddReminderDay(0); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("zero: expected ErrValidation, got %v", err)
		}
		if err := s.AddReminderDay(400); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("400: expected ErrValidation, got %v", err)
		}
	})

	t.Run("should tolerate removing an absent day", func(t *testing.T) {
		s := DefaultReminderSettings()
		s.RemoveReminderDay(42)
		if len(s.ReminderDays) != 3 {
			t.Fatalf("unexpected days: %v", s.ReminderDays)
		}
		s.RemoveReminderDay(3)
		if len(s.ReminderDays) != 2 || s.ReminderDays[0] != 1 || s.ReminderDays[1] != 7 {
			t.Fatalf("unexpected days: %v", s.ReminderDays)
		}
	})
}
