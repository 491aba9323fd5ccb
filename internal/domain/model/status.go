package model

import (
	"math"
	"sort"
	"time"
)

// Status is derived from the expiry date and the clock. It is never
// persisted; every read recomputes it.
type Status string

const (
	StatusActive       Status = "active"
	StatusExpiringSoon Status = "expiring-soon"
	StatusExpired      Status = "expired"
)

// ExpiringSoonWindowDays is the window for the "expiring-soon" status.
const ExpiringSoonWindowDays = 7

// DaysRemaining is ceil((expiry - now) / 24h). A voucher expiring today
// reads 0; an already-expired voucher reads negative.
func (v *Voucher) DaysRemaining(now time.Time) int {
	return int(math.Ceil(v.ExpiryDate.Sub(now.UTC()).Hours() / 24))
}

// IsExpired compares at day granularity: a voucher expiring today is not
// expired until the date boundary passes.
func (v *Voucher) IsExpired(now time.Time) bool {
	return v.ExpiryDate.Before(DateOf(now))
}

// Classify derives the voucher status at the given instant.
func (v *Voucher) Classify(now time.Time) Status {
	if v.IsExpired(now) {
		return StatusExpired
	}
	if v.DaysRemaining(now) <= ExpiringSoonWindowDays {
		return StatusExpiringSoon
	}
	return StatusActive
}

// Stats aggregates the per-voucher classification into counts.
type Stats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
}

// ComputeStats is a single pass over Classify, so the counts can never
// drift from per-voucher classification.
func ComputeStats(vouchers []*Voucher, now time.Time) Stats {
	s := Stats{Total: len(vouchers)}
	for _, v := range vouchers {
		switch v.Classify(now) {
		case StatusExpired:
			s.Expired++
		case StatusExpiringSoon:
			s.ExpiringSoon++
		default:
			s.Active++
		}
	}
	return s
}

// ExpiringWithin filters to non-expired vouchers with at most windowDays
// remaining, soonest first; ties break on brand name for determinism.
func ExpiringWithin(vouchers []*Voucher, now time.Time, windowDays int) []*Voucher {
	var out []*Voucher
	for _, v := range vouchers {
		if v.IsExpired(now) {
			continue
		}
		if v.DaysRemaining(now) <= windowDays {
			out = append(out, v)
		}
	}
	sortByDaysRemaining(out, now)
	return out
}

func sortByDaysRemaining(vouchers []*Voucher, now time.Time) {
	sort.SliceStable(vouchers, func(i, j int) bool {
		di, dj := vouchers[i].DaysRemaining(now), vouchers[j].DaysRemaining(now)
		if di != dj {
			return di < dj
		}
		return vouchers[i].BrandName < vouchers[j].BrandName
	})
}
