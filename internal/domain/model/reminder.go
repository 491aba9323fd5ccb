package model

import "time"

// SentReminder records that a (voucher, threshold) pair has been
// notified. A pair appears at most once; the record is what makes the
// reminder cycle idempotent across repeated polls and restarts.
type SentReminder struct {
	VoucherID     string    `json:"voucher_id"`
	ThresholdDays int       `json:"threshold_days"`
	SentAt        time.Time `json:"sent_at"`
}

// ReminderPayload is what gets handed to the notification channels for a
// newly-due pair. DaysLeft carries the threshold that fired, not the
// live countdown.
type ReminderPayload struct {
	BrandName string `json:"brand_name"`
	DaysLeft  int    `json:"days_left"`
	VoucherID string `json:"voucher_id"`
}

// ScannedFields is the opaque extracted-data structure handed over by
// the scanning collaborator. It pre-fills a draft voucher and is never
// persisted as-is.
type ScannedFields struct {
	BrandName      string `json:"brand_name"`
	DiscountAmount string `json:"discount_amount"`
	VoucherCode    string `json:"voucher_code"`
	ExpiryDate     string `json:"expiry_date"`
	Category       string `json:"category"`
	Description    string `json:"description"`
}
