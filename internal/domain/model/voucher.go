package model

import (
	"strings"
	"time"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
)

// Scope says where a voucher may be redeemed.
type Scope string

const (
	ScopeAnywhere         Scope = "anywhere"
	ScopeRegion           Scope = "region"
	ScopeSpecificLocation Scope = "specific-location"
)

// Redemption says through which channel a voucher can be used.
type Redemption string

const (
	RedemptionOnline  Redemption = "online"
	RedemptionOffline Redemption = "offline"
	RedemptionBoth    Redemption = "both"
)

// Voucher is a stored discount voucher. The expiry date is a calendar
// date with no time-of-day; it is normalized to midnight UTC.
type Voucher struct {
	ID          string     `json:"id"`
	BrandName   string     `json:"brand_name"`
	VoucherCode string     `json:"voucher_code"`
	ExpiryDate  time.Time  `json:"expiry_date"`
	Scope       Scope      `json:"scope"`
	Redemption  Redemption `json:"redemption_type"`

	// DiscountAmount is the free-text descriptor ("20% OFF", "$10 OFF").
	// The structured split is optional and only populated when the caller
	// provided it.
	DiscountAmount string  `json:"discount_amount"`
	DiscountValue  float64 `json:"discount_value,omitempty"`
	CurrencyCode   string  `json:"currency_code,omitempty"`
	DiscountUnit   string  `json:"discount_unit,omitempty"`

	// Region is set when Scope is "region"; StoreLocation when Scope is
	// "specific-location".
	Region        string `json:"region,omitempty"`
	StoreLocation string `json:"store_location,omitempty"`

	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewVoucher builds a voucher with the given id, normalizing the expiry
// to a pure date, and validates it.
func NewVoucher(id string, v Voucher) (*Voucher, error) {
	if id == "" {
		return nil, domain.ErrInvalidArgument
	}
	v.ID = id
	v.BrandName = strings.TrimSpace(v.BrandName)
	v.VoucherCode = strings.TrimSpace(v.VoucherCode)
	v.ExpiryDate = DateOf(v.ExpiryDate)
	if v.Redemption == "" {
		v.Redemption = RedemptionBoth
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Validate enforces the voucher invariants: required fields, a known
// scope/redemption pair, and the scope companion field.
func (v *Voucher) Validate() error {
	if strings.TrimSpace(v.BrandName) == "" {
		return domain.ErrValidation
	}
	if strings.TrimSpace(v.VoucherCode) == "" {
		return domain.ErrValidation
	}
	if strings.TrimSpace(v.DiscountAmount) == "" {
		return domain.ErrValidation
	}
	if v.ExpiryDate.IsZero() {
		return domain.ErrValidation
	}
	switch v.Scope {
	case ScopeAnywhere:
	case ScopeRegion:
		if strings.TrimSpace(v.Region) == "" {
			return domain.ErrValidation
		}
	case ScopeSpecificLocation:
		if strings.TrimSpace(v.StoreLocation) == "" {
			return domain.ErrValidation
		}
	default:
		return domain.ErrValidation
	}
	switch v.Redemption {
	case RedemptionOnline, RedemptionOffline, RedemptionBoth:
	default:
		return domain.ErrValidation
	}
	return nil
}

// DateOf truncates an instant to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseExpiryDate accepts the wire format for expiry dates ("2006-01-02").
func ParseExpiryDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, domain.ErrValidation
	}
	return t, nil
}
