package model

import (
	"strings"
	"time"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
)

// CheckInQuery carries exactly one of StoreName or Region. Blank strings
// count as absent.
type CheckInQuery struct {
	StoreName string `json:"store_name,omitempty"`
	Region    string `json:"region,omitempty"`
}

// Validate rejects queries that carry both fields or neither.
func (q CheckInQuery) Validate() error {
	store := strings.TrimSpace(q.StoreName)
	region := strings.TrimSpace(q.Region)
	if (store == "") == (region == "") {
		return domain.ErrAmbiguousQuery
	}
	return nil
}

// MatchNearby evaluates a check-in query against the voucher set.
// Expired vouchers are excluded before matching. Anywhere-scoped matches
// come first, then scope-specific ones, each group ordered by ascending
// days remaining.
func MatchNearby(vouchers []*Voucher, q CheckInQuery, now time.Time) ([]*Voucher, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	store := strings.ToLower(strings.TrimSpace(q.StoreName))
	region := strings.ToLower(strings.TrimSpace(q.Region))

	var anywhere, scoped []*Voucher
	for _, v := range vouchers {
		if v.IsExpired(now) {
			continue
		}
		switch v.Scope {
		case ScopeAnywhere:
			// Always eligible, regardless of query kind.
			anywhere = append(anywhere, v)
		case ScopeRegion:
			// Substring containment in either direction tolerates
			// partial city or region names. A store-name query never
			// matches region text.
			if region == "" {
				continue
			}
			vr := strings.ToLower(strings.TrimSpace(v.Region))
			if vr == "" {
				continue
			}
			if strings.Contains(vr, region) || strings.Contains(region, vr) {
				scoped = append(scoped, v)
			}
		case ScopeSpecificLocation:
			if store == "" {
				continue
			}
			loc := strings.ToLower(strings.TrimSpace(v.StoreLocation))
			brand := strings.ToLower(strings.TrimSpace(v.BrandName))
			if strings.Contains(loc, store) || strings.Contains(brand, store) {
				scoped = append(scoped, v)
			}
		}
	}
	sortByDaysRemaining(anywhere, now)
	sortByDaysRemaining(scoped, now)
	return append(anywhere, scoped...), nil
}
