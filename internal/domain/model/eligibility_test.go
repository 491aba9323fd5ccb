package model

import (
	"errors"
	"testing"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
)

func scopedVoucher(brand, date string, scope Scope, region, location string) *Voucher {
	v := voucherExpiring(brand, date)
	v.Scope = scope
	v.Region = region
	v.StoreLocation = location
	return v
}

func TestCheckInQueryValidate(t *testing.T) {
	t.Run("should reject a query with neither field", func(t *testing.T) {
		if err := (CheckInQuery{}).Validate(); !errors.Is(err, domain.ErrAmbiguousQuery) {
			t.Fatalf("expected ErrAmbiguousQuery, got %v", err)
		}
	})

	t.Run("should reject a query with both fields", func(t *testing.T) {
		q := CheckInQuery{StoreName: "Acme", Region: "California"}
		if err := q.Validate(); !errors.Is(err, domain.ErrAmbiguousQuery) {
			t.Fatalf("expected ErrAmbiguousQuery, got %v", err)
		}
	})

	t.Run("should treat whitespace as absent", func(t *testing.T) {
		q := CheckInQuery{StoreName: "Acme", Region: "   "}
		if err := q.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMatchNearby(t *testing.T) {
	t.Run("should match store queries against location and brand", func(t *testing.T) {
		vouchers := []*Voucher{
			scopedVoucher("Acme Coffee", "2026-04-01", ScopeSpecificLocation, "", "Acme Coffee Downtown"),
			scopedVoucher("Beans Co", "2026-04-01", ScopeSpecificLocation, "", "Harbor Mall"),
			scopedVoucher("Harborside", "2026-04-01", ScopeSpecificLocation, "", "Pier 9"),
		}

		got, err := MatchNearby(vouchers, CheckInQuery{StoreName: "acme"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].BrandName != "Acme Coffee" {
			t.Fatalf("unexpected matches: %v", got)
		}

		// Brand text also counts for store queries.
		got, err = MatchNearby(vouchers, CheckInQuery{StoreName: "harborside"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].BrandName != "Harborside" {
			t.Fatalf("unexpected matches: %v", got)
		}
	})

	t.Run("should match region queries by containment in either direction", func(t *testing.T) {
		vouchers := []*Voucher{
			scopedVoucher("North", "2026-04-01", ScopeRegion, "Northern California", ""),
			scopedVoucher("Baja", "2026-04-01", ScopeRegion, "Baja", ""),
			scopedVoucher("East", "2026-04-01", ScopeRegion, "New England", ""),
		}

		// Query contained in stored region.
		got, err := MatchNearby(vouchers, CheckInQuery{Region: "california"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].BrandName != "North" {
			t.Fatalf("unexpected matches: %v", got)
		}

		// Stored region contained in query.
		got, err = MatchNearby(vouchers, CheckInQuery{Region: "baja california"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].BrandName != "Baja" {
			t.Fatalf("unexpected matches: %v", got)
		}
	})

	t.Run("should never match region vouchers on a store query", func(t *testing.T) {
		vouchers := []*Voucher{
			scopedVoucher("Regional", "2026-04-01", ScopeRegion, "Acme Valley", ""),
		}
		got, err := MatchNearby(vouchers, CheckInQuery{StoreName: "acme"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("region voucher matched a store query: %v", got)
		}
	})

	t.Run("should always include anywhere vouchers and exclude expired ones", func(t *testing.T) {
		vouchers := []*Voucher{
			voucherExpiring("Universal", "2026-04-01"),
			voucherExpiring("Stale", "2026-03-01"),
			scopedVoucher("Acme", "2026-04-01", ScopeSpecificLocation, "", "Acme Downtown"),
		}
		got, err := MatchNearby(vouchers, CheckInQuery{StoreName: "nowhere special"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].BrandName != "Universal" {
			t.Fatalf("expected only the anywhere voucher, got %v", got)
		}
	})

	t.Run("should order anywhere first then scoped, each by urgency", func(t *testing.T) {
		vouchers := []*Voucher{
			scopedVoucher("Acme Late", "2026-03-20", ScopeSpecificLocation, "", "Acme Mall"),
			voucherExpiring("Any Late", "2026-03-25"),
			scopedVoucher("Acme Soon", "2026-03-12", ScopeSpecificLocation, "", "Acme Mall"),
			voucherExpiring("Any Soon", "2026-03-11"),
		}

		got, err := MatchNearby(vouchers, CheckInQuery{StoreName: "acme"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"Any Soon", "Any Late", "Acme Soon", "Acme Late"}
		if len(got) != len(want) {
			t.Fatalf("expected %d matches, got %d", len(want), len(got))
		}
		for i, brand := range want {
			if got[i].BrandName != brand {
				t.Fatalf("position %d: expected %s, got %s", i, brand, got[i].BrandName)
			}
		}
	})

	t.Run("should return an empty result, not an error, when nothing matches", func(t *testing.T) {
		got, err := MatchNearby(nil, CheckInQuery{Region: "mars"}, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %v", got)
		}
	})
}
