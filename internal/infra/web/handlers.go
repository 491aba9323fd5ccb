package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/infra/metrics"
)

// --- Request / Response DTOs ---

type voucherCreateRequest struct {
	BrandName      string  `json:"brand_name"`
	DiscountAmount string  `json:"discount_amount"`
	DiscountValue  float64 `json:"discount_value,omitempty"`
	CurrencyCode   string  `json:"currency_code,omitempty"`
	DiscountUnit   string  `json:"discount_unit,omitempty"`
	VoucherCode    string  `json:"voucher_code"`
	ExpiryDate     string  `json:"expiry_date"` // "2006-01-02"
	Scope          string  `json:"scope"`
	RedemptionType string  `json:"redemption_type,omitempty"`
	Region         string  `json:"region,omitempty"`
	StoreLocation  string  `json:"store_location,omitempty"`
	Category       string  `json:"category,omitempty"`
	Description    string  `json:"description,omitempty"`
}

// voucherView is a voucher plus its derived temporal fields. Status is
// recomputed on every read, never stored.
type voucherView struct {
	*model.Voucher
	ExpiryDate string       `json:"expiry_date"`
	Status     model.Status `json:"status,omitempty"`
	DaysLeft   int          `json:"days_left"`
	// Distance is display-only, echoed from the caller; nothing here
	// computes it.
	Distance string `json:"distance,omitempty"`
}

type nearbyRequest struct {
	StoreName string `json:"store_name,omitempty"`
	Region    string `json:"region,omitempty"`
	Distance  string `json:"distance,omitempty"`
}

type pendingReminderView struct {
	BrandName string `json:"brand_name"`
	DaysLeft  int    `json:"days_left"`
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrAmbiguousQuery),
		errors.Is(err, domain.ErrEmailNotConfigured):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, domain.ErrCycleInProgress):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func viewOf(v *model.Voucher, now time.Time, distance string) voucherView {
	return voucherView{
		Voucher:    v,
		ExpiryDate: v.ExpiryDate.Format("2006-01-02"),
		Status:     v.Classify(now),
		DaysLeft:   v.DaysRemaining(now),
		Distance:   distance,
	}
}

func viewsOf(vouchers []*model.Voucher, now time.Time, distance string) []voucherView {
	views := make([]voucherView, 0, len(vouchers))
	for _, v := range vouchers {
		views = append(views, viewOf(v, now, distance))
	}
	return views
}

func (s *Server) decodeVoucher(r *http.Request) (model.Voucher, error) {
	var req voucherCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return model.Voucher{}, domain.ErrValidation
	}
	expiry, err := model.ParseExpiryDate(req.ExpiryDate)
	if err != nil {
		return model.Voucher{}, err
	}
	return model.Voucher{
		BrandName:      req.BrandName,
		DiscountAmount: req.DiscountAmount,
		DiscountValue:  req.DiscountValue,
		CurrencyCode:   req.CurrencyCode,
		DiscountUnit:   req.DiscountUnit,
		VoucherCode:    req.VoucherCode,
		ExpiryDate:     expiry,
		Scope:          model.Scope(req.Scope),
		Redemption:     model.Redemption(req.RedemptionType),
		Region:         req.Region,
		StoreLocation:  req.StoreLocation,
		Category:       req.Category,
		Description:    req.Description,
	}, nil
}

// --- Handlers ---

func (s *Server) handleListVouchers(w http.ResponseWriter, r *http.Request) {
	vouchers, err := s.voucherUC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data []voucherView `json:"data"`
	}{Data: viewsOf(vouchers, time.Now().UTC(), "")})
}

func (s *Server) handleCreateVoucher(w http.ResponseWriter, r *http.Request) {
	input, err := s.decodeVoucher(r)
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := s.voucherUC.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(v, time.Now().UTC(), ""))
}

func (s *Server) handleGetVoucher(w http.ResponseWriter, r *http.Request) {
	v, err := s.voucherUC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(v, time.Now().UTC(), ""))
}

func (s *Server) handleDeleteVoucher(w http.ResponseWriter, r *http.Request) {
	if err := s.voucherUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "voucher deleted"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.voucherUC.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleExpiringSoon(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	vouchers, err := s.voucherUC.ExpiringSoon(r.Context(), days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data []voucherView `json:"data"`
	}{Data: viewsOf(vouchers, time.Now().UTC(), "")})
}

func (s *Server) handleNearby(w http.ResponseWriter, r *http.Request) {
	var req nearbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}
	matches, err := s.checkInUC.FindNearby(r.Context(), model.CheckInQuery{
		StoreName: req.StoreName,
		Region:    req.Region,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.IncCheckIn()
	writeJSON(w, http.StatusOK, struct {
		Data []voucherView `json:"data"`
	}{Data: viewsOf(matches, time.Now().UTC(), req.Distance)})
}

func (s *Server) handlePendingReminders(w http.ResponseWriter, r *http.Request) {
	payloads := s.feed.Drain()
	views := make([]pendingReminderView, 0, len(payloads))
	for _, p := range payloads {
		views = append(views, pendingReminderView{BrandName: p.BrandName, DaysLeft: p.DaysLeft})
	}
	writeJSON(w, http.StatusOK, struct {
		Data []pendingReminderView `json:"data"`
	}{Data: views})
}

func (s *Server) handleRunCycle(w http.ResponseWriter, r *http.Request) {
	due, err := s.runner.RunNow(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"due": due})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settingsUC.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings model.ReminderSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}
	saved, err := s.settingsUC.Save(r.Context(), &settings)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleAddReminderDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day int `json:"day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}
	settings, err := s.settingsUC.AddReminderDay(r.Context(), req.Day)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleRemoveReminderDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, domain.ErrValidation)
		return
	}
	settings, err := s.settingsUC.RemoveReminderDay(r.Context(), day)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleScanPrefill(w http.ResponseWriter, r *http.Request) {
	var fields model.ScannedFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}
	// The draft is returned for the user to edit, never auto-saved.
	draft := s.voucherUC.PrefillFromScan(fields)
	view := voucherView{Voucher: draft}
	if !draft.ExpiryDate.IsZero() {
		view.ExpiryDate = draft.ExpiryDate.Format("2006-01-02")
	}
	writeJSON(w, http.StatusOK, view)
}
