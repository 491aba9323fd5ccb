package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/usecase"
)

// PendingFeed is the slice of the local-notification feed the poll
// endpoint drains.
type PendingFeed interface {
	Drain() []model.ReminderPayload
}

// CycleRunner lets the API trigger a reminder cycle on demand.
type CycleRunner interface {
	RunNow(ctx context.Context) (int, error)
}

type Server struct {
	voucherUC  usecase.VoucherUseCase
	checkInUC  usecase.CheckInUseCase
	settingsUC usecase.SettingsUseCase
	feed       PendingFeed
	runner     CycleRunner
	log        *zerolog.Logger
}

func NewServer(
	voucherUC usecase.VoucherUseCase,
	checkInUC usecase.CheckInUseCase,
	settingsUC usecase.SettingsUseCase,
	feed PendingFeed,
	runner CycleRunner,
	logger *zerolog.Logger,
) *Server {
	srvLog := logger.With().Str("component", "WebServer").Logger()
	return &Server{
		voucherUC:  voucherUC,
		checkInUC:  checkInUC,
		settingsUC: settingsUC,
		feed:       feed,
		runner:     runner,
		log:        &srvLog,
	}
}

// Router builds the HTTP routing for the voucher API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Route("/vouchers", func(r chi.Router) {
			r.Get("/", s.handleListVouchers)
			r.Post("/", s.handleCreateVoucher)
			r.Get("/stats", s.handleStats)
			r.Get("/expiring-soon", s.handleExpiringSoon)
			r.Post("/nearby", s.handleNearby)
			r.Get("/{id}", s.handleGetVoucher)
			r.Delete("/{id}", s.handleDeleteVoucher)
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Get("/pending", s.handlePendingReminders)
			r.Post("/run", s.handleRunCycle)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", s.handleGetSettings)
			r.Put("/", s.handleSaveSettings)
			r.Post("/reminder-days", s.handleAddReminderDay)
			r.Delete("/reminder-days/{day}", s.handleRemoveReminderDay)
		})

		r.Post("/scan/prefill", s.handleScanPrefill)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
