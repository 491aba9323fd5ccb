// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/config"
	pg "github.com/zcprivacy-byte/voucher-vault-1/internal/infra/db/postgres"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/infra/logging"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/infra/metrics"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/infra/notify"
	red "github.com/zcprivacy-byte/voucher-vault-1/internal/infra/redis"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/infra/sched"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/infra/web"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 10)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres")
	}
	defer pool.Close()

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis")
	}
	defer redisClient.Close()
	locker := red.NewLocker(redisClient)
	settingsCache := red.NewSettingsCache(redisClient, cfg.Redis.TTL)

	// ---- Repositories ----
	voucherRepo := pg.NewVoucherRepo(pool)
	settingsRepo := pg.NewCachedSettingsRepo(pg.NewSettingsRepo(pool), settingsCache, logger)
	sentRepo := pg.NewSentReminderRepo(pool)
	txm := pg.NewTxManager(pool)

	// ---- Use cases ----
	voucherUC := usecase.NewVoucherUseCase(voucherRepo, sentRepo, txm, logger)
	checkInUC := usecase.NewCheckInUseCase(voucherRepo, logger)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, logger)

	// ---- Notification channels ----
	feed := notify.NewFeedChannel(cfg.Reminder.FeedCapacity, notify.StaticProbe(true))
	email := notify.NewEmailChannel(cfg.Reminder.Email, func(ctx context.Context) (string, error) {
		s, err := settingsUC.Get(ctx)
		if err != nil {
			return "", err
		}
		return s.EmailAddress, nil
	}, logger)
	dispatcher := notify.NewDispatcher(feed, email, cfg.Reminder.DispatchTimeout, logger)

	// ---- Reminder scheduler ----
	remUC := usecase.NewReminderUseCase(voucherRepo, settingsRepo, sentRepo, dispatcher, logger)
	worker := sched.NewReminderWorker(cfg.Reminder.Interval, remUC, locker, logger)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		_ = worker.Run(ctx)
	}()

	// ---- HTTP server ----
	srv := web.NewServer(voucherUC, checkInUC, settingsUC, feed, worker, logger)
	server := &http.Server{Addr: fmt.Sprintf(":%d", cfg.HTTP.Port), Handler: srv.Router()}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	// Wait for an in-flight reminder cycle to finish persisting its
	// sent-log before the process exits.
	<-workerDone
	logger.Info().Msg("stopped")
}
