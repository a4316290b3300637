package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/viewcampus/eventportal/internal/config"
	httpx "github.com/viewcampus/eventportal/internal/http"
	"github.com/viewcampus/eventportal/internal/notifications"
	"github.com/viewcampus/eventportal/internal/observability"
	"github.com/viewcampus/eventportal/internal/store"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	if cfg.TracingEnabled {
		shutdownTracer, err := observability.InitTracer(context.Background(), "eventportal", cfg.OTLPEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}

		defer func() {
			ctx, cancel := config.WithTimeout(5 * time.Second)
			defer cancel()
			_ = shutdownTracer(ctx)
		}()
	}

	// In-memory store seeded with the bootstrap admin and demo events.
	// Everything is gone on restart.
	st := store.New()

	notifier := buildNotifier(cfg, log)

	router := httpx.NewRouter(log, st, cfg, notifier)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)

			return
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}

// buildNotifier picks the email sender when a Resend key is configured and
// falls back to the log sender otherwise. Either way the sender is wrapped
// so a stuck provider cannot hold registration requests hostage.
func buildNotifier(cfg config.Config, log *slog.Logger) notifications.Sender {
	var inner notifications.Sender

	if cfg.ResendAPIKey != "" {
		inner = notifications.NewEmailSender(cfg.ResendAPIKey, cfg.NotifyFrom, cfg.NotifyTo, log)
		log.Info("notifications via resend", "to", cfg.NotifyTo)
	} else {
		inner = notifications.NewLogSender()
		log.Info("notifications via log sender")
	}

	return notifications.NewShieldedSender(inner, notifications.ShieldedSenderConfig{})
}
