package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"sessionvault/internal/app/server/api"
	"sessionvault/internal/app/server/config"
	"sessionvault/internal/infrastructure/storage/postgres"
	"sessionvault/internal/token"
	"sessionvault/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	if err := run(conf, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	storage, err := postgres.New(conf)
	if err != nil {
		return err
	}
	defer storage.Close()

	if conf.Auth.Secret == config.DefaultSecret {
		log.Warn("JWT_SECRET not set, using built-in default; do not run like this in production")
	}
	tokens := token.NewManager(conf.Auth.Secret)

	mux := api.New(storage, tokens, log)

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", "address", conf.Server.RunAddress, "env", conf.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}
