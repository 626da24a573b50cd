package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"nftcatalog/internal/app/server/api"
	"nftcatalog/internal/config"
	"nftcatalog/internal/domain/record"
	"nftcatalog/internal/infrastructure/storage/memory"
	"nftcatalog/internal/infrastructure/storage/postgres"
	"nftcatalog/internal/infrastructure/storage/sqlite"
	"nftcatalog/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	repo, closeStorage, err := openStorage(cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeStorage()

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: api.New(repo, log),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", "error", err)
		}
	}()

	log.Info("starting server",
		"address", cfg.Server.RunAddress,
		"storage_driver", cfg.Storage.Driver,
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func openStorage(cfg *config.Config, log *slog.Logger) (record.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		st, err := postgres.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewRecordRepository(st.Pool(), log), func() { st.Close() }, nil
	case config.DriverMemory:
		return memory.New(), func() {}, nil
	case config.DriverSQLite:
		fallthrough
	default:
		st, err := sqlite.New(cfg.Storage.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { st.Close() }, nil
	}
}
