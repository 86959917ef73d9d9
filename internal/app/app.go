// Package app wires configuration, storage, engines, and the HTTP
// transport into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/kako-jun/noun-gender-backend/internal/adapter/postgres"
	"github.com/kako-jun/noun-gender-backend/internal/adapter/postgres/word"
	"github.com/kako-jun/noun-gender-backend/internal/config"
	"github.com/kako-jun/noun-gender-backend/internal/service/browse"
	"github.com/kako-jun/noun-gender-backend/internal/service/search"
	"github.com/kako-jun/noun-gender-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, assembles the engines and HTTP surface, and serves
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	words := word.New(pool)

	searchSvc := search.NewService(logger, words, cfg.Search)
	browseSvc := browse.NewService(logger, words, cfg.Browse)

	router := rest.NewRouter(
		rest.NewSearchHandler(searchSvc, logger),
		rest.NewWordsHandler(browseSvc, cfg.Browse, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
		logger,
		cfg.CORS,
	)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
