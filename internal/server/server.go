// Package server is the composition root for both services. NewUsers and
// NewNotes each open their database, wire the dependency chain
// (store → service → handler), and register routes; Start runs the HTTP
// server with graceful shutdown. The two services share everything here
// except the route table.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"micronotes/internal/config"
	"micronotes/internal/middleware"
	"micronotes/internal/repository/sqlite"
)

// Server owns the router, the database handle, and the listener lifecycle.
// One instance exists per running service: created at startup, torn down at
// shutdown. Nothing else in the process holds mutable shared state.
type Server struct {
	name   string
	router *chi.Mux
	cfg    config.Config
	logger *slog.Logger
	db     *sqlite.DB
}

// newServer opens the database and prepares the router with the middleware
// common to both services. Route registration is the caller's job.
func newServer(name string, cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(logger))

	return &Server{
		name:   name,
		router: router,
		cfg:    cfg,
		logger: logger,
		db:     db,
	}, nil
}

// Handler exposes the router, mainly for httptest-driven tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the database handle. Start does this itself; Close exists
// for callers that never reach Start (tests, failed startups).
func (s *Server) Close() error {
	return s.db.Close()
}

// Start serves HTTP until SIGINT/SIGTERM, then drains in-flight requests
// for up to 30 seconds and closes the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.String("service", s.name),
			slog.Int("port", s.cfg.Port),
			slog.String("database", s.cfg.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
