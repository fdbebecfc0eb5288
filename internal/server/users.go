package server

import (
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"micronotes/internal/auth"
	"micronotes/internal/config"
	"micronotes/internal/handler"
	"micronotes/internal/service"
)

// NewUsers builds the users service: signup, login, and the identity echo.
//
// Routes:
//
//	GET  /healthz       liveness probe (no auth)
//	POST /auth/signup   create account
//	POST /auth/login    issue token
//	GET  /auth/me       identity echo (token required)
func NewUsers(cfg config.Config, logger *slog.Logger) (*Server, error) {
	s, err := newServer("usersvc", cfg, logger)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		s.db.Close()
		return nil, fmt.Errorf("creating token service: %w", err)
	}

	authService := service.NewAuthService(
		s.db.Users(),
		tokens,
		auth.NewPasswordService(),
		logger,
	)
	authHandler := handler.NewAuthHandler(authService, logger)

	s.router.Get("/healthz", handler.HandleHealthz)

	s.router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.HandleSignup)
		r.Post("/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))
			r.Get("/me", authHandler.HandleMe)
		})
	})

	return s, nil
}
