// Command usersvc runs the users service: signup, login, and the identity
// echo. It reads configuration, wires dependencies, and starts the server;
// all logic lives in internal packages.
package main

import (
	"log/slog"
	"os"

	"micronotes/internal/config"
	"micronotes/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// A missing JWT_SECRET aborts here, not on the first request.
	cfg, err := config.Load(8081, "data/users.db")
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv, err := server.NewUsers(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
