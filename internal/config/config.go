// Package config loads service configuration from the environment.
//
// A .env file is loaded first if present (useful for local development and
// CI), then env vars are parsed into the Config struct. JWT_SECRET is
// required and must be identical across every service that verifies tokens;
// a missing value aborts startup rather than being caught per-request.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings common to both services.
type Config struct {
	Port      int    `env:"PORT"`
	DBPath    string `env:"DB_PATH"`
	JWTSecret string `env:"JWT_SECRET,required"`
}

// Load fills a Config from the environment. defaultPort and defaultDBPath
// apply when PORT / DB_PATH are unset, so each service gets its own port and
// database file out of the box while both can be overridden explicitly.
func Load(defaultPort int, defaultDBPath string) (Config, error) {
	// Best effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	cfg := Config{
		Port:   defaultPort,
		DBPath: defaultDBPath,
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing environment: %w", err)
	}
	return cfg, nil
}
