package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/PastaSec/orbitivexr/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath         string
	ServerPort     string
	LogLevel       string
	MatchThreshold float64
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:         getEnv("DB_PATH", "orbitivexr.db"),
		ServerPort:     getEnv("SERVER_PORT", "8000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MatchThreshold: constants.DefaultMatchThreshold,
	}

	if raw := os.Getenv("MATCH_THRESHOLD"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MATCH_THRESHOLD %q: %w", raw, err)
		}
		cfg.MatchThreshold = threshold
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Float64("match_threshold", cfg.MatchThreshold).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
