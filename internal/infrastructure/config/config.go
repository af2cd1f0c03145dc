package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/example/table-reservations/internal/domain/reservation"
)

type Config struct {
	RestaurantsFile string

	Granularity reservation.Granularity
	Location    *time.Location

	LogLevel  logrus.Level
	LogFormat string // text or json
}

// Load reads an optional .env file from envFile (ignored when missing) and
// then builds the config from the environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		RestaurantsFile: strings.TrimSpace(os.Getenv("TABLEBOOK_RESTAURANTS_FILE")),
		LogFormat:       strings.ToLower(envDefault("TABLEBOOK_LOG_FORMAT", "text")),
	}

	var err error
	cfg.Granularity, err = reservation.ParseGranularity(envDefault("TABLEBOOK_GRANULARITY", string(reservation.GranularityDay)))
	if err != nil {
		return Config{}, fmt.Errorf("TABLEBOOK_GRANULARITY: %w", err)
	}
	cfg.Location, err = time.LoadLocation(envDefault("TABLEBOOK_TIMEZONE", "UTC"))
	if err != nil {
		return Config{}, fmt.Errorf("TABLEBOOK_TIMEZONE: %w", err)
	}
	cfg.LogLevel, err = logrus.ParseLevel(envDefault("TABLEBOOK_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("TABLEBOOK_LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("TABLEBOOK_LOG_FORMAT must be text or json (got %q)", cfg.LogFormat)
	}
	return cfg, nil
}

func envDefault(k, d string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	return v
}
