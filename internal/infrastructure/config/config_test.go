package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/table-reservations/internal/domain/reservation"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TABLEBOOK_RESTAURANTS_FILE",
		"TABLEBOOK_GRANULARITY",
		"TABLEBOOK_TIMEZONE",
		"TABLEBOOK_LOG_LEVEL",
		"TABLEBOOK_LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.RestaurantsFile)
	assert.Equal(t, reservation.GranularityDay, cfg.Granularity)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TABLEBOOK_RESTAURANTS_FILE", "restaurants.csv")
	t.Setenv("TABLEBOOK_GRANULARITY", "exact")
	t.Setenv("TABLEBOOK_LOG_LEVEL", "debug")
	t.Setenv("TABLEBOOK_LOG_FORMAT", "JSON")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "restaurants.csv", cfg.RestaurantsFile)
	assert.Equal(t, reservation.GranularityExact, cfg.Granularity)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"TABLEBOOK_GRANULARITY": "hour",
		"TABLEBOOK_TIMEZONE":    "Not/AZone",
		"TABLEBOOK_LOG_LEVEL":   "loud",
		"TABLEBOOK_LOG_FORMAT":  "xml",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			_, err := FromEnv()
			assert.ErrorContains(t, err, k)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty ones
	require.NoError(t, os.Unsetenv("TABLEBOOK_RESTAURANTS_FILE"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TABLEBOOK_RESTAURANTS_FILE=from-dotenv.csv\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.csv", cfg.RestaurantsFile)
	require.NoError(t, os.Unsetenv("TABLEBOOK_RESTAURANTS_FILE"))
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
