package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"WRAPPED_READS_PATH", "WRAPPED_LOANS_PATH", "WRAPPED_OVERRIDES_PATH",
		"WRAPPED_YEAR", "WRAPPED_TZ", "WRAPPED_ADDR", "WRAPPED_PERSIST_FIXES",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "libby-export.csv", cfg.ReadsPath)
	assert.Equal(t, 2025, cfg.Year)
	assert.Equal(t, "America/Indiana/Indianapolis", cfg.Timezone)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.PersistFixes)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("WRAPPED_READS_PATH", "/data/reads.csv")
	t.Setenv("WRAPPED_YEAR", "2024")
	t.Setenv("WRAPPED_PERSIST_FIXES", "false")
	t.Setenv("WRAPPED_YEAR_BOGUS", "x") // unrelated vars are ignored

	cfg := LoadConfig()
	assert.Equal(t, "/data/reads.csv", cfg.ReadsPath)
	assert.Equal(t, 2024, cfg.Year)
	assert.False(t, cfg.PersistFixes)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.Timezone = "America/Indiana/Indianapolis"
	assert.Equal(t, "America/Indiana/Indianapolis", cfg.Location().String())
}

func TestOverrides(t *testing.T) {
	loc := time.UTC

	t.Run("missing file uses compiled-in defaults", func(t *testing.T) {
		fixes, err := LoadOverrides(filepath.Join(t.TempDir(), "none.yaml"), loc)
		require.NoError(t, err)
		assert.Equal(t, DefaultOverrides(loc), fixes)
		assert.Contains(t, fixes, "Mate (#2)")
	})

	t.Run("yaml file wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "overrides.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"finish_times:\n  \"Fourth Wing\": \"2025-06-01 08:00\"\n"), 0o644))

		fixes, err := LoadOverrides(path, loc)
		require.NoError(t, err)
		require.Len(t, fixes, 1)
		assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, loc), fixes["Fourth Wing"])
	})

	t.Run("bad timestamp is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "overrides.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"finish_times:\n  \"Fourth Wing\": \"soonish\"\n"), 0o644))

		_, err := LoadOverrides(path, loc)
		assert.Error(t, err)
	})
}
