package utils

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ReadsPath     string // reads export CSV
	LoansPath     string // library timeline CSV
	OverridesPath string // optional YAML with manual finish-time fixes
	Year          int    // target year for the report
	Timezone      string // IANA zone the timeline timestamps are displayed in
	Addr          string // HTTP listen address
	PersistFixes  bool   // write corrected reads CSV back to disk
}

func LoadConfig() Config {
	cfg := Config{
		ReadsPath:     "libby-export.csv",
		LoansPath:     "libbytimeline-all-loans,all.csv",
		OverridesPath: "overrides.yaml",
		Year:          2025,
		Timezone:      "America/Indiana/Indianapolis",
		Addr:          ":8080",
		PersistFixes:  true,
	}

	if p := os.Getenv("WRAPPED_READS_PATH"); p != "" {
		cfg.ReadsPath = p
	}
	if p := os.Getenv("WRAPPED_LOANS_PATH"); p != "" {
		cfg.LoansPath = p
	}
	if p := os.Getenv("WRAPPED_OVERRIDES_PATH"); p != "" {
		cfg.OverridesPath = p
	}
	if y := os.Getenv("WRAPPED_YEAR"); y != "" {
		if n, err := strconv.Atoi(y); err == nil && n > 0 {
			cfg.Year = n
		}
	}
	if tz := os.Getenv("WRAPPED_TZ"); tz != "" {
		cfg.Timezone = tz
	}
	if a := os.Getenv("WRAPPED_ADDR"); a != "" {
		cfg.Addr = a
	}
	if v := os.Getenv("WRAPPED_PERSIST_FIXES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.PersistFixes = b
		}
	}

	return cfg
}

// Location resolves the configured timezone, falling back to UTC if the
// zone database does not know it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
