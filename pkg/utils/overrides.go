package utils

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Manual finish-time corrections for titles whose exported timestamp is
// known to be wrong. Keyed by the exact raw title as it appears in the
// export; values are local wall-clock times.
const overrideTimeLayout = "2006-01-02 15:04"

type overridesFile struct {
	FinishTimes map[string]string `yaml:"finish_times"`
}

// DefaultOverrides is the compiled-in correction table, used when no
// overrides file is present.
func DefaultOverrides(loc *time.Location) map[string]time.Time {
	raw := map[string]string{
		"Mate (#2)":       "2025-10-07 23:27",
		"Onyx Storm (#3)": "2025-01-23 10:30",
	}
	out := make(map[string]time.Time, len(raw))
	for title, v := range raw {
		t, err := time.ParseInLocation(overrideTimeLayout, v, loc)
		if err != nil {
			continue
		}
		out[title] = t
	}
	return out
}

// LoadOverrides reads the YAML correction table at path. A missing file is
// not an error: the compiled-in defaults are returned instead.
func LoadOverrides(path string, loc *time.Location) (map[string]time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultOverrides(loc), nil
		}
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var f overridesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}

	out := make(map[string]time.Time, len(f.FinishTimes))
	for title, v := range f.FinishTimes {
		t, err := time.ParseInLocation(overrideTimeLayout, v, loc)
		if err != nil {
			return nil, fmt.Errorf("overrides: bad timestamp for %q: %w", title, err)
		}
		out[title] = t
	}
	return out, nil
}
