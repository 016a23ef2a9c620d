package loader

import (
	"fmt"
	"os"
	"strings"
	"time"

	"libbywrapped/pkg/models"
)

// LoadLoans reads the library timeline export and converts its UTC
// timestamps to the local zone. A missing or unreadable file is an error so
// the metrics engine can apply its documented fallback; events with
// unparseable timestamps are kept with a nil Timestamp and dropped by the
// year and join filters downstream.
func LoadLoans(path string, loc *time.Location) ([]models.LoanEvent, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("loans file: %w", err)
	}

	t, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}

	titleCol, hasTitle := t.Col("title")
	tsCol, hasTS := t.Col("timestamp")
	if !hasTitle || !hasTS {
		// Not the expected shape; nothing borrowable to count.
		return []models.LoanEvent{}, nil
	}
	activityCol, hasActivity := t.Col("activity")
	libraryCol, hasLibrary := t.Col("library")

	events := make([]models.LoanEvent, 0, len(t.Rows))
	for _, row := range t.Rows {
		ev := models.LoanEvent{
			Title:     t.Value(row, titleCol),
			Timestamp: ParseLoanTime(t.Value(row, tsCol), loc),
		}
		ev.CanonTitle = CanonTitle(ev.Title)
		if hasActivity {
			ev.Activity = strings.ToLower(t.Value(row, activityCol))
		}
		if hasLibrary {
			ev.Library = t.Value(row, libraryCol)
		}
		events = append(events, ev)
	}

	return events, nil
}
