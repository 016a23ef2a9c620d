package loader

import (
	"strings"
	"time"
)

// Layouts the reads export has been seen to use for finish timestamps.
// The verbose alphabetic form comes from Notion-style exports
// ("April 23, 2021 8:21 PM"); the rest are ISO-ish.
var finishLayouts = []string{
	"January 2, 2006 3:04 PM",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
}

// Timeline timestamps arrive in UTC.
var loanLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseFinishTime parses a mixed-format finish timestamp as local wall-clock
// time. Unparseable or blank values yield nil, never an error.
func ParseFinishTime(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "none") {
		return nil
	}
	for _, layout := range finishLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			t = t.In(loc)
			return &t
		}
	}
	return nil
}

// ParseLoanTime parses a timeline timestamp as UTC and converts it to the
// local zone. Unparseable values yield nil.
func ParseLoanTime(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range loanLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t = t.In(loc)
			return &t
		}
	}
	return nil
}
