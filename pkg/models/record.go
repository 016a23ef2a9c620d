package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReadingRecord is the normalized, internal form of one row of the reads
// export (the personal "books I read" database).
//
// The raw export is loosely structured: columns come and go and most fields
// are optional. Everything optional is a pointer; nil means the source had
// no usable value, never zero.
type ReadingRecord struct {
	Title      string           `json:"title"`       // raw title as exported
	CanonTitle string           `json:"canon_title"` // join key, see loader.CanonTitle
	Author     string           `json:"author"`
	Status     string           `json:"status"`      // lowercased/trimmed: "complete", "dnf", ...
	FinishedAt *time.Time       `json:"finished_at"` // nil when unparseable or absent
	Format     string           `json:"format"`      // free text, lowercased
	ABMinutes  float64          `json:"ab_minutes"`  // audiobook length in minutes (0 when unknown)
	Genre      string           `json:"genre"`       // raw delimited genre string
	Cost       *decimal.Decimal `json:"cost"`        // nil for blank/"free"/unparseable
	Pages      *int             `json:"pages"`
	Library    string           `json:"library,omitempty"`
}

// Audiobook reports whether the record's format marks it as an audiobook.
func (r ReadingRecord) Audiobook() bool {
	return containsFold(r.Format, "audiobook")
}

// Completed reports whether the record's normalized status is "complete".
func (r ReadingRecord) Completed() bool {
	return r.Status == "complete"
}

// FinishedIn reports whether the record has a parseable finish time in year.
func (r ReadingRecord) FinishedIn(year int) bool {
	return r.FinishedAt != nil && r.FinishedAt.Year() == year
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
