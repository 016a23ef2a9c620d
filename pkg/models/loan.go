package models

import "time"

// LoanEvent is one row of the library timeline export. Timestamps arrive in
// UTC and are converted to the configured local zone by the loader; all
// comparisons downstream happen in local time.
type LoanEvent struct {
	Title      string     `json:"title"`
	CanonTitle string     `json:"canon_title"`
	Activity   string     `json:"activity"` // free text, lowercased
	Timestamp  *time.Time `json:"timestamp"`
	Library    string     `json:"library"`
}

// Borrow reports whether the event is a borrow/checkout.
func (e LoanEvent) Borrow() bool {
	return containsFold(e.Activity, "borrow") || containsFold(e.Activity, "checkout")
}
