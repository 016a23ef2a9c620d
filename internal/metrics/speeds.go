package metrics

import (
	"sort"

	"libbywrapped/internal/loader"
	"libbywrapped/pkg/models"
)

// Completed books shorter than this never qualify as a "fastest read": the
// quick turnaround on a novella is not much of a feat.
const minPagesForSpeed = 300

type borrow struct {
	at      int64 // unix seconds, local-converted
	library string
	ev      *models.LoanEvent
}

// ReadSpeeds joins completions in year onto their closest preceding
// borrow/checkout of the same canonical title and returns the pairs sorted
// by elapsed hours, fastest first. Missing columns or an empty side of the
// join produce an empty result, never an error.
func ReadSpeeds(loans []models.LoanEvent, reads loader.ReadsTable, year int) []models.ReadSpeed {
	if len(loans) == 0 || len(reads.Records) == 0 || !reads.HasStatus || !reads.HasFinished {
		return nil
	}

	// Borrow index: canonical title -> checkout times in local zone.
	borrows := make(map[string][]borrow)
	for i := range loans {
		ev := &loans[i]
		if !ev.Borrow() || ev.Timestamp == nil || ev.CanonTitle == "" {
			continue
		}
		borrows[ev.CanonTitle] = append(borrows[ev.CanonTitle], borrow{
			at:      ev.Timestamp.Unix(),
			library: ev.Library,
			ev:      ev,
		})
	}
	if len(borrows) == 0 {
		return nil
	}

	var out []models.ReadSpeed
	for _, rec := range reads.Records {
		if !rec.Completed() || !rec.FinishedIn(year) {
			continue
		}
		if reads.HasPages && (rec.Pages == nil || *rec.Pages < minPagesForSpeed) {
			continue
		}

		// Closest-preceding checkout explains this finish; later checkouts
		// cannot, earlier ones belong to abandoned sessions.
		finish := rec.FinishedAt.Unix()
		best := borrow{at: -1}
		for _, b := range borrows[rec.CanonTitle] {
			if b.at <= finish && (best.at < 0 || b.at > best.at) {
				best = b
			}
		}
		if best.at < 0 {
			continue
		}

		out = append(out, models.ReadSpeed{
			Title:         rec.Title,
			Author:        rec.Author,
			Library:       best.library,
			Borrowed:      *best.ev.Timestamp,
			Finished:      *rec.FinishedAt,
			HoursToFinish: float64(finish-best.at) / 3600.0,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].HoursToFinish != out[j].HoursToFinish {
			return out[i].HoursToFinish < out[j].HoursToFinish
		}
		return out[i].Title < out[j].Title
	})
	return out
}
