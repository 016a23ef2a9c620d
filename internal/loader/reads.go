package loader

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"libbywrapped/pkg/models"
)

// Column candidates for the loosely-structured reads export. The first
// present name wins.
var (
	titleCols    = []string{"name", "title"}
	finishedCols = []string{"finished", "created_time", "created", "created_at"}
	genreCols    = []string{"genre", "genres", "category"}
	pageCols     = []string{"page_count", "pages", "length_pages"}
)

// ReadsTable is the typed form of the reads export. The Has* flags record
// which optional columns the source actually carried; metrics that depend
// on an absent column degrade to their documented defaults instead of
// guessing.
type ReadsTable struct {
	Records []models.ReadingRecord

	HasStatus   bool
	HasFinished bool
	HasGenre    bool
	HasFormat   bool
	HasPages    bool
	HasCost     bool
}

// Normalize converts a raw reads table into typed records. Malformed fields
// degrade to nil/zero per field; a bad cell never drops the rest of its row.
func Normalize(t Table, loc *time.Location) ReadsTable {
	out := ReadsTable{}
	if t.Empty() {
		return out
	}

	titleCol, hasTitle := t.Col(titleCols...)
	statusCol, hasStatus := t.Col("status")
	finishedCol, hasFinished := t.Col(finishedCols...)
	authorCol, hasAuthor := t.Col("author")
	formatCol, hasFormat := t.Col("format")
	genreCol, hasGenre := t.Col(genreCols...)
	costCol, hasCost := t.Col("cost")
	pageCol, hasPages := t.Col(pageCols...)
	hoursCol, hasHours := t.Col("ab_hours")
	minutesCol, hasMinutes := t.Col("ab_minutes")
	lengthCol, hasLength := t.ColContaining("audiobook_length", "minute")

	out.HasStatus = hasStatus
	out.HasFinished = hasFinished
	out.HasGenre = hasGenre
	out.HasFormat = hasFormat
	out.HasPages = hasPages
	out.HasCost = hasCost

	out.Records = make([]models.ReadingRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		var rec models.ReadingRecord
		if hasTitle {
			rec.Title = t.Value(row, titleCol)
		}
		rec.CanonTitle = CanonTitle(rec.Title)
		if hasAuthor {
			rec.Author = t.Value(row, authorCol)
		}
		if hasStatus {
			rec.Status = strings.ToLower(strings.TrimSpace(t.Value(row, statusCol)))
		}
		if hasFinished {
			rec.FinishedAt = ParseFinishTime(t.Value(row, finishedCol), loc)
		}
		if hasFormat {
			rec.Format = strings.ToLower(t.Value(row, formatCol))
		}
		if hasGenre {
			rec.Genre = t.Value(row, genreCol)
		}
		if hasCost {
			rec.Cost = ParseCost(t.Value(row, costCol))
		}
		if hasPages {
			rec.Pages = parseIntField(t.Value(row, pageCol))
		}

		// Prefer the explicit length-in-minutes column; fall back to the
		// split hours+minutes fields when it is absent or zero.
		var explicit, hours, minutes float64
		if hasLength {
			explicit = parseFloatField(t.Value(row, lengthCol))
		}
		if hasHours {
			hours = parseFloatField(t.Value(row, hoursCol))
		}
		if hasMinutes {
			minutes = parseFloatField(t.Value(row, minutesCol))
		}
		if explicit > 0 {
			rec.ABMinutes = explicit
		} else {
			rec.ABMinutes = hours*60 + minutes
		}

		out.Records = append(out.Records, rec)
	}

	return out
}

// ApplyFixes overwrites the finish timestamp for titles in the manual
// correction table. For each fix the rows whose canonical title matches and
// whose current finish-year equals the fix's year are patched; if no row
// matches on year, any row with a matching canonical title is patched.
// Returns whether any cell changed.
func ApplyFixes(t *Table, fixes map[string]time.Time, loc *time.Location) bool {
	if t.Empty() || len(fixes) == 0 {
		return false
	}
	finishedCol, ok := t.Col(finishedCols...)
	if !ok {
		return false
	}
	titleCol, ok := t.Col(titleCols...)
	if !ok {
		return false
	}

	changed := false
	for rawTitle, ts := range fixes {
		key := CanonTitle(rawTitle)
		if key == "" {
			continue
		}

		var matches, yearMatches []int
		for i, row := range t.Rows {
			if CanonTitle(t.Value(row, titleCol)) != key {
				continue
			}
			matches = append(matches, i)
			if cur := ParseFinishTime(t.Value(row, finishedCol), loc); cur != nil && cur.Year() == ts.Year() {
				yearMatches = append(yearMatches, i)
			}
		}
		if len(yearMatches) > 0 {
			matches = yearMatches
		}

		fixed := ts.Format("2006-01-02 15:04:05")
		for _, i := range matches {
			if finishedCol >= len(t.Rows[i]) {
				continue
			}
			if t.Rows[i][finishedCol] != fixed {
				t.Rows[i][finishedCol] = fixed
				changed = true
			}
		}
	}

	return changed
}

var nonNumericRe = regexp.MustCompile(`[^\d.]`)

// ParseCost parses a currency string ("$12.99", "12.99 USD") into a
// non-negative decimal. Blank, "free", and unparseable values are unknown
// (nil), never zero: they must stay out of cost averages.
func ParseCost(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "free") || strings.EqualFold(s, "nan") || strings.EqualFold(s, "none") {
		return nil
	}
	s = nonNumericRe.ReplaceAllString(s, "")
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}

func parseFloatField(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseIntField(s string) *int {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}
