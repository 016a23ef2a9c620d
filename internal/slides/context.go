package slides

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"libbywrapped/pkg/models"
)

// Most listeners do not play audiobooks at 1x. Used to translate logged
// hours into "real" wall-clock hours on the totals slide.
const speedupFactor = 1.85

// Context flattens a Report into the placeholder values the deck
// substitutes. Keys here and the slide templates form a contract; renaming
// one side silently breaks the other.
func Context(rep models.Report) map[string]string {
	dash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "—"
		}
		return s
	}

	return map[string]string{
		"full_books":     itoa(rep.TotalBooks),
		"novellas":       itoa(rep.NovellaCount),
		"total_finished": itoa(rep.TotalFinished),
		"percentile":     itoa(rep.Percentile),

		"books_checked_out": itoa(rep.BooksCheckedOut),
		"dnfs":              itoa(rep.DNFs),

		"listening_hours":      itoa(int(rep.AudiobookHours)),
		"listening_hours_days": ftoa(round1(rep.AudiobookHours / 24)),
		"speedup_factor":       ftoa(speedupFactor),
		"real_hours":           itoa(int(rep.AudiobookHours / speedupFactor)),

		"biggest_month":       dash(rep.BiggestMonth),
		"biggest_month_hours": ftoa(round1(rep.BiggestMonthHours)),

		"fastest_title":    dash(rep.FastestTitle),
		"fastest_hours":    ftoa(round1(rep.FastestHours)),
		"fastest_days":     ftoa(rep.FastestDays),
		"fastest_top3_str": FormatFastestTop3(rep.FastestTop3),

		"authors_count":           itoa(rep.AuthorsCount),
		"top_author":              dash(rep.TopAuthor),
		"top_author_books":        itoa(rep.TopAuthorBooks),
		"top_author_minutes":      itoa(int(rep.TopAuthorMins)),
		"top_author_hours":        ftoa(rep.TopAuthorHours),
		"top_author_book_title_1": rep.TopAuthorTitle1,
		"top_author_book_title_2": rep.TopAuthorTitle2,

		"genres_count": itoa(rep.GenresCount),
		"top_genre":    dash(rep.TopGenre),

		"savings":          ftoa(round2(rep.SavingsCombined)),
		"savings_finished": ftoa(round2(rep.SavingsFinished)),
		"savings_dnf":      ftoa(round2(rep.SavingsDNF)),
	}
}

// FormatFastestTop3 renders the ranked fastest-reads list as slide body
// text, one "<n>. Title by Author — X.X hrs" line per entry.
func FormatFastestTop3(reads []models.FastRead) string {
	if len(reads) == 0 {
		return "No completed reads found this year."
	}
	lines := make([]string, 0, len(reads))
	for i, b := range reads {
		lines = append(lines, fmt.Sprintf("%d. %s by %s — %.1f hrs", i+1, b.Title, b.Author, b.HoursToFinish))
	}
	return strings.Join(lines, "<br>")
}

var placeholderRe = regexp.MustCompile(`\{([a-z0-9_]+)\}`)

// Render substitutes {name} placeholders from ctx. Unknown placeholders are
// left verbatim so a missing metric reads as "{fastest_title}" instead of
// crashing the deck.
func Render(text string, ctx map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(m string) string {
		key := m[1 : len(m)-1]
		if v, ok := ctx[key]; ok {
			return v
		}
		return m
	})
}

// Rendered is a slide with all placeholders substituted.
type Rendered struct {
	Key      string `json:"key"`
	Subtitle string `json:"subtitle,omitempty"`
	Title    string `json:"title,omitempty"`
	Body     string `json:"body,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Layout   string `json:"layout"`
}

// RenderDeck substitutes the context into every slide of the deck.
func RenderDeck(deck []Slide, ctx map[string]string) []Rendered {
	out := make([]Rendered, 0, len(deck))
	for _, s := range deck {
		out = append(out, Rendered{
			Key:      s.Key,
			Subtitle: Render(s.Subtitle, ctx),
			Title:    Render(s.Title, ctx),
			Body:     Render(s.Body, ctx),
			Notes:    Render(s.Notes, ctx),
			Layout:   s.Layout,
		})
	}
	return out
}

func itoa(n int) string { return strconv.Itoa(n) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func round1(f float64) float64 { return math.Round(f*10) / 10 }

func round2(f float64) float64 { return math.Round(f*100) / 100 }
