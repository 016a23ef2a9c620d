package metrics

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"libbywrapped/internal/loader"
	"libbywrapped/pkg/models"
)

// Compute derives the full yearly Report from the normalized reads table
// and the loan-events file. It never fails: missing or malformed inputs
// degrade the affected fields to their zero defaults and everything else is
// still computed.
func Compute(reads loader.ReadsTable, year int, loansPath string, loc *time.Location) models.Report {
	rep := models.Report{Year: year, FastestTop3: []models.FastRead{}}
	if len(reads.Records) == 0 || !reads.HasStatus || !reads.HasFinished {
		return rep
	}

	var yearRecs, completed []models.ReadingRecord
	for _, rec := range reads.Records {
		if !rec.FinishedIn(year) {
			continue
		}
		yearRecs = append(yearRecs, rec)
		if rec.Completed() {
			completed = append(completed, rec)
		}
	}

	for _, rec := range completed {
		if isNovella(rec, reads.HasGenre) {
			rep.NovellaCount++
		} else {
			rep.TotalBooks++
		}
	}
	rep.TotalFinished = len(completed)
	rep.Percentile = Percentile(rep.TotalFinished)

	loans, loansErr := loader.LoadLoans(loansPath, loc)
	countCheckouts(&rep, loans, loansErr, yearRecs, completed, year)
	computeSavings(&rep, completed, reads.HasCost)

	var audiobooks []models.ReadingRecord
	if reads.HasFormat {
		for _, rec := range completed {
			if rec.Audiobook() {
				audiobooks = append(audiobooks, rec)
			}
		}
	}
	computeListening(&rep, audiobooks)
	computeTopAuthor(&rep, audiobooks)

	if loansErr == nil {
		if speeds := ReadSpeeds(loans, reads, year); len(speeds) > 0 {
			rep.FastestTitle = loader.DisplayTitle(speeds[0].Title)
			rep.FastestHours = speeds[0].HoursToFinish
			rep.FastestDays = round2(rep.FastestHours / 24)
			for _, s := range speeds[:min(3, len(speeds))] {
				rep.FastestTop3 = append(rep.FastestTop3, models.FastRead{
					Title:         loader.DisplayTitle(s.Title),
					Author:        s.Author,
					HoursToFinish: round2(s.HoursToFinish),
				})
			}
		}
	}

	computeGenres(&rep, completed, reads.HasGenre)

	return rep
}

func isNovella(rec models.ReadingRecord, hasGenre bool) bool {
	return hasGenre && strings.Contains(strings.ToLower(rec.Genre), "novella")
}

// countCheckouts fills books_checked_out and dnfs from the timeline. A DNF
// is a title checked out this year whose canonical title has no completed
// record this year; a finish logged in a later year does not un-DNF it.
// When the timeline is missing the reads table approximates both counts;
// that is a documented degradation, not an equivalent rule.
func countCheckouts(rep *models.Report, loans []models.LoanEvent, loansErr error, yearRecs, completed []models.ReadingRecord, year int) {
	if loansErr != nil {
		rep.BooksCheckedOut = len(yearRecs)
		for _, rec := range yearRecs {
			if rec.Status == "dnf" {
				rep.DNFs++
			}
		}
		return
	}

	checkedOut := make(map[string]bool)
	for _, ev := range loans {
		if !ev.Borrow() || ev.Timestamp == nil || ev.Timestamp.Year() != year {
			continue
		}
		if ev.CanonTitle != "" {
			checkedOut[ev.CanonTitle] = true
		}
	}

	completedTitles := make(map[string]bool, len(completed))
	for _, rec := range completed {
		if rec.CanonTitle != "" {
			completedTitles[rec.CanonTitle] = true
		}
	}

	rep.BooksCheckedOut = len(checkedOut)
	for title := range checkedOut {
		if !completedTitles[title] {
			rep.DNFs++
		}
	}
}

// computeSavings sums the parsed costs of completed reads and estimates what
// the DNFs would have cost at the average. Unknown costs stay out of both
// the sum and the average; with no parseable cost at all everything stays
// zero.
func computeSavings(rep *models.Report, completed []models.ReadingRecord, hasCost bool) {
	if !hasCost {
		return
	}
	var costs []decimal.Decimal
	for _, rec := range completed {
		if rec.Cost != nil {
			costs = append(costs, *rec.Cost)
		}
	}
	if len(costs) == 0 {
		return
	}

	sum := decimal.Sum(costs[0], costs[1:]...)
	avg := sum.Div(decimal.NewFromInt(int64(len(costs))))

	finished := sum.Round(2)
	dnf := avg.Mul(decimal.NewFromInt(int64(rep.DNFs))).Round(2)

	rep.SavingsFinished = finished.InexactFloat64()
	rep.SavingsDNF = dnf.InexactFloat64()
	// Exact sum of the two rounded figures, no independent re-rounding.
	rep.SavingsCombined = finished.Add(dnf).InexactFloat64()
}

func computeListening(rep *models.Report, audiobooks []models.ReadingRecord) {
	if len(audiobooks) == 0 {
		return
	}

	var totalMinutes float64
	monthly := make(map[time.Month]float64)
	for _, rec := range audiobooks {
		totalMinutes += rec.ABMinutes
		monthly[rec.FinishedAt.Month()] += rec.ABMinutes / 60
	}
	rep.AudiobookHours = round2(totalMinutes / 60)

	// Highest summed hours wins; equal months tie-break alphabetically.
	for month, hours := range monthly {
		name := month.String()
		switch {
		case hours > rep.BiggestMonthHours:
			rep.BiggestMonth, rep.BiggestMonthHours = name, hours
		case hours == rep.BiggestMonthHours && rep.BiggestMonth != "" && name < rep.BiggestMonth:
			rep.BiggestMonth = name
		}
	}
	rep.BiggestMonthHours = round1(rep.BiggestMonthHours)
}

func computeTopAuthor(rep *models.Report, audiobooks []models.ReadingRecord) {
	if len(audiobooks) == 0 {
		return
	}

	type authorAgg struct {
		name    string
		books   int
		minutes float64
	}
	byAuthor := make(map[string]*authorAgg)
	for _, rec := range audiobooks {
		name := strings.TrimSpace(rec.Author)
		agg := byAuthor[name]
		if agg == nil {
			agg = &authorAgg{name: name}
			byAuthor[name] = agg
		}
		agg.books++
		agg.minutes += rec.ABMinutes
	}
	rep.AuthorsCount = len(byAuthor)

	ranked := make([]*authorAgg, 0, len(byAuthor))
	for _, agg := range byAuthor {
		ranked = append(ranked, agg)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].books != ranked[j].books {
			return ranked[i].books > ranked[j].books
		}
		if ranked[i].minutes != ranked[j].minutes {
			return ranked[i].minutes > ranked[j].minutes
		}
		return ranked[i].name < ranked[j].name
	})

	top := ranked[0]
	rep.TopAuthor = top.name
	if rep.TopAuthor == "" {
		rep.TopAuthor = "—"
	}
	rep.TopAuthorBooks = top.books
	rep.TopAuthorMins = top.minutes
	rep.TopAuthorHours = round1(top.minutes / 60)

	var theirs []models.ReadingRecord
	allZero := true
	for _, rec := range audiobooks {
		if strings.TrimSpace(rec.Author) == top.name {
			theirs = append(theirs, rec)
			if rec.ABMinutes > 0 {
				allZero = false
			}
		}
	}
	// Longest listens headline the author slide; with no duration data the
	// most recent finishes stand in.
	sort.Slice(theirs, func(i, j int) bool {
		if allZero {
			return theirs[i].FinishedAt.After(*theirs[j].FinishedAt)
		}
		return theirs[i].ABMinutes > theirs[j].ABMinutes
	})
	if len(theirs) > 0 {
		rep.TopAuthorTitle1 = loader.DisplayTitle(theirs[0].Title)
	}
	if len(theirs) > 1 {
		rep.TopAuthorTitle2 = loader.DisplayTitle(theirs[1].Title)
	}
}

var (
	genreDelimRe = regexp.MustCompile(`[,;/]`)
	genreStripRe = regexp.MustCompile(`[\[\]'"]`)
)

// splitGenres breaks a raw delimited genre field into title-cased fragments.
func splitGenres(raw string) []string {
	raw = genreStripRe.ReplaceAllString(raw, "")
	caser := cases.Title(language.English)
	var out []string
	for _, frag := range genreDelimRe.Split(raw, -1) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		out = append(out, caser.String(strings.ToLower(frag)))
	}
	return out
}

func computeGenres(rep *models.Report, completed []models.ReadingRecord, hasGenre bool) {
	if !hasGenre {
		return
	}

	counts := make(map[string]int)
	for _, rec := range completed {
		for _, frag := range splitGenres(rec.Genre) {
			counts[frag]++
		}
	}
	if len(counts) == 0 {
		return
	}

	rep.GenresCount = len(counts)
	best, bestCount := "", 0
	for genre, n := range counts {
		if n > bestCount || (n == bestCount && genre < best) {
			best, bestCount = genre, n
		}
	}
	rep.TopGenre = best
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
func round1(f float64) float64 { return math.Round(f*10) / 10 }
