package models

import "time"

// FastRead is one entry of the fastest-reads ranking.
type FastRead struct {
	Title         string  `json:"title"`  // display-formatted
	Author        string  `json:"author"`
	HoursToFinish float64 `json:"hours_to_finish"`
}

// ReadSpeed is one joined (completion, closest-preceding checkout) pair
// produced by the fastest-read matcher, sorted fastest first.
type ReadSpeed struct {
	Title         string    `json:"title"` // raw title
	Author        string    `json:"author"`
	Library       string    `json:"library"`
	Borrowed      time.Time `json:"borrowed"`
	Finished      time.Time `json:"finished"`
	HoursToFinish float64   `json:"hours_to_finish"`
}

// Report is the full set of yearly statistics. It is built fresh from the
// two source files and never mutated afterwards. The json names are the
// contract the slide layer substitutes into its templates; do not rename
// them casually.
type Report struct {
	Year int `json:"year"`

	// Checkouts & DNFs (timeline-based).
	BooksCheckedOut int `json:"books_checked_out"` // unique titles checked out this year
	DNFs            int `json:"dnfs"`              // checked out this year, not completed this year

	// Finished counts (export-based).
	TotalBooks    int `json:"total_books"`    // completed non-novellas
	NovellaCount  int `json:"novella_count"`  // completed novellas
	TotalFinished int `json:"total_finished"` // all completed items
	Percentile    int `json:"percentile"`     // read more than X% of adults

	// Audiobooks.
	AudiobookHours    float64 `json:"audiobook_hours"` // total hours, completed only
	BiggestMonth      string  `json:"biggest_month"`
	BiggestMonthHours float64 `json:"biggest_month_hours"`

	// Fastest reads (borrow -> finish).
	FastestTitle string     `json:"fastest_title"`
	FastestHours float64    `json:"fastest_hours"`
	FastestDays  float64    `json:"fastest_days"`
	FastestTop3  []FastRead `json:"fastest_top3"`

	// Authors (completed audiobooks).
	AuthorsCount    int     `json:"authors_count"`
	TopAuthor       string  `json:"top_author"`
	TopAuthorBooks  int     `json:"top_author_books"`
	TopAuthorMins   float64 `json:"top_author_minutes"`
	TopAuthorHours  float64 `json:"top_author_hours"`
	TopAuthorTitle1 string  `json:"top_author_book_title_1"`
	TopAuthorTitle2 string  `json:"top_author_book_title_2"`

	// Genres (completed set).
	GenresCount int    `json:"genres_count"`
	TopGenre    string `json:"top_genre"`

	// Savings (sum of finished costs + avg finished cost x DNFs).
	SavingsFinished float64 `json:"savings_finished"`
	SavingsDNF      float64 `json:"savings_dnf"`
	SavingsCombined float64 `json:"savings_combined"`
}
