package slides

// Slide is one screen of the wrapped deck. Text fields may contain
// {placeholder} markers filled from the report context and inline HTML
// emphasis tags.
type Slide struct {
	Key      string `json:"key"`
	Subtitle string `json:"subtitle,omitempty"` // kicker/eyebrow line
	Title    string `json:"title,omitempty"`    // main line
	Body     string `json:"body,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Layout   string `json:"layout"` // "center" or "top"
}

// Deck returns the wrapped slide sequence, in presentation order.
func Deck() []Slide {
	return []Slide{
		{
			Key:      "intro",
			Subtitle: "It's that time of year again…",
			Title:    "Are you ready to see the damage?",
			Body:     "Life moves fast—luckily, we took notes.",
			Layout:   "center",
		},
		{
			Key:      "finished",
			Subtitle: "It's not a competition… but nice work.",
			Title:    "You finished <b>{full_books}</b> books this year.",
			Body:     "And <b>{novellas}</b> novellas! That's more than <b>{percentile}%</b> of readers.",
			Notes:    `Based on data from <a href="https://today.yougov.com/entertainment/articles/48239-54-percent-of-americans-read-a-book-this-year">YouGov 2023</a>.`,
			Layout:   "center",
		},
		{
			Key:      "totals",
			Subtitle: "Speaking of dedication...",
			Title:    "You spent <b>{listening_hours}</b> hours listening.<br>That's <b>{listening_hours_days}</b> days straight!",
			Body:     "Well, really only <b>{real_hours}</b> hours — we know you love that <b>{speedup_factor}×</b> speed button.<br><br>",
			Layout:   "center",
		},
		{
			Key:      "monthly",
			Subtitle: "Your ears worked overtime",
			Title:    "Your biggest month was <b>{biggest_month}</b>, with <b>{biggest_month_hours}</b> hours.",
			Body:     "Keep the momentum going!",
			Layout:   "center",
		},
		{
			Key:      "top_books",
			Subtitle: "Couldn't hit pause, could you?",
			Title:    "Your fastest listen was <b>{fastest_title}</b>, which took you only <b>{fastest_hours}</b> hours!",
			Body:     "No judgement here...",
			Layout:   "center",
		},
		{
			Key:      "top_books_2",
			Subtitle: "Great job keeping it moving!",
			Title:    "Your fastest reads this year were:",
			Body:     "{fastest_top3_str}",
			Notes:    "Calculated by Libby checkout time to time marked in database as 'finished'.",
			Layout:   "center",
		},
		{
			Key:    "authors_1",
			Title:  "You listened to <b>{authors_count}</b> different authors this year, but one really caught your ear.",
			Body:   "Hint: you finished <b>{top_author_books}</b> books by them...",
			Layout: "center",
		},
		{
			Key:    "authors_2",
			Title:  "You spent <b>{top_author_minutes}</b> minutes with <b>{top_author}</b> this year",
			Body:   "Let me remind you, they wrote <b>{top_author_book_title_1}</b> and <b>{top_author_book_title_2}</b>",
			Layout: "center",
		},
		{
			Key:      "genres",
			Subtitle: "You contain multitudes",
			Title:    "You explored <b>{genres_count}</b> genres – but you mostly stuck with <b>{top_genre}</b>.",
			Body:     "Let's try to branch out more next year.",
			Layout:   "center",
		},
		{
			Key:      "dnfs",
			Subtitle: "Not every book was a hit.",
			Title:    "You picked up <b>{books_checked_out}</b> books this year, and DNF'd <b>{dnfs}</b> of them.",
			Body:     "That's okay—life's too short to read bad books.",
			Layout:   "center",
		},
		{
			Key:      "library_savings",
			Subtitle: "Look at you supporting local libraries.",
			Title:    "You saved <b>${savings}</b> by borrowing from Libby.",
			Body:     "Your wallet says thank you!",
			Layout:   "center",
		},
		{
			Key:      "library_savings_2",
			Subtitle: "All the stories, none of the receipts.",
			Title:    "Buying every book would've cost <b>${savings_finished}</b>—<br>plus another <b>${savings_dnf}</b> for your DNFs.",
			Notes:    "Estimates based on average paperback prices from Barnes & Noble.",
			Layout:   "center",
		},
		{
			Key:      "goodbye",
			Subtitle: "Until next year.",
			Title:    "Same time, same TBR?",
			Body:     "Thanks for reading & listening 💖",
			Layout:   "center",
		},
		{
			Key:      "shareable",
			Subtitle: "Make it internet official.",
			Title:    "Tap to export a shareable post.",
			Layout:   "center",
		},
	}
}
