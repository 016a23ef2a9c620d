package slides

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libbywrapped/pkg/models"
)

func TestRender(t *testing.T) {
	ctx := map[string]string{"full_books": "42", "top_genre": "Fantasy"}

	t.Run("substitutes known placeholders", func(t *testing.T) {
		got := Render("You finished <b>{full_books}</b> books.", ctx)
		assert.Equal(t, "You finished <b>42</b> books.", got)
	})

	t.Run("unknown placeholders stay verbatim", func(t *testing.T) {
		got := Render("Mostly {top_genre}, never {mystery_metric}.", ctx)
		assert.Equal(t, "Mostly Fantasy, never {mystery_metric}.", got)
	})

	t.Run("no placeholders is a passthrough", func(t *testing.T) {
		assert.Equal(t, "plain text", Render("plain text", ctx))
	})
}

func TestFormatFastestTop3(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, "No completed reads found this year.", FormatFastestTop3(nil))
	})

	t.Run("ranked lines", func(t *testing.T) {
		got := FormatFastestTop3([]models.FastRead{
			{Title: "Mate", Author: "Ali Hazelwood", HoursToFinish: 167.4},
			{Title: "Iron Flame", Author: "Rebecca Yarros", HoursToFinish: 210.0},
		})
		assert.Equal(t, "1. Mate by Ali Hazelwood — 167.4 hrs<br>2. Iron Flame by Rebecca Yarros — 210.0 hrs", got)
	})
}

func TestContext(t *testing.T) {
	rep := models.Report{
		Year:              2025,
		TotalBooks:        30,
		NovellaCount:      4,
		TotalFinished:     34,
		Percentile:        92,
		BooksCheckedOut:   41,
		DNFs:              7,
		AudiobookHours:    312.25,
		BiggestMonth:      "October",
		BiggestMonthHours: 51.3,
		FastestTitle:      "Mate",
		FastestHours:      167.4,
		FastestDays:       6.98,
		FastestTop3:       []models.FastRead{{Title: "Mate", Author: "Ali Hazelwood", HoursToFinish: 167.4}},
		TopAuthor:         "Ali Hazelwood",
		SavingsFinished:   301.55,
		SavingsDNF:        49.07,
		SavingsCombined:   350.62,
	}

	ctx := Context(rep)

	assert.Equal(t, "30", ctx["full_books"])
	assert.Equal(t, "4", ctx["novellas"])
	assert.Equal(t, "92", ctx["percentile"])
	assert.Equal(t, "312", ctx["listening_hours"])
	assert.Equal(t, "13", ctx["listening_hours_days"])
	assert.Equal(t, "October", ctx["biggest_month"])
	assert.Equal(t, "167.4", ctx["fastest_hours"])
	assert.Equal(t, "350.62", ctx["savings"])
	assert.Contains(t, ctx["fastest_top3_str"], "1. Mate by Ali Hazelwood")

	t.Run("blank strings render as a dash", func(t *testing.T) {
		empty := Context(models.Report{})
		assert.Equal(t, "—", empty["biggest_month"])
		assert.Equal(t, "—", empty["top_author"])
		assert.Equal(t, "—", empty["top_genre"])
		assert.Equal(t, "—", empty["fastest_title"])
	})
}

func TestRenderDeck(t *testing.T) {
	rep := models.Report{TotalBooks: 12, NovellaCount: 3, Percentile: 85}
	rendered := RenderDeck(Deck(), Context(rep))
	require.Equal(t, len(Deck()), len(rendered))

	var finished Rendered
	for _, s := range rendered {
		if s.Key == "finished" {
			finished = s
		}
	}
	require.NotEmpty(t, finished.Key)
	assert.Contains(t, finished.Title, "<b>12</b>")
	assert.Contains(t, finished.Body, "<b>3</b>")
	assert.Contains(t, finished.Body, "<b>85%")

	// Every placeholder in the deck must resolve against a full context:
	// leftover braces mean the slide/report contract drifted.
	for _, s := range rendered {
		for _, text := range []string{s.Subtitle, s.Title, s.Body, s.Notes} {
			assert.False(t, strings.Contains(text, "{"), "unresolved placeholder in slide %s: %q", s.Key, text)
		}
	}
}
