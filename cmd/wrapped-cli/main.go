package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"libbywrapped/internal/report"
	"libbywrapped/pkg/utils"
)

func main() {
	cfg := utils.LoadConfig()

	var (
		readsIn   = flag.String("reads", cfg.ReadsPath, "path to the reads export CSV")
		loansIn   = flag.String("loans", cfg.LoansPath, "path to the library timeline CSV")
		overrides = flag.String("overrides", cfg.OverridesPath, "path to the finish-time overrides YAML")
		year      = flag.Int("year", cfg.Year, "target year")
		tz        = flag.String("tz", cfg.Timezone, "local timezone for timeline timestamps")
		persist   = flag.Bool("persist", cfg.PersistFixes, "write corrected reads CSV back to disk")
		asJSON    = flag.Bool("json", false, "print the report as JSON")
	)
	flag.Parse()

	cfg.ReadsPath = *readsIn
	cfg.LoansPath = *loansIn
	cfg.OverridesPath = *overrides
	cfg.Year = *year
	cfg.Timezone = *tz
	cfg.PersistFixes = *persist

	rep := report.Build(cfg)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			log.Fatalf("encode report: %v", err)
		}
		return
	}

	fmt.Printf("Libby Wrapped %d\n", rep.Year)
	fmt.Printf("  finished:        %d books + %d novellas (%d total, top %d%%)\n",
		rep.TotalBooks, rep.NovellaCount, rep.TotalFinished, rep.Percentile)
	fmt.Printf("  checked out:     %d titles, %d DNFs\n", rep.BooksCheckedOut, rep.DNFs)
	fmt.Printf("  listening:       %.2f hours (biggest month %s, %.1f h)\n",
		rep.AudiobookHours, orDash(rep.BiggestMonth), rep.BiggestMonthHours)
	fmt.Printf("  fastest read:    %s in %.1f hours\n", orDash(rep.FastestTitle), rep.FastestHours)
	fmt.Printf("  top author:      %s (%d books, %.1f h)\n", orDash(rep.TopAuthor), rep.TopAuthorBooks, rep.TopAuthorHours)
	fmt.Printf("  genres:          %d distinct, mostly %s\n", rep.GenresCount, orDash(rep.TopGenre))
	fmt.Printf("  savings:         $%.2f finished + $%.2f DNF = $%.2f\n",
		rep.SavingsFinished, rep.SavingsDNF, rep.SavingsCombined)
	if len(rep.FastestTop3) > 0 {
		fmt.Println("  fastest top 3:")
		for i, b := range rep.FastestTop3 {
			fmt.Printf("    %d. %s by %s — %.1f hrs\n", i+1, b.Title, b.Author, b.HoursToFinish)
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
