package report

import (
	"log"

	"libbywrapped/internal/loader"
	"libbywrapped/internal/metrics"
	"libbywrapped/pkg/models"
	"libbywrapped/pkg/utils"
)

// Build runs the whole pipeline once: read the reads export, apply manual
// finish-time fixes, optionally persist them, normalize, and compute the
// yearly report. Every failure along the way degrades instead of aborting;
// the worst case is a mostly-zero report.
func Build(cfg utils.Config) models.Report {
	loc := cfg.Location()

	fixes, err := utils.LoadOverrides(cfg.OverridesPath, loc)
	if err != nil {
		log.Printf("overrides unusable, falling back to defaults: %v", err)
		fixes = utils.DefaultOverrides(loc)
	}

	table, err := loader.ReadCSV(cfg.ReadsPath)
	if err != nil {
		log.Printf("reads export unreadable: %v", err)
		table = loader.Table{}
	}

	if changed := loader.ApplyFixes(&table, fixes, loc); changed && cfg.PersistFixes {
		// Best effort: the in-memory table is already corrected.
		if err := loader.Persist(cfg.ReadsPath, table); err != nil {
			log.Printf("persist corrected export: %v", err)
		}
	}

	reads := loader.Normalize(table, loc)
	return metrics.Compute(reads, cfg.Year, cfg.LoansPath, loc)
}
