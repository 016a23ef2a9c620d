package report

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"libbywrapped/pkg/models"
	"libbywrapped/pkg/utils"
)

// Cache memoizes the computed report for the lifetime of the process,
// keyed by the identity (size + mtime) of both source files. The pipeline
// only reruns when an export actually changes on disk.
type Cache struct {
	mu       sync.Mutex
	key      string
	report   models.Report
	reportID string
}

// Get returns the cached report and its ID, recomputing first if either
// source file changed since the last computation. The ID is fresh per
// computation and identifies the report on the shareable slide.
func (c *Cache) Get(cfg utils.Config) (models.Report, string) {
	key := sourceKey(cfg.ReadsPath) + ";" + sourceKey(cfg.LoansPath)

	c.mu.Lock()
	defer c.mu.Unlock()

	if key == c.key && c.reportID != "" {
		return c.report, c.reportID
	}

	c.report = Build(cfg)
	// Persisted fixes may have rewritten the reads export just now; key on
	// the post-build state so the write itself does not bust the cache.
	c.key = sourceKey(cfg.ReadsPath) + ";" + sourceKey(cfg.LoansPath)
	c.reportID = uuid.NewString()
	return c.report, c.reportID
}

func sourceKey(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return path + "|absent"
	}
	return fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
}
