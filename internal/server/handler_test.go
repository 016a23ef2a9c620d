package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libbywrapped/pkg/utils"
)

func testRouter(t *testing.T) (*gin.Engine, utils.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	readsPath := filepath.Join(dir, "reads.csv")
	loansPath := filepath.Join(dir, "loans.csv")
	require.NoError(t, os.WriteFile(readsPath, []byte(
		"Name,Author,Status,Finished,Format,Genre,ab_hours,ab_minutes,Cost\n"+
			"Mate (#2),Ali Hazelwood,Complete,2025-10-08,Audiobook,Romance,10,30,$15.99\n"), 0o644))
	require.NoError(t, os.WriteFile(loansPath, []byte(
		"Title,Timestamp,Activity,Library\n"+
			"Mate,2025-10-01T04:00:00Z,Borrowed,Indianapolis PL\n"), 0o644))

	cfg := utils.Config{
		ReadsPath:     readsPath,
		LoansPath:     loansPath,
		OverridesPath: filepath.Join(dir, "overrides.yaml"), // absent: defaults apply
		Year:          2025,
		Timezone:      "America/Indiana/Indianapolis",
		PersistFixes:  false,
	}

	router := gin.New()
	NewHandler(cfg).RegisterRoutes(router)
	return router, cfg
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router, cfg := testRouter(t)

	w := get(router, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, cfg.ReadsPath, body["reads"])
}

func TestAPIReport(t *testing.T) {
	router, _ := testRouter(t)

	w := get(router, "/api/report")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ReportID string `json:"report_id"`
		Report   struct {
			TotalFinished   int     `json:"total_finished"`
			AudiobookHours  float64 `json:"audiobook_hours"`
			SavingsFinished float64 `json:"savings_finished"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.ReportID)
	assert.Equal(t, 1, body.Report.TotalFinished)
	assert.Equal(t, 10.5, body.Report.AudiobookHours)
	assert.Equal(t, 15.99, body.Report.SavingsFinished)
}

func TestReportCaching(t *testing.T) {
	router, cfg := testRouter(t)

	first := get(router, "/api/report")
	second := get(router, "/api/report")

	var a, b struct {
		ReportID string `json:"report_id"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.Equal(t, a.ReportID, b.ReportID, "unchanged inputs reuse the cached report")

	// Touching a source file invalidates the cache.
	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(cfg.ReadsPath, later, later))

	third := get(router, "/api/report")
	var c struct {
		ReportID string `json:"report_id"`
	}
	require.NoError(t, json.Unmarshal(third.Body.Bytes(), &c))
	assert.NotEqual(t, a.ReportID, c.ReportID, "changed input must recompute")
}

func TestAPISlides(t *testing.T) {
	router, _ := testRouter(t)

	w := get(router, "/api/slides")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Slides []struct {
			Key   string `json:"key"`
			Title string `json:"title"`
		} `json:"slides"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Slides)
	assert.Equal(t, "intro", body.Slides[0].Key)

	for _, s := range body.Slides {
		assert.NotContains(t, s.Title, "{", "slide %s has unresolved placeholders", s.Key)
	}
}

func TestIndexSlideNavigation(t *testing.T) {
	router, _ := testRouter(t)

	t.Run("default is the intro slide", func(t *testing.T) {
		w := get(router, "/")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Are you ready to see the damage?")
	})

	t.Run("slide parameter selects a slide", func(t *testing.T) {
		w := get(router, "/?slide=1")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "books this year")
	})

	t.Run("out-of-range indexes clamp", func(t *testing.T) {
		for _, q := range []string{"/?slide=999", "/?slide=-4", "/?slide=bogus"} {
			w := get(router, q)
			assert.Equal(t, http.StatusOK, w.Code, "request %s", q)
		}
	})
}
