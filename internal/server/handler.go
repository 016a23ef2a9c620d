package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"libbywrapped/internal/report"
	"libbywrapped/internal/slides"
	"libbywrapped/pkg/utils"
)

type Handler struct {
	Cfg   utils.Config
	Cache *report.Cache
	Deck  []slides.Slide
}

func NewHandler(cfg utils.Config) *Handler {
	return &Handler{
		Cfg:   cfg,
		Cache: &report.Cache{},
		Deck:  slides.Deck(),
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)
	r.GET("/api/report", h.apiReport)
	r.GET("/api/slides", h.apiSlides)
	r.GET("/", h.index)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"reads":  h.Cfg.ReadsPath,
		"loans":  h.Cfg.LoansPath,
		"year":   h.Cfg.Year,
	})
}

func (h *Handler) apiReport(c *gin.Context) {
	rep, id := h.Cache.Get(h.Cfg)
	c.JSON(http.StatusOK, gin.H{
		"report_id": id,
		"report":    rep,
	})
}

func (h *Handler) apiSlides(c *gin.Context) {
	rep, id := h.Cache.Get(h.Cfg)
	ctx := slides.Context(rep)
	c.JSON(http.StatusOK, gin.H{
		"report_id": id,
		"slides":    slides.RenderDeck(h.Deck, ctx),
	})
}

// index serves the slide view. Navigation state lives entirely in the
// ?slide= query parameter so every slide is linkable.
func (h *Handler) index(c *gin.Context) {
	rep, _ := h.Cache.Get(h.Cfg)
	ctx := slides.Context(rep)

	idx := parseSlideIndex(c.Query("slide"), len(h.Deck))
	rendered := slides.RenderDeck(h.Deck, ctx)

	html, err := renderPage(rendered, idx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func parseSlideIndex(raw string, total int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	if n > total-1 {
		return total - 1
	}
	return n
}
