package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/priceguesser/backend/internal/domain"
	"github.com/priceguesser/backend/internal/usecase"
)

// GameService is the usecase surface the handlers need
type GameService interface {
	DailySet(ctx context.Context, day time.Time, country string) (*domain.DailySet, error)
	RandomProduct(ctx context.Context, country string) (*domain.Product, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	game    GameService
	catalog domain.CatalogClient
}

// NewHandler creates a new HTTP handler
func NewHandler(game GameService, catalog domain.CatalogClient) *Handler {
	return &Handler{
		game:    game,
		catalog: catalog,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "priceguesser-backend",
		"version": "1.0.0",
	})
}

// GetDailySet returns the deterministic product set for a day and country.
// date is optional ("2024-3-15" or "2024-03-15"); defaults to today in
// server-local time.
func (h *Handler) GetDailySet(c *gin.Context) {
	country := c.DefaultQuery("country", "us")

	day := time.Now()
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := time.ParseInLocation("2006-1-2", dateParam, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-M-D"})
			return
		}
		day = parsed
	}

	set, err := h.game.DailySet(c.Request.Context(), day, country)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientProducts) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve daily products"})
		return
	}

	c.JSON(http.StatusOK, set)
}

// GetRandomProduct returns one non-deterministic product for the
// free-play variant
func (h *Handler) GetRandomProduct(c *gin.Context) {
	country := c.DefaultQuery("country", "us")

	product, err := h.game.RandomProduct(c.Request.Context(), country)
	if err != nil {
		if errors.Is(err, domain.ErrNoProductFound) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ScoreGuess scores a price guess against the actual price
func (h *Handler) ScoreGuess(c *gin.Context) {
	var req domain.GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guess must be non-negative and actualPrice positive"})
		return
	}

	c.JSON(http.StatusOK, usecase.ScoreGuess(req.Guess, req.ActualPrice))
}

// Share composes the plain-text share summary for a finished day
func (h *Handler) Share(c *gin.Context) {
	var req domain.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress is required"})
		return
	}

	if len(req.Progress.Scores) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress has no scores"})
		return
	}

	origin := req.Origin
	if origin == "" {
		origin = c.GetHeader("Origin")
	}

	c.JSON(http.StatusOK, gin.H{
		"shareText": usecase.ShareText(req.Progress.Date, req.Progress.Scores, origin),
	})
}

// SearchProxy forwards a catalog search and returns the upstream body
// unmodified. Stateless: default term/market substitution and uniform
// error wrapping only, with permissive CORS and short caching.
func (h *Handler) SearchProxy(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		term = usecase.RandomTerm()
	}
	country := c.DefaultQuery("country", "us")
	language := c.DefaultQuery("language", "en")

	c.Header("Access-Control-Allow-Origin", "*")

	body, status, err := h.catalog.SearchRaw(c.Request.Context(), term, country, language)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Mirror the upstream status on failure, never mask it as success
	if status != http.StatusOK {
		c.JSON(status, gin.H{"error": "Failed to fetch from IKEA"})
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "application/json", body)
}
