package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"brasilnasteam/backend/internal/filters"
	"brasilnasteam/backend/internal/query"
	"brasilnasteam/backend/internal/stats"
)

// region --- DTOs ---

// ErrorResponse is returned for server errors and rejected credentials.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// ValidationError describes rejected query parameters.
type ValidationError struct {
	Message string          `json:"message" example:"invalid query parameters"`
	Issues  []filters.Issue `json:"issues"`
}

// ValidationErrorResponse is returned with status 400.
type ValidationErrorResponse struct {
	Error ValidationError `json:"error"`
}

// endregion

// StatsService answers the dashboard queries.
type StatsService interface {
	Chart(ctx context.Context, chart query.Chart, f filters.Filters) ([]stats.ChartPoint, error)
	Search(ctx context.Context, s filters.Search) (stats.SearchResult, error)
	TopGames(ctx context.Context) (stats.TopGames, error)
	TagNames(ctx context.Context) ([]string, error)
	MetricNames() []string
	FlushCache(ctx context.Context) (int, error)
}

type Handler struct {
	stats  StatsService
	logger *slog.Logger
}

func New(s StatsService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{stats: s, logger: logger}
}

// parseError answers 400 for parser errors and 500 for anything else.
func (h *Handler) parseError(c *gin.Context, err error) {
	var verr *filters.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: ValidationError{
			Message: "invalid query parameters",
			Issues:  verr.Issues,
		}})
		return
	}
	h.internalError(c, "parse_failed", err)
}

func (h *Handler) internalError(c *gin.Context, event string, err error) {
	_ = c.Error(err)
	if errors.Is(err, context.Canceled) {
		// client went away
		c.AbortWithStatus(499)
		return
	}
	h.logger.ErrorContext(c.Request.Context(), event,
		slog.String("path", c.Request.URL.Path), slog.Any("err", err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
