package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brasilnasteam/backend/internal/filters"
	"brasilnasteam/backend/internal/query"
)

func (h *Handler) chart(c *gin.Context, chart query.Chart) {
	f, err := filters.ParseFilters(c.Request.URL.Query())
	if err != nil {
		h.parseError(c, err)
		return
	}

	points, err := h.stats.Chart(c.Request.Context(), chart, f)
	if err != nil {
		h.internalError(c, "chart_failed", err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetGameReleases godoc
// @Summary      Games per release year
// @Description  Counts released games per release year and aggregates the selected metric.
// @Tags         charts
// @Produce      json
// @Param        metric              query  string   false  "Metric name, see /metrics"
// @Param        minDate             query  string   false  "RFC 3339 datetime"
// @Param        maxDate             query  string   false  "RFC 3339 datetime"
// @Param        includeUnreleased   query  boolean  false  "Default true"
// @Param        minPrice            query  number   false  "Centavos"
// @Param        maxPrice            query  number   false  "Centavos"
// @Param        includeFree         query  boolean  false  "Default true"
// @Param        minFollowers        query  integer  false  "Lower follower bound"
// @Param        maxFollowers        query  integer  false  "Upper follower bound"
// @Param        minTotalReviews     query  integer  false  "Lower review count bound"
// @Param        maxTotalReviews     query  integer  false  "Upper review count bound"
// @Param        minPositiveReviews  query  number   false  "0..1"
// @Param        maxPositiveReviews  query  number   false  "0..1"
// @Param        genres              query  string   false  "Comma separated"
// @Param        tags                query  string   false  "Comma separated"
// @Success      200  {array}   stats.ChartPoint
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /game-releases [get]
func (h *Handler) GetGameReleases(c *gin.Context) { h.chart(c, query.ChartReleases) }

// GetGameGenres godoc
// @Summary      Games per genre
// @Description  Counts games per curated genre. Accepts the same filters as /game-releases.
// @Tags         charts
// @Produce      json
// @Param        metric  query  string  false  "Metric name"
// @Param        genres  query  string  false  "Comma separated"
// @Param        tags    query  string  false  "Comma separated"
// @Success      200  {array}   stats.ChartPoint
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /game-genres [get]
func (h *Handler) GetGameGenres(c *gin.Context) { h.chart(c, query.ChartGenres) }

// GetGameTags godoc
// @Summary      Games per tag
// @Description  The twelve tags with the most games, genre names excluded. Accepts the same filters as /game-releases.
// @Tags         charts
// @Produce      json
// @Param        metric  query  string  false  "Metric name"
// @Success      200  {array}   stats.ChartPoint
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /game-tags [get]
func (h *Handler) GetGameTags(c *gin.Context) { h.chart(c, query.ChartTags) }

// GetGameLanguages godoc
// @Summary      Games per language
// @Description  The twelve languages with the most games. Accepts the same filters as /game-releases.
// @Tags         charts
// @Produce      json
// @Param        metric  query  string  false  "Metric name"
// @Success      200  {array}   stats.ChartPoint
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /game-languages [get]
func (h *Handler) GetGameLanguages(c *gin.Context) { h.chart(c, query.ChartLanguages) }

// GetGamePrices godoc
// @Summary      Games per price range
// @Description  Released games per price bucket, free games first. Accepts the same filters as /game-releases.
// @Tags         charts
// @Produce      json
// @Param        metric  query  string  false  "Metric name"
// @Success      200  {array}   stats.ChartPoint
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /game-prices [get]
func (h *Handler) GetGamePrices(c *gin.Context) { h.chart(c, query.ChartPrices) }

// GetMetrics godoc
// @Summary      Selectable chart metrics
// @Description  Metric names in display order; the first one is the default.
// @Tags         charts
// @Produce      json
// @Success      200  {array}  string
// @Router       /metrics [get]
func (h *Handler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats.MetricNames())
}
