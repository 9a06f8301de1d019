package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brasilnasteam/backend/internal/filters"
)

// SearchGames godoc
// @Summary      Search games
// @Description  Paginated, sorted game list with current snapshot values and related names.
// @Description  Accepts every chart filter plus the parameters below.
// @Tags         games
// @Produce      json
// @Param        searchString   query  string   false  "Case-insensitive name substring"
// @Param        sortBy         query  string   false  "Sort dimension"  Enums(Data de Lançamento, Nome, Preço, Seguidores, Análises Recebidas, Percentual de Análises Positivas)
// @Param        sortDirection  query  string   false  "Sort direction"  Enums(Crescente, Decrescente)
// @Param        page           query  integer  false  "Zero-based page, at most 1000000"
// @Param        perPage        query  integer  false  "Page size, default 30"
// @Success      200  {object}  stats.SearchResult
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /search [get]
func (h *Handler) SearchGames(c *gin.Context) {
	s, err := filters.ParseSearch(c.Request.URL.Query())
	if err != nil {
		h.parseError(c, err)
		return
	}

	result, err := h.stats.Search(c.Request.Context(), s)
	if err != nil {
		h.internalError(c, "search_failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetTopGames godoc
// @Summary      Landing page game lists
// @Description  Five most reviewed releases of the last six months, five latest releases and five most followed upcoming games.
// @Tags         games
// @Produce      json
// @Success      200  {object}  stats.TopGames
// @Failure      500  {object}  ErrorResponse
// @Router       /top-games [get]
func (h *Handler) GetTopGames(c *gin.Context) {
	top, err := h.stats.TopGames(c.Request.Context())
	if err != nil {
		h.internalError(c, "top_games_failed", err)
		return
	}
	c.JSON(http.StatusOK, top)
}
