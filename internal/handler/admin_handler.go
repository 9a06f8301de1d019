package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"brasilnasteam/backend/internal/auth"
)

type FlushCacheResponse struct {
	Deleted int `json:"deleted"`
}

// FlushCache godoc
// @Summary      Flush cached responses
// @Description  Drops every cached chart and search response. Called by the ingestion pipeline after a run.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  FlushCacheResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/cache [delete]
func (h *Handler) FlushCache(c *gin.Context) {
	deleted, err := h.stats.FlushCache(c.Request.Context())
	if err != nil {
		h.internalError(c, "cache_flush_failed", err)
		return
	}
	h.logger.InfoContext(c.Request.Context(), "cache_flush_requested",
		slog.String("subject", c.GetString(auth.SubjectKey)), slog.Int("deleted", deleted))
	c.JSON(http.StatusOK, FlushCacheResponse{Deleted: deleted})
}
