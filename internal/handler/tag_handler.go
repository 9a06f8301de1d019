package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTagsList godoc
// @Summary      List tag names
// @Description  Every known tag name, alphabetically.
// @Tags         games
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  ErrorResponse
// @Router       /tags-list [get]
func (h *Handler) GetTagsList(c *gin.Context) {
	names, err := h.stats.TagNames(c.Request.Context())
	if err != nil {
		h.internalError(c, "tags_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, names)
}
