package handler

import (
	"github.com/gin-gonic/gin"

	"brasilnasteam/backend/internal/auth"
)

// RegisterRoutes mounts the API under r. Admin routes are only mounted when
// adminSecret is set.
func (h *Handler) RegisterRoutes(r gin.IRouter, adminSecret string) {
	r.GET("/top-games", h.GetTopGames)
	r.GET("/game-releases", h.GetGameReleases)
	r.GET("/game-genres", h.GetGameGenres)
	r.GET("/game-tags", h.GetGameTags)
	r.GET("/game-languages", h.GetGameLanguages)
	r.GET("/game-prices", h.GetGamePrices)
	r.GET("/search", h.SearchGames)
	r.GET("/tags-list", h.GetTagsList)
	r.GET("/metrics", h.GetMetrics)

	if adminSecret != "" {
		admin := r.Group("/admin")
		admin.Use(auth.ServiceTokenMiddleware(adminSecret))
		{
			admin.DELETE("/cache", h.FlushCache)
		}
	}
}
