package search

import (
	"github.com/geekflex/geekflex-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers search routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/search/movies (router already includes /search prefix)
	router.GET("/movies", GetMovies(deps))
	router.GET("/tv", GetTV(deps))
}
