package contents

import (
	"github.com/geekflex/geekflex-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers content routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/contents?tag=POPULAR (router already includes /contents prefix)
	router.GET("", GetByTag(deps))

	// GET /api/v1/contents/movie/603 and /api/v1/contents/tv/1396
	router.GET("/:kind/:tmdbID", GetByKey(deps))
}
