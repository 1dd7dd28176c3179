package contents

import (
	"log"
	"net/http"
	"strconv"

	"github.com/geekflex/geekflex-api/api/types"
	"github.com/geekflex/geekflex-api/internal/models"
	contentsService "github.com/geekflex/geekflex-api/internal/services/contents"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
	"github.com/gin-gonic/gin"
)

// GetByKey returns one title by provider id, materializing it locally
// on first access
// @Summary      Get a single title
// @Description  Returns one movie or TV title by its TMDB id. If the title is not mirrored yet it is fetched from the provider and stored before responding
// @Tags         contents
// @Produce      json
// @Param        kind path string true "Media kind (movie or tv)"
// @Param        tmdbID path int true "TMDB id"
// @Success      200 {object} types.SingleContentResponse "The title"
// @Failure      400 {object} types.BaseResponse "Invalid kind or id"
// @Failure      404 {object} types.BaseResponse "Title does not exist at the provider"
// @Failure      502 {object} types.BaseResponse "Provider unreachable"
// @Router       /api/v1/contents/{kind}/{tmdbID} [get]
func GetByKey(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := models.ParseMediaKind(c.Param("kind"))
		if !ok {
			c.JSON(http.StatusBadRequest, types.ErrorResponse("Invalid media kind"))
			return
		}

		tmdbID, err := strconv.ParseInt(c.Param("tmdbID"), 10, 64)
		if err != nil || tmdbID <= 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse("Invalid TMDB id"))
			return
		}

		content, err := deps.ContentService.GetOrCreate(c.Request.Context(), tmdbID, kind)
		if err != nil {
			switch {
			case contentsService.IsNotFound(err):
				c.JSON(http.StatusNotFound, types.ErrorResponse("Title not found"))
			case tmdb.IsUnavailable(err):
				log.Printf("[WARN] Provider unavailable fetching %d/%s: %v", tmdbID, kind, err)
				c.JSON(http.StatusBadGateway, types.ErrorResponse("Content provider is unavailable"))
			default:
				log.Printf("[ERROR] Failed to materialize %d/%s: %v", tmdbID, kind, err)
				c.JSON(http.StatusInternalServerError, types.ErrorResponse("Failed to fetch title"))
			}
			return
		}

		dto := types.ContentFromModel(content)
		c.JSON(http.StatusOK, types.SingleContentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Content:      &dto,
		})
	}
}
