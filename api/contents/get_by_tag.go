package contents

import (
	"log"
	"net/http"

	"github.com/geekflex/geekflex-api/api/types"
	"github.com/geekflex/geekflex-api/internal/services/reconcile"
	"github.com/gin-gonic/gin"
)

// GetByTag returns the titles of one mirrored category listing
// @Summary      List titles in a category
// @Description  Returns the locally mirrored titles of one ranked listing (NOW_PLAYING, POPULAR, TOP_RATED, UPCOMING), newest release first
// @Tags         contents
// @Produce      json
// @Param        tag query string true "Category tag name"
// @Success      200 {object} types.ContentsResponse "Titles in the category"
// @Failure      400 {object} types.BaseResponse "Unknown category tag"
// @Failure      500 {object} types.BaseResponse "Internal server error"
// @Router       /api/v1/contents [get]
func GetByTag(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := c.Query("tag")
		if _, ok := reconcile.CategoryByName(tag); !ok {
			c.JSON(http.StatusBadRequest, types.ErrorResponse("Unknown category tag"))
			return
		}

		rows, err := deps.ContentService.ListByCategory(c.Request.Context(), tag)
		if err != nil {
			log.Printf("[ERROR] Failed to list contents for tag %s: %v", tag, err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse("Failed to fetch contents"))
			return
		}

		c.JSON(http.StatusOK, types.ContentsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Contents:     types.ContentsFromModels(rows),
			Tag:          tag,
			Count:        len(rows),
		})
	}
}
