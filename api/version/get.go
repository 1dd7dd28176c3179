package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "GeekFlex API",
			"version":     "1.0.0",
			"description": "Movie and TV catalog backed by a local TMDB mirror",
			"status":      "running",
		})
	}
}
