package search

import (
	"log"
	"net/http"
	"strconv"

	"github.com/geekflex/geekflex-api/api/types"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
	"github.com/gin-gonic/gin"
)

// GetMovies handles movie search requests
// @Summary      Search movies
// @Description  Searches the provider for movies, re-ranked so exact title matches come first, then prefix matches, then by popularity. Results are not persisted
// @Tags         search
// @Produce      json
// @Param        query query string true "Search query"
// @Param        page query int false "Result page (default 1)"
// @Success      200 {object} types.SearchResponse "Movie search results"
// @Failure      400 {object} types.BaseResponse "Missing query"
// @Failure      502 {object} types.BaseResponse "Provider unreachable"
// @Router       /api/v1/search/movies [get]
func GetMovies(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, page, ok := parseSearchParams(c)
		if !ok {
			return
		}

		results, err := deps.SearchClient.SearchMovies(c.Request.Context(), query, page)
		if err != nil {
			respondSearchError(c, query, err)
			return
		}

		hits := make([]types.SearchResult, 0, len(results.Results))
		for _, r := range results.Results {
			hits = append(hits, types.SearchResultFromMovie(r))
		}

		c.JSON(http.StatusOK, types.SearchResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Results:      hits,
			Query:        query,
			Count:        len(hits),
			Total:        results.TotalResults,
			Page:         results.Page,
		})
	}
}

// GetTV handles TV search requests
// @Summary      Search TV series
// @Description  Searches the provider for TV series with the same re-ranking as movie search. Results are not persisted
// @Tags         search
// @Produce      json
// @Param        query query string true "Search query"
// @Param        page query int false "Result page (default 1)"
// @Success      200 {object} types.SearchResponse "TV search results"
// @Failure      400 {object} types.BaseResponse "Missing query"
// @Failure      502 {object} types.BaseResponse "Provider unreachable"
// @Router       /api/v1/search/tv [get]
func GetTV(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, page, ok := parseSearchParams(c)
		if !ok {
			return
		}

		results, err := deps.SearchClient.SearchTV(c.Request.Context(), query, page)
		if err != nil {
			respondSearchError(c, query, err)
			return
		}

		hits := make([]types.SearchResult, 0, len(results.Results))
		for _, r := range results.Results {
			hits = append(hits, types.SearchResultFromTV(r))
		}

		c.JSON(http.StatusOK, types.SearchResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Results:      hits,
			Query:        query,
			Count:        len(hits),
			Total:        results.TotalResults,
			Page:         results.Page,
		})
	}
}

func parseSearchParams(c *gin.Context) (string, int, bool) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse("Search query is required"))
		return "", 0, false
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return query, page, true
}

func respondSearchError(c *gin.Context, query string, err error) {
	if tmdb.IsUnavailable(err) {
		log.Printf("[WARN] Provider unavailable for search %q: %v", query, err)
		c.JSON(http.StatusBadGateway, types.ErrorResponse("Content provider is unavailable"))
		return
	}
	log.Printf("[ERROR] Search failed for %q: %v", query, err)
	c.JSON(http.StatusInternalServerError, types.ErrorResponse("Failed to search"))
}
