package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geekflex/geekflex-api/api/types"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearchClient struct {
	movies    *tmdb.ListingPage
	tv        *tmdb.TVListingPage
	err       error
	lastQuery string
	lastPage  int
}

func (f *fakeSearchClient) SearchMovies(ctx context.Context, query string, page int) (*tmdb.ListingPage, error) {
	f.lastQuery = query
	f.lastPage = page
	if f.err != nil {
		return nil, f.err
	}
	return f.movies, nil
}

func (f *fakeSearchClient) SearchTV(ctx context.Context, query string, page int) (*tmdb.TVListingPage, error) {
	f.lastQuery = query
	f.lastPage = page
	if f.err != nil {
		return nil, f.err
	}
	return f.tv, nil
}

func setupRouter(client *fakeSearchClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	deps := &types.Dependencies{SearchClient: client}
	RegisterRoutes(engine.Group("/api/v1/search"), deps)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	engine.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetMovies(t *testing.T) {
	client := &fakeSearchClient{movies: &tmdb.ListingPage{
		Page: 1,
		Results: []tmdb.MovieSummary{
			{ID: 603, Title: "The Matrix", PosterPath: "/m.jpg", Popularity: 85},
		},
		TotalResults: 1,
	}}
	engine := setupRouter(client)

	w, body := doRequest(t, engine, "/api/v1/search/movies?query=matrix")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "matrix", client.lastQuery)
	assert.Equal(t, 1, client.lastPage)
	assert.Equal(t, "matrix", body["query"])
	assert.Equal(t, float64(1), body["count"])

	results := body["results"].([]interface{})
	first := results[0].(map[string]interface{})
	assert.Equal(t, "The Matrix", first["title"])
	assert.Equal(t, "MOVIE", first["media_kind"])
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/m.jpg", first["poster_url"])
}

func TestGetMovies_MissingQuery(t *testing.T) {
	engine := setupRouter(&fakeSearchClient{})

	w, body := doRequest(t, engine, "/api/v1/search/movies")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", body["status"])
}

func TestGetMovies_PageParam(t *testing.T) {
	client := &fakeSearchClient{movies: &tmdb.ListingPage{Page: 3}}
	engine := setupRouter(client)

	w, _ := doRequest(t, engine, "/api/v1/search/movies?query=dune&page=3")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, client.lastPage)

	// Bad page falls back to 1
	_, _ = doRequest(t, engine, "/api/v1/search/movies?query=dune&page=-2")
	assert.Equal(t, 1, client.lastPage)
}

func TestGetMovies_ProviderUnavailable(t *testing.T) {
	client := &fakeSearchClient{err: tmdb.ErrProviderUnavailable}
	engine := setupRouter(client)

	w, _ := doRequest(t, engine, "/api/v1/search/movies?query=matrix")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetTV(t *testing.T) {
	client := &fakeSearchClient{tv: &tmdb.TVListingPage{
		Page: 1,
		Results: []tmdb.TVSummary{
			{ID: 1396, Name: "Breaking Bad", FirstAirDate: "2008-01-20"},
		},
		TotalResults: 1,
	}}
	engine := setupRouter(client)

	w, body := doRequest(t, engine, "/api/v1/search/tv?query=breaking+bad")

	assert.Equal(t, http.StatusOK, w.Code)
	results := body["results"].([]interface{})
	first := results[0].(map[string]interface{})
	assert.Equal(t, "Breaking Bad", first["title"])
	assert.Equal(t, "TV", first["media_kind"])
	assert.Equal(t, "2008-01-20", first["release_date"])
}
