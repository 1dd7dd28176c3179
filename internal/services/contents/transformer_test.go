package contents

import (
	"testing"
	"time"

	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformer_FromMovieSummary(t *testing.T) {
	transformer := NewTransformer()

	summary := tmdb.MovieSummary{
		ID:            603,
		Title:         "The Matrix",
		OriginalTitle: "The Matrix",
		Overview:      "A hacker learns the truth.",
		ReleaseDate:   "1999-03-31",
		PosterPath:    "/matrix.jpg",
		Popularity:    85.3,
		VoteAverage:   8.2,
		VoteCount:     25000,
		GenreIDs:      []int{28, 878},
	}

	content := transformer.FromMovieSummary(summary)

	assert.Equal(t, int64(603), content.TmdbID)
	assert.Equal(t, models.MediaKindMovie, content.MediaKind)
	assert.Equal(t, "The Matrix", content.Title)
	assert.Equal(t, "Action, Science Fiction", content.Genre)
	require.NotNil(t, content.ReleaseDate)
	assert.Equal(t, 1999, content.ReleaseDate.Year())
	assert.Empty(t, content.OriginCountry, "listing entries carry no origin country")
}

func TestTransformer_FromMovieSummary_MalformedDate(t *testing.T) {
	transformer := NewTransformer()

	content := transformer.FromMovieSummary(tmdb.MovieSummary{ID: 1, Title: "X", ReleaseDate: "soon"})
	assert.Nil(t, content.ReleaseDate)

	content = transformer.FromMovieSummary(tmdb.MovieSummary{ID: 2, Title: "Y", ReleaseDate: ""})
	assert.Nil(t, content.ReleaseDate)
}

func TestTransformer_FromMovieDetail(t *testing.T) {
	transformer := NewTransformer()

	detail := &tmdb.MovieDetail{
		ID:            550,
		Title:         "Fight Club",
		ReleaseDate:   "1999-10-15",
		Genres:        []tmdb.Genre{{ID: 18, Name: "Drama"}, {ID: 53, Name: "Thriller"}},
		OriginCountry: []string{"US", "DE"},
	}

	content := transformer.FromMovieDetail(detail)

	assert.Equal(t, "Drama,Thriller", content.Genre)
	assert.Equal(t, "US,DE", content.OriginCountry)
	assert.Nil(t, content.EndDate)
}

func TestTransformer_FromTVDetail(t *testing.T) {
	transformer := NewTransformer()

	detail := &tmdb.TVDetail{
		ID:           1396,
		Name:         "Breaking Bad",
		OriginalName: "Breaking Bad",
		FirstAirDate: "2008-01-20",
		LastAirDate:  "2013-09-29",
		Genres:       []tmdb.Genre{{ID: 18, Name: "Drama"}},
	}

	content := transformer.FromTVDetail(detail)

	assert.Equal(t, models.MediaKindTV, content.MediaKind)
	assert.Equal(t, "Breaking Bad", content.Title)
	require.NotNil(t, content.ReleaseDate)
	require.NotNil(t, content.EndDate)
	assert.Equal(t, 2008, content.ReleaseDate.Year())
	assert.Equal(t, 2013, content.EndDate.Year())
}

func TestCopyDescriptive_PreservesIdentity(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dst := &models.Content{
		TmdbID:    603,
		MediaKind: models.MediaKindMovie,
		Title:     "Old Title",
		VoteCount: 10,
	}
	dst.ID = 7
	dst.CreatedAt = created

	src := &models.Content{
		TmdbID:    999, // must not leak into dst
		MediaKind: models.MediaKindTV,
		Title:     "New Title",
		VoteCount: 500,
	}

	CopyDescriptive(dst, src)

	assert.Equal(t, uint(7), dst.ID)
	assert.Equal(t, created, dst.CreatedAt)
	assert.Equal(t, int64(603), dst.TmdbID)
	assert.Equal(t, models.MediaKindMovie, dst.MediaKind)
	assert.Equal(t, "New Title", dst.Title)
	assert.Equal(t, 500, dst.VoteCount)
}

func TestGenreLabel(t *testing.T) {
	tests := []struct {
		name     string
		ids      []int
		expected string
	}{
		{name: "known ids", ids: []int{28, 12}, expected: "Action, Adventure"},
		{name: "unknown ids skipped", ids: []int{28, 424242}, expected: "Action"},
		{name: "empty", ids: nil, expected: ""},
		{name: "all unknown", ids: []int{424242}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenreLabel(tt.ids))
		})
	}
}
