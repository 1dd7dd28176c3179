package types

import (
	"time"

	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
)

// ContentFromModel converts a stored content row into its API shape,
// expanding image paths into full URLs.
func ContentFromModel(m *models.Content) Content {
	return Content{
		ID:               m.ID,
		TmdbID:           m.TmdbID,
		MediaKind:        string(m.MediaKind),
		Title:            m.Title,
		OriginalTitle:    m.OriginalTitle,
		OriginalLanguage: m.OriginalLanguage,
		Overview:         m.Overview,
		ReleaseDate:      formatDate(m.ReleaseDate),
		EndDate:          formatDate(m.EndDate),
		PosterURL:        m.FullPosterURL(),
		BackdropURL:      m.FullBackdropURL(),
		Popularity:       m.Popularity,
		VoteAverage:      m.VoteAverage,
		VoteCount:        m.VoteCount,
		Genre:            m.Genre,
		OriginCountry:    m.OriginCountry,
	}
}

// ContentsFromModels converts a slice of stored rows
func ContentsFromModels(rows []models.Content) []Content {
	out := make([]Content, 0, len(rows))
	for i := range rows {
		out = append(out, ContentFromModel(&rows[i]))
	}
	return out
}

// SearchResultFromMovie converts one provider movie search hit
func SearchResultFromMovie(s tmdb.MovieSummary) SearchResult {
	return SearchResult{
		TmdbID:        s.ID,
		MediaKind:     string(models.MediaKindMovie),
		Title:         s.Title,
		OriginalTitle: s.OriginalTitle,
		Overview:      s.Overview,
		ReleaseDate:   s.ReleaseDate,
		PosterURL:     models.PosterImageURL(s.PosterPath),
		Popularity:    s.Popularity,
		VoteAverage:   s.VoteAverage,
	}
}

// SearchResultFromTV converts one provider TV search hit
func SearchResultFromTV(s tmdb.TVSummary) SearchResult {
	return SearchResult{
		TmdbID:        s.ID,
		MediaKind:     string(models.MediaKindTV),
		Title:         s.Name,
		OriginalTitle: s.OriginalName,
		Overview:      s.Overview,
		ReleaseDate:   s.FirstAirDate,
		PosterURL:     models.PosterImageURL(s.PosterPath),
		Popularity:    s.Popularity,
		VoteAverage:   s.VoteAverage,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
