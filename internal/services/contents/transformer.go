package contents

import (
	"strings"
	"time"

	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
)

// Transformer converts provider-shaped records into local content rows.
type Transformer struct{}

// NewTransformer creates a new transformer instance
func NewTransformer() *Transformer {
	return &Transformer{}
}

// FromMovieSummary builds a content row from one listing entry. Listing
// pages do not carry production countries, so OriginCountry stays empty
// until a detail fetch fills it in.
func (t *Transformer) FromMovieSummary(summary tmdb.MovieSummary) *models.Content {
	return &models.Content{
		TmdbID:           summary.ID,
		MediaKind:        models.MediaKindMovie,
		Title:            summary.Title,
		OriginalTitle:    summary.OriginalTitle,
		OriginalLanguage: summary.OriginalLanguage,
		Overview:         summary.Overview,
		ReleaseDate:      parseDate(summary.ReleaseDate),
		PosterURL:        summary.PosterPath,
		BackdropURL:      summary.BackdropPath,
		Popularity:       summary.Popularity,
		VoteAverage:      summary.VoteAverage,
		VoteCount:        summary.VoteCount,
		Genre:            GenreLabel(summary.GenreIDs),
	}
}

// FromMovieDetail builds a content row from a movie detail record.
func (t *Transformer) FromMovieDetail(detail *tmdb.MovieDetail) *models.Content {
	return &models.Content{
		TmdbID:           detail.ID,
		MediaKind:        models.MediaKindMovie,
		Title:            detail.Title,
		OriginalTitle:    detail.OriginalTitle,
		OriginalLanguage: detail.OriginalLanguage,
		Overview:         detail.Overview,
		ReleaseDate:      parseDate(detail.ReleaseDate),
		PosterURL:        detail.PosterPath,
		BackdropURL:      detail.BackdropPath,
		Popularity:       detail.Popularity,
		VoteAverage:      detail.VoteAverage,
		VoteCount:        detail.VoteCount,
		Genre:            joinGenres(detail.Genres),
		OriginCountry:    strings.Join(detail.OriginCountry, ","),
	}
}

// FromTVDetail builds a content row from a TV detail record. First and
// last air dates map to the release/end date columns.
func (t *Transformer) FromTVDetail(detail *tmdb.TVDetail) *models.Content {
	return &models.Content{
		TmdbID:           detail.ID,
		MediaKind:        models.MediaKindTV,
		Title:            detail.Name,
		OriginalTitle:    detail.OriginalName,
		OriginalLanguage: detail.OriginalLanguage,
		Overview:         detail.Overview,
		ReleaseDate:      parseDate(detail.FirstAirDate),
		EndDate:          parseDate(detail.LastAirDate),
		PosterURL:        detail.PosterPath,
		BackdropURL:      detail.BackdropPath,
		Popularity:       detail.Popularity,
		VoteAverage:      detail.VoteAverage,
		VoteCount:        detail.VoteCount,
		Genre:            joinGenres(detail.Genres),
		OriginCountry:    strings.Join(detail.OriginCountry, ","),
	}
}

// CopyDescriptive overwrites dst's descriptive attributes with src's,
// leaving identity fields (local id, natural key) and CreatedAt alone.
func CopyDescriptive(dst, src *models.Content) {
	dst.Title = src.Title
	dst.OriginalTitle = src.OriginalTitle
	dst.OriginalLanguage = src.OriginalLanguage
	dst.Overview = src.Overview
	dst.ReleaseDate = src.ReleaseDate
	dst.EndDate = src.EndDate
	dst.PosterURL = src.PosterURL
	dst.BackdropURL = src.BackdropURL
	dst.Popularity = src.Popularity
	dst.VoteAverage = src.VoteAverage
	dst.VoteCount = src.VoteCount
	dst.Genre = src.Genre
	dst.OriginCountry = src.OriginCountry
}

func joinGenres(genres []tmdb.Genre) string {
	if len(genres) == 0 {
		return ""
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		if g.Name != "" {
			names = append(names, g.Name)
		}
	}
	return strings.Join(names, ",")
}

// parseDate parses TMDB's YYYY-MM-DD date strings, returning nil for
// empty or malformed values (TMDB omits dates for unreleased titles).
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
