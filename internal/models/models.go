package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// MediaKind distinguishes the TMDB namespace a content row came from.
// Movie and TV ids overlap numerically, so the kind is part of the
// natural key.
type MediaKind string

const (
	MediaKindMovie MediaKind = "MOVIE"
	MediaKindTV    MediaKind = "TV"
)

// ParseMediaKind converts a path/query segment into a MediaKind.
func ParseMediaKind(s string) (MediaKind, bool) {
	switch strings.ToUpper(s) {
	case "MOVIE":
		return MediaKindMovie, true
	case "TV":
		return MediaKindTV, true
	}
	return "", false
}

// Content is a locally cached TMDB title. Rows are created on first
// reference (bulk import or on-demand materialization), updated in place
// on every reconciliation pass, and never deleted here.
type Content struct {
	gorm.Model
	TmdbID    int64     `json:"tmdb_id" gorm:"not null;uniqueIndex:idx_contents_tmdb_kind"`
	MediaKind MediaKind `json:"media_kind" gorm:"not null;size:20;uniqueIndex:idx_contents_tmdb_kind"`

	Title            string     `json:"title" gorm:"not null;size:200"`
	OriginalTitle    string     `json:"original_title" gorm:"size:200"`
	OriginalLanguage string     `json:"original_language" gorm:"size:10"`
	Overview         string     `json:"overview" gorm:"type:text"`
	ReleaseDate      *time.Time `json:"release_date"`
	EndDate          *time.Time `json:"end_date"` // TV only: last air date

	PosterURL   string  `json:"poster_url"`
	BackdropURL string  `json:"backdrop_url"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`

	Genre         string `json:"genre" gorm:"size:100"` // comma-joined genre names
	OriginCountry string `json:"origin_country" gorm:"size:50"`

	Tags []CategoryTag `json:"tags,omitempty" gorm:"foreignKey:ContentID"`
}

// CategoryTag records membership of one content row in one named ranked
// listing (NOW_PLAYING, POPULAR, ...). The whole set for a category is
// replaced wholesale on each reconciliation pass, so the table uses hard
// deletes instead of gorm.Model's soft delete: a soft-deleted row would
// keep occupying the (content_id, category) unique index.
type CategoryTag struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	ContentID  uint      `json:"content_id" gorm:"not null;uniqueIndex:idx_tags_content_category"`
	Category   string    `json:"category" gorm:"not null;size:30;uniqueIndex:idx_tags_content_category"`
	Region     string    `json:"region" gorm:"size:10"`
	SnapshotAt time.Time `json:"snapshot_at"`

	Content Content `json:"content,omitempty" gorm:"foreignKey:ContentID"`
}

const (
	tmdbImageBaseURL = "https://image.tmdb.org/t/p"
	tmdbPosterSize   = "w500"
	tmdbBackdropSize = "w1280"
)

// FullPosterURL expands a relative TMDB poster path into a full image
// URL. Absolute URLs are returned as-is.
func (c *Content) FullPosterURL() string {
	return expandImageURL(c.PosterURL, tmdbPosterSize)
}

// FullBackdropURL expands a relative TMDB backdrop path into a full
// image URL. Absolute URLs are returned as-is.
func (c *Content) FullBackdropURL() string {
	return expandImageURL(c.BackdropURL, tmdbBackdropSize)
}

// PosterImageURL expands a bare poster path without a Content row,
// for provider records that are never persisted.
func PosterImageURL(path string) string {
	return expandImageURL(path, tmdbPosterSize)
}

// BackdropImageURL expands a bare backdrop path without a Content row.
func BackdropImageURL(path string) string {
	return expandImageURL(path, tmdbBackdropSize)
}

func expandImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	return tmdbImageBaseURL + "/" + size + path
}
