package contents

import (
	"context"

	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
)

// ContentRepository defines the interface for content persistence
type ContentRepository interface {
	// Create operations
	CreateContent(ctx context.Context, content *models.Content) error
	UpsertContent(ctx context.Context, content *models.Content) error

	// Read operations
	GetContentByID(ctx context.Context, id uint) (*models.Content, error)
	GetContentByNaturalKey(ctx context.Context, tmdbID int64, kind models.MediaKind) (*models.Content, error)
	ListContentsByCategory(ctx context.Context, category string) ([]models.Content, error)

	// Update operations
	UpdateContent(ctx context.Context, content *models.Content) error
}

// DetailFetcher defines the interface for fetching single-title detail
// records from the external provider.
type DetailFetcher interface {
	GetMovieDetail(ctx context.Context, tmdbID int64) (*tmdb.MovieDetail, error)
	GetTVDetail(ctx context.Context, tmdbID int64) (*tmdb.TVDetail, error)
}

// ContentService defines the business logic interface exposed to the
// REST layer and to collaborators (reviews, likes, collections) that
// need a local row to exist before referencing it.
type ContentService interface {
	GetOrCreate(ctx context.Context, tmdbID int64, kind models.MediaKind) (*models.Content, error)
	GetByID(ctx context.Context, id uint) (*models.Content, error)
	ListByCategory(ctx context.Context, category string) ([]models.Content, error)
}
