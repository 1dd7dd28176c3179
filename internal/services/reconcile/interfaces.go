package reconcile

import (
	"context"

	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
)

// ListingFetcher fetches one page of a provider listing endpoint.
type ListingFetcher interface {
	GetCategoryPage(ctx context.Context, listingPath string, page int) (*tmdb.ListingPage, error)
}

// ContentUpserter persists one content row, inserting or refreshing it.
type ContentUpserter interface {
	UpsertContent(ctx context.Context, content *models.Content) error
}

// TagReplacer swaps a category's tag snapshot atomically.
type TagReplacer interface {
	ReplaceSnapshot(ctx context.Context, category, region string, contentIDs []uint) error
}

// ReconcileService drives periodic category refreshes.
type ReconcileService interface {
	ReconcileCategory(ctx context.Context, category Category) error
	ReconcileAll(ctx context.Context) error
}
