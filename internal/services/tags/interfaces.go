package tags

import (
	"context"

	"github.com/geekflex/geekflex-api/internal/models"
)

// TagRepository defines the interface for category tag persistence
type TagRepository interface {
	// ReplaceSnapshot atomically swaps a category's tag set for a new
	// one. Readers see either the previous snapshot or the new one,
	// never a partial mix.
	ReplaceSnapshot(ctx context.Context, category, region string, contentIDs []uint) error

	// Read operations
	ListByCategory(ctx context.Context, category string) ([]models.CategoryTag, error)
	CountByCategory(ctx context.Context, category string) (int64, error)
}
