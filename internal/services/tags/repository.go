package tags

import (
	"context"
	"fmt"
	"time"

	"github.com/geekflex/geekflex-api/internal/models"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements TagRepository interface
var _ TagRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ReplaceSnapshot deletes a category's existing tags and inserts the
// new set in a single transaction. Tag rows use hard deletes, so the
// (content_id, category) unique index never collides with a previous
// snapshot's leftovers.
func (r *Repository) ReplaceSnapshot(ctx context.Context, category, region string, contentIDs []uint) error {
	snapshotAt := time.Now().UTC()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category = ?", category).
			Delete(&models.CategoryTag{}).Error; err != nil {
			return fmt.Errorf("clearing tags for category %s: %w", category, err)
		}

		if len(contentIDs) == 0 {
			return nil
		}

		rows := make([]models.CategoryTag, 0, len(contentIDs))
		for _, id := range contentIDs {
			rows = append(rows, models.CategoryTag{
				ContentID:  id,
				Category:   category,
				Region:     region,
				SnapshotAt: snapshotAt,
			})
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("inserting %d tags for category %s: %w", len(rows), category, err)
		}
		return nil
	})
}

func (r *Repository) ListByCategory(ctx context.Context, category string) ([]models.CategoryTag, error) {
	var tags []models.CategoryTag
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("listing tags for category %s: %w", category, err)
	}
	return tags, nil
}

func (r *Repository) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CategoryTag{}).
		Where("category = ?", category).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting tags for category %s: %w", category, err)
	}
	return count, nil
}
