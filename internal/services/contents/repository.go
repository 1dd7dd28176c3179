package contents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/geekflex/geekflex-api/internal/models"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements ContentRepository interface
var _ ContentRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateContent(ctx context.Context, content *models.Content) error {
	if err := r.db.WithContext(ctx).Create(content).Error; err != nil {
		return classifyWriteError(err, content)
	}
	return nil
}

func (r *Repository) UpdateContent(ctx context.Context, content *models.Content) error {
	result := r.db.WithContext(ctx).Save(content)
	if result.Error != nil {
		return classifyWriteError(result.Error, content)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("content", content.ID)
	}
	return nil
}

func (r *Repository) GetContentByID(ctx context.Context, id uint) (*models.Content, error) {
	var content models.Content
	if err := r.db.WithContext(ctx).First(&content, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("content", id)
		}
		return nil, fmt.Errorf("getting content: %w", err)
	}
	return &content, nil
}

func (r *Repository) GetContentByNaturalKey(ctx context.Context, tmdbID int64, kind models.MediaKind) (*models.Content, error) {
	var content models.Content
	if err := r.db.WithContext(ctx).
		Where("tmdb_id = ? AND media_kind = ?", tmdbID, kind).
		First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("content", fmt.Sprintf("%d/%s", tmdbID, kind))
		}
		return nil, fmt.Errorf("getting content by natural key: %w", err)
	}
	return &content, nil
}

// ListContentsByCategory returns the contents tagged into the most
// recent snapshot of a category, newest release first.
func (r *Repository) ListContentsByCategory(ctx context.Context, category string) ([]models.Content, error) {
	var results []models.Content

	if err := r.db.WithContext(ctx).
		Joins("JOIN category_tags ON category_tags.content_id = contents.id").
		Where("category_tags.category = ?", category).
		Order("contents.release_date DESC").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("listing contents for category %s: %w", category, err)
	}

	return results, nil
}

// UpsertContent inserts or refreshes one content row inside its own
// transaction, so a conflict on one listing entry never rolls back
// progress made on others. On update, identity fields and CreatedAt are
// preserved and only descriptive attributes are overwritten. When a
// concurrent writer wins the insert race, the loser re-reads the
// winner's row and updates it in place instead of retrying the insert.
func (r *Repository) UpsertContent(ctx context.Context, content *models.Content) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Content
		err := tx.Where("tmdb_id = ? AND media_kind = ?", content.TmdbID, content.MediaKind).
			First(&existing).Error

		if err == nil {
			return overwriteExisting(tx, &existing, content)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return classifyWriteError(err, content)
		}

		if err := tx.Create(content).Error; err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return classifyWriteError(err, content)
			}
			// Lost a create-create race. A SQLite constraint failure
			// does not abort the surrounding transaction, so re-read
			// the winner's row here and fold our data into it.
			rerr := tx.Where("tmdb_id = ? AND media_kind = ?", content.TmdbID, content.MediaKind).
				First(&existing).Error
			if rerr != nil {
				// No winning row either: a logic error, not a race.
				// Propagate the original failure.
				return classifyWriteError(err, content)
			}
			return overwriteExisting(tx, &existing, content)
		}

		return nil
	})
}

// overwriteExisting refreshes existing's descriptive fields from
// incoming and writes it back, then mirrors the stored row into
// incoming so callers observe the surviving local id.
func overwriteExisting(tx *gorm.DB, existing, incoming *models.Content) error {
	CopyDescriptive(existing, incoming)
	if err := tx.Save(existing).Error; err != nil {
		return classifyWriteError(err, existing)
	}
	*incoming = *existing
	return nil
}

// classifyWriteError maps persistence failures onto the retryable /
// recoverable taxonomy: duplicate natural keys and transient lock
// conflicts get typed errors, everything else passes through wrapped.
func classifyWriteError(err error, content *models.Content) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return DuplicateKeyError{TmdbID: content.TmdbID, Kind: string(content.MediaKind), Cause: err}
	}
	if isLockedError(err) {
		return LockConflictError{Cause: err}
	}
	return fmt.Errorf("writing content %d/%s: %w", content.TmdbID, content.MediaKind, err)
}

// isLockedError detects SQLite's transient lock failures. The driver
// exposes them only through the message text.
func isLockedError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "deadlock")
}
