package reconcile

import (
	"context"
	"fmt"
	"testing"

	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/internal/services/contents"
	"github.com/geekflex/geekflex-api/internal/services/tags"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Content{}, &models.CategoryTag{})
	require.NoError(t, err)

	return db
}

func listingOfSize(n int, startID int64) *tmdb.ListingPage {
	page := &tmdb.ListingPage{Page: 1}
	for i := int64(0); i < int64(n); i++ {
		id := startID + i
		page.Results = append(page.Results, tmdb.MovieSummary{
			ID:          id,
			Title:       fmt.Sprintf("Movie %d", id),
			ReleaseDate: "2024-01-01",
			Popularity:  float64(100 - i),
		})
	}
	page.TotalResults = n
	return page
}

// Drives a full reconcile pass through the real repositories against an
// in-memory database, then rotates a quarter of the listing and checks
// that retained titles keep their local ids while dropped titles lose
// their tags.
func TestReconcile_RotationAgainstRealStore(t *testing.T) {
	db := setupTestDB(t)
	contentRepo := contents.NewRepository(db)
	tagRepo := tags.NewRepository(db)

	fetcher := &fakeListingFetcher{pages: map[string]*tmdb.ListingPage{
		"/movie/now_playing": listingOfSize(20, 1000),
	}}
	service := NewService(fetcher, contentRepo, tagRepo, "US")

	category, ok := CategoryByName("NOW_PLAYING")
	require.True(t, ok)

	require.NoError(t, service.ReconcileCategory(context.Background(), category))

	var contentCount, tagCount int64
	require.NoError(t, db.Model(&models.Content{}).Count(&contentCount).Error)
	require.NoError(t, db.Model(&models.CategoryTag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(20), contentCount)
	assert.Equal(t, int64(20), tagCount)

	// Remember the local ids of the titles that will survive the rotation
	survivors := make(map[int64]uint)
	for id := int64(1005); id < 1020; id++ {
		row, err := contentRepo.GetContentByNaturalKey(context.Background(), id, models.MediaKindMovie)
		require.NoError(t, err)
		survivors[id] = row.ID
	}

	// Rotate: 1000-1004 drop out, 2000-2004 enter
	rotated := listingOfSize(15, 1005)
	for _, entry := range listingOfSize(5, 2000).Results {
		rotated.Results = append(rotated.Results, entry)
	}
	rotated.TotalResults = 20
	fetcher.pages["/movie/now_playing"] = rotated

	require.NoError(t, service.ReconcileCategory(context.Background(), category))

	require.NoError(t, db.Model(&models.CategoryTag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(20), tagCount, "rotated snapshot keeps the listing size")

	// Dropped titles lose their tags but keep their content rows
	var droppedTags int64
	require.NoError(t, db.Model(&models.CategoryTag{}).
		Joins("JOIN contents ON contents.id = category_tags.content_id").
		Where("contents.tmdb_id < ?", 1005).
		Count(&droppedTags).Error)
	assert.Zero(t, droppedTags)

	require.NoError(t, db.Model(&models.Content{}).Count(&contentCount).Error)
	assert.Equal(t, int64(25), contentCount, "content rows are never deleted")

	// Retained titles kept their surrogate ids
	for id, wantLocalID := range survivors {
		row, err := contentRepo.GetContentByNaturalKey(context.Background(), id, models.MediaKindMovie)
		require.NoError(t, err)
		assert.Equal(t, wantLocalID, row.ID, "tmdb id %d changed local id", id)
	}
}

// Running the same pass twice against an unchanged listing must not
// drift the tag set.
func TestReconcile_IdempotentAgainstRealStore(t *testing.T) {
	db := setupTestDB(t)
	contentRepo := contents.NewRepository(db)
	tagRepo := tags.NewRepository(db)

	fetcher := &fakeListingFetcher{pages: map[string]*tmdb.ListingPage{
		"/movie/popular": listingOfSize(10, 500),
	}}
	service := NewService(fetcher, contentRepo, tagRepo, "US")

	require.NoError(t, service.ReconcileCategory(context.Background(), popularCategory()))
	require.NoError(t, service.ReconcileCategory(context.Background(), popularCategory()))

	var contentCount, tagCount int64
	require.NoError(t, db.Model(&models.Content{}).Count(&contentCount).Error)
	require.NoError(t, db.Model(&models.CategoryTag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(10), contentCount)
	assert.Equal(t, int64(10), tagCount)
}
