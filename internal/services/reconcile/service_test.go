package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/internal/services/contents"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListingFetcher struct {
	pages map[string]*tmdb.ListingPage
	err   error
}

func (f *fakeListingFetcher) GetCategoryPage(ctx context.Context, listingPath string, page int) (*tmdb.ListingPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.pages[listingPath]; ok {
		return p, nil
	}
	return &tmdb.ListingPage{Page: 1}, nil
}

// fakeUpserter assigns stable local ids by provider id and can fail a
// configurable number of times before succeeding.
type fakeUpserter struct {
	nextID       uint
	idsByTmdbID  map[int64]uint
	upserted     []int64
	failTmdbID   int64
	failErr      error
	failuresLeft int
}

func newFakeUpserter() *fakeUpserter {
	return &fakeUpserter{idsByTmdbID: make(map[int64]uint)}
}

func (f *fakeUpserter) UpsertContent(ctx context.Context, content *models.Content) error {
	if content.TmdbID == f.failTmdbID && f.failuresLeft != 0 {
		if f.failuresLeft > 0 {
			f.failuresLeft--
		}
		return f.failErr
	}
	id, ok := f.idsByTmdbID[content.TmdbID]
	if !ok {
		f.nextID++
		id = f.nextID
		f.idsByTmdbID[content.TmdbID] = id
	}
	content.ID = id
	f.upserted = append(f.upserted, content.TmdbID)
	return nil
}

type fakeTagReplacer struct {
	calls      int
	category   string
	region     string
	contentIDs []uint
	err        error
}

func (f *fakeTagReplacer) ReplaceSnapshot(ctx context.Context, category, region string, contentIDs []uint) error {
	if f.err != nil {
		return f.err
	}
	f.calls++
	f.category = category
	f.region = region
	f.contentIDs = append([]uint(nil), contentIDs...)
	return nil
}

func listingOf(ids ...int64) *tmdb.ListingPage {
	page := &tmdb.ListingPage{Page: 1}
	for _, id := range ids {
		page.Results = append(page.Results, tmdb.MovieSummary{ID: id, Title: "Movie"})
	}
	page.TotalResults = len(page.Results)
	return page
}

func popularCategory() Category {
	c, _ := CategoryByName("POPULAR")
	return c
}

func TestService_ReconcileCategory_TagsAllEntriesInOrder(t *testing.T) {
	fetcher := &fakeListingFetcher{pages: map[string]*tmdb.ListingPage{
		"/movie/popular": listingOf(10, 20, 30),
	}}
	upserter := newFakeUpserter()
	tags := &fakeTagReplacer{}
	service := NewService(fetcher, upserter, tags, "US")

	err := service.ReconcileCategory(context.Background(), popularCategory())
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 20, 30}, upserter.upserted)
	assert.Equal(t, 1, tags.calls)
	assert.Equal(t, "POPULAR", tags.category)
	assert.Equal(t, "US", tags.region)
	assert.Equal(t, []uint{1, 2, 3}, tags.contentIDs)
}

func TestService_ReconcileCategory_DropsDuplicatesKeepingFirst(t *testing.T) {
	fetcher := &fakeListingFetcher{pages: map[string]*tmdb.ListingPage{
		"/movie/popular": listingOf(10, 20, 10, 30, 20),
	}}
	upserter := newFakeUpserter()
	tags := &fakeTagReplacer{}
	service := NewService(fetcher, upserter, tags, "US")

	err := service.ReconcileCategory(context.Background(), popularCategory())
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 20, 30}, upserter.upserted)
	assert.Len(t, tags.contentIDs, 3)
}

func TestService_ReconcileCategory_EmptyListingKeepsSnapshot(t *testing.T) {
	fetcher := &fakeListingFetcher{pages: map[string]*tmdb.ListingPage{
		"/movie/popular": listingOf(),
	}}
	upserter := newFakeUpserter()
	tags := &fakeTagReplacer{}
	service := NewService(fetcher, upserter, tags, "US")

	err := service.ReconcileCategory(context.Background(), popularCategory())
	require.NoError(t, err)

	assert.Empty(t, upserter.upserted)
	assert.Zero(t, tags.calls, "empty listing must not clear the previous snapshot")
}

func TestService_ReconcileCategory_FetchFailureKeepsSnapshot(t *testing.T) {
	fetcher := &fakeListingFetcher{err: tmdb.ErrProviderUnavailable}
	upserter := newFakeUpserter()
	tags := &fakeTagReplacer{}
	service := NewService(fetcher, upserter, tags, "US")

	err := service.ReconcileCategory(context.Background(), popularCategory())
	require.Error(t, err)
	assert.True(t, errors.Is(err, tmdb.ErrProviderUnavailable))
	assert.Zero(t, tags.calls)
}

func TestService_ReconcileCategory_EntryFailureAbortsBeforeTagSwap(t *testing.T) {
	fetcher := &fakeListingFetcher{pages: map[string]*tmdb.ListingPage{
		"/movie/popular": listingOf(10, 20, 30),
	}}
	upserter := newFakeUpserter()
	upserter.failTmdbID = 20
	upserter.failErr = errors.New("disk full")
	upserter.failuresLeft = -1 // always fail
	tags := &fakeTagReplacer{}
	service := NewService(fetcher, upserter, tags, "US")

	err := service.ReconcileCategory(context.Background(), popularCategory())
	require.Error(t, err)
	assert.Zero(t, tags.calls, "a failed entry must leave the previous snapshot intact")
}

func TestService_ReconcileCategory_RetriesLockConflicts(t *testing.T) {
	fetcher := &fakeListingFetcher{pages: map[string]*tmdb.ListingPage{
		"/movie/popular": listingOf(10, 20),
	}}
	upserter := newFakeUpserter()
	upserter.failTmdbID = 20
	upserter.failErr = contents.LockConflictError{Cause: errors.New("database is locked")}
	upserter.failuresLeft = 2 // succeeds on the third attempt
	tags := &fakeTagReplacer{}
	service := NewService(fetcher, upserter, tags, "US")

	err := service.ReconcileCategory(context.Background(), popularCategory())
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, upserter.upserted)
	assert.Equal(t, 1, tags.calls)
}

func TestService_ReconcileCategory_LockConflictBudgetExhausted(t *testing.T) {
	fetcher := &fakeListingFetcher{pages: map[string]*tmdb.ListingPage{
		"/movie/popular": listingOf(10),
	}}
	upserter := newFakeUpserter()
	upserter.failTmdbID = 10
	upserter.failErr = contents.LockConflictError{Cause: errors.New("database is locked")}
	upserter.failuresLeft = -1 // never recovers
	tags := &fakeTagReplacer{}
	service := NewService(fetcher, upserter, tags, "US")

	err := service.ReconcileCategory(context.Background(), popularCategory())
	require.Error(t, err)
	assert.True(t, contents.IsLockConflict(err))
	assert.Zero(t, tags.calls)
}

func TestService_ReconcileCategory_RotationSwapsMembership(t *testing.T) {
	fetcher := &fakeListingFetcher{pages: map[string]*tmdb.ListingPage{
		"/movie/popular": listingOf(10, 20, 30),
	}}
	upserter := newFakeUpserter()
	tags := &fakeTagReplacer{}
	service := NewService(fetcher, upserter, tags, "US")

	require.NoError(t, service.ReconcileCategory(context.Background(), popularCategory()))
	firstIDs := tags.contentIDs

	// The provider listing rotates: 10 drops out, 40 enters
	fetcher.pages["/movie/popular"] = listingOf(20, 30, 40)
	require.NoError(t, service.ReconcileCategory(context.Background(), popularCategory()))

	assert.Equal(t, 2, tags.calls)
	assert.NotEqual(t, firstIDs, tags.contentIDs)
	// Retained titles keep their local ids across passes
	assert.Equal(t, firstIDs[1], tags.contentIDs[0])
	assert.Equal(t, firstIDs[2], tags.contentIDs[1])
}

func TestService_ReconcileAll_ContinuesPastFailures(t *testing.T) {
	fetcher := &fakeListingFetcher{pages: map[string]*tmdb.ListingPage{
		"/movie/now_playing": listingOf(1),
		// popular missing -> empty page, fine
		"/movie/top_rated": listingOf(2),
		"/movie/upcoming":  listingOf(3),
	}}
	upserter := newFakeUpserter()
	upserter.failTmdbID = 2
	upserter.failErr = errors.New("boom")
	upserter.failuresLeft = -1
	tags := &fakeTagReplacer{}
	service := NewService(fetcher, upserter, tags, "US")

	err := service.ReconcileAll(context.Background())
	require.Error(t, err)

	// The failing category did not stop the others
	assert.Contains(t, upserter.upserted, int64(1))
	assert.Contains(t, upserter.upserted, int64(3))
}

func TestCategoryByName(t *testing.T) {
	c, ok := CategoryByName("NOW_PLAYING")
	require.True(t, ok)
	assert.Equal(t, "/movie/now_playing", c.ListingPath)

	_, ok = CategoryByName("TRENDING")
	assert.False(t, ok)
}

func TestDefaultCategories_StaggeredSchedules(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range DefaultCategories {
		assert.False(t, seen[c.CronSpec], "category %s shares a cron spec", c.Name)
		seen[c.CronSpec] = true
	}
}
