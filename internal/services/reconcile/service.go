package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/internal/services/contents"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
)

const (
	upsertAttempts  = 3
	upsertBaseDelay = 50 * time.Millisecond
	upsertMaxJitter = 100 * time.Millisecond
)

// Service refreshes category listings from the provider. Each pass
// fetches the first listing page, upserts every entry into the content
// table, and only then replaces the category's tag snapshot. A failed
// pass leaves the previous snapshot fully intact.
type Service struct {
	fetcher     ListingFetcher
	upserter    ContentUpserter
	tags        TagReplacer
	transformer *contents.Transformer
	region      string
}

// Ensure Service implements ReconcileService interface
var _ ReconcileService = (*Service)(nil)

func NewService(fetcher ListingFetcher, upserter ContentUpserter, tags TagReplacer, region string) *Service {
	return &Service{
		fetcher:     fetcher,
		upserter:    upserter,
		tags:        tags,
		transformer: contents.NewTransformer(),
		region:      region,
	}
}

// ReconcileAll runs one pass over every standing category, continuing
// past individual failures and returning the last error seen.
func (s *Service) ReconcileAll(ctx context.Context) error {
	var lastErr error
	for _, category := range DefaultCategories {
		if err := s.ReconcileCategory(ctx, category); err != nil {
			log.Printf("[ERROR] Reconcile pass failed for category %s: %v", category.Name, err)
			lastErr = err
		}
	}
	return lastErr
}

// ReconcileCategory refreshes one category from its provider listing.
// An empty or unreachable listing keeps the previous snapshot; the tag
// swap happens only after every entry has been persisted.
func (s *Service) ReconcileCategory(ctx context.Context, category Category) error {
	start := time.Now()

	page, err := s.fetcher.GetCategoryPage(ctx, category.ListingPath, 1)
	if err != nil {
		return fmt.Errorf("fetching listing for category %s: %w", category.Name, err)
	}

	entries := dedupeKeepFirst(page.Results)
	if len(entries) == 0 {
		log.Printf("[WARN] Provider returned empty listing for category %s, keeping previous snapshot", category.Name)
		return nil
	}

	contentIDs := make([]uint, 0, len(entries))
	for _, entry := range entries {
		content := s.transformer.FromMovieSummary(entry)
		if err := s.upsertWithRetry(ctx, content); err != nil {
			return fmt.Errorf("persisting entry %d for category %s: %w", entry.ID, category.Name, err)
		}
		contentIDs = append(contentIDs, content.ID)
	}

	if err := s.tags.ReplaceSnapshot(ctx, category.Name, s.region, contentIDs); err != nil {
		return fmt.Errorf("replacing snapshot for category %s: %w", category.Name, err)
	}

	log.Printf("[INFO] Reconciled category %s: %d titles in %v", category.Name, len(contentIDs), time.Since(start))
	return nil
}

// upsertWithRetry retries transient lock conflicts with a short
// jittered backoff. Any other failure surfaces immediately.
func (s *Service) upsertWithRetry(ctx context.Context, content *models.Content) error {
	return retry.Do(
		func() error {
			return s.upserter.UpsertContent(ctx, content)
		},
		retry.Context(ctx),
		retry.Attempts(upsertAttempts),
		retry.Delay(upsertBaseDelay),
		retry.MaxJitter(upsertMaxJitter),
		retry.DelayType(retry.CombineDelay(retry.FixedDelay, retry.RandomDelay)),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, contents.ErrLockConflict)
		}),
		retry.LastErrorOnly(true),
	)
}

// dedupeKeepFirst drops repeated provider ids from a listing page,
// keeping the first occurrence so the ranking order survives.
func dedupeKeepFirst(results []tmdb.MovieSummary) []tmdb.MovieSummary {
	seen := make(map[int64]struct{}, len(results))
	out := make([]tmdb.MovieSummary, 0, len(results))
	for _, r := range results {
		if _, ok := seen[r.ID]; ok {
			log.Printf("[DEBUG] Dropping duplicate listing entry %d", r.ID)
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
