package contents

import (
	"context"
	"fmt"
	"log"

	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
)

// Service materializes titles on demand: reads serve from the local
// database when possible and fall back to a provider detail fetch plus
// insert when the row does not exist yet.
type Service struct {
	repo        ContentRepository
	fetcher     DetailFetcher
	transformer *Transformer
}

// Ensure Service implements ContentService interface
var _ ContentService = (*Service)(nil)

func NewService(repo ContentRepository, fetcher DetailFetcher) *Service {
	return &Service{
		repo:        repo,
		fetcher:     fetcher,
		transformer: NewTransformer(),
	}
}

// GetOrCreate returns the local row for (tmdbID, kind), creating it
// from a provider detail fetch when missing. Concurrent callers for the
// same title may both reach the insert; the loser recovers by reading
// the winner's row, so both observe the same record.
func (s *Service) GetOrCreate(ctx context.Context, tmdbID int64, kind models.MediaKind) (*models.Content, error) {
	content, err := s.repo.GetContentByNaturalKey(ctx, tmdbID, kind)
	if err == nil {
		return content, nil
	}
	if !IsNotFound(err) {
		return nil, fmt.Errorf("looking up content %d/%s: %w", tmdbID, kind, err)
	}

	content, err = s.fetchDetail(ctx, tmdbID, kind)
	if err != nil {
		if tmdb.IsNotFound(err) {
			return nil, NewNotFoundError("content", fmt.Sprintf("%d/%s", tmdbID, kind))
		}
		return nil, fmt.Errorf("fetching detail for %d/%s: %w", tmdbID, kind, err)
	}

	if err := s.repo.CreateContent(ctx, content); err != nil {
		if !IsDuplicateKey(err) {
			return nil, fmt.Errorf("creating content %d/%s: %w", tmdbID, kind, err)
		}
		// A concurrent caller inserted first. Read their row; if it is
		// somehow absent the failure was not a race, so surface the
		// original insert error.
		log.Printf("[DEBUG] Lost insert race for content %d/%s, reading winner", tmdbID, kind)
		winner, rerr := s.repo.GetContentByNaturalKey(ctx, tmdbID, kind)
		if rerr != nil {
			return nil, err
		}
		return winner, nil
	}

	return content, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.Content, error) {
	return s.repo.GetContentByID(ctx, id)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]models.Content, error) {
	return s.repo.ListContentsByCategory(ctx, category)
}

func (s *Service) fetchDetail(ctx context.Context, tmdbID int64, kind models.MediaKind) (*models.Content, error) {
	switch kind {
	case models.MediaKindMovie:
		detail, err := s.fetcher.GetMovieDetail(ctx, tmdbID)
		if err != nil {
			return nil, err
		}
		return s.transformer.FromMovieDetail(detail), nil
	case models.MediaKindTV:
		detail, err := s.fetcher.GetTVDetail(ctx, tmdbID)
		if err != nil {
			return nil, err
		}
		return s.transformer.FromTVDetail(detail), nil
	default:
		return nil, fmt.Errorf("%w: unknown media kind %q", ErrInvalidInput, kind)
	}
}
