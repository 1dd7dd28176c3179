package types

import (
	"context"

	"github.com/geekflex/geekflex-api/internal/services/tmdb"
)

// SearchClient is the provider search surface used by the search
// handlers. Search results pass through without being persisted.
type SearchClient interface {
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.ListingPage, error)
	SearchTV(ctx context.Context, query string, page int) (*tmdb.TVListingPage, error)
}
