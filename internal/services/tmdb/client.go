package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Sentinel errors for the two provider failure modes callers care
// about. Everything that isn't a clean 404 collapses into
// ErrProviderUnavailable: the provider gives no better signal and
// callers treat timeouts, network errors and 5xx the same way.
var (
	ErrProviderUnavailable = errors.New("tmdb provider unavailable")
	ErrNotFound            = errors.New("tmdb resource not found")
)

// Client handles communication with the TMDB API. It is a plain I/O
// wrapper: one outbound HTTP call per method, no retries, no
// persistence.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	language   string
	region     string
	userAgent  string
}

// Config holds configuration for the TMDB client
type Config struct {
	BaseURL     string
	AccessToken string
	Language    string
	Region      string
	UserAgent   string
	Timeout     time.Duration
}

// NewClient creates a new TMDB API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.themoviedb.org/3"
	}
	if cfg.Language == "" {
		cfg.Language = "en-US"
	}
	if cfg.Region == "" {
		cfg.Region = "US"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "GeekFlexAPI/1.0"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.AccessToken,
		language:   cfg.Language,
		region:     cfg.Region,
		userAgent:  cfg.UserAgent,
	}
}

// get issues one authenticated GET against the TMDB API and decodes the
// JSON body into result.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	// Inherit the caller's deadline but not its values, so auth
	// middleware metadata never propagates to the external API.
	cleanCtx := context.Background()
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		cleanCtx, cancel = context.WithDeadline(cleanCtx, deadline)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(cleanCtx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: executing request: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		log.Printf("[ERROR] TMDB API returned status %d for %s", resp.StatusCode, path)
		return fmt.Errorf("%w: API returned status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrProviderUnavailable, err)
	}

	return nil
}

// GetCategoryPage fetches one page of a ranked movie listing
// (e.g. /movie/now_playing, /movie/popular) with the configured
// language and region.
func (c *Client) GetCategoryPage(ctx context.Context, listingPath string, page int) (*ListingPage, error) {
	if listingPath == "" {
		return nil, fmt.Errorf("listing path cannot be empty")
	}
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("language", c.language)
	params.Set("page", strconv.Itoa(page))
	params.Set("region", c.region)

	var listing ListingPage
	if err := c.get(ctx, listingPath, params, &listing); err != nil {
		return nil, err
	}

	return &listing, nil
}

// GetMovieDetail fetches the full record for a single movie.
func (c *Client) GetMovieDetail(ctx context.Context, tmdbID int64) (*MovieDetail, error) {
	if tmdbID <= 0 {
		return nil, fmt.Errorf("invalid tmdb id: %d", tmdbID)
	}

	params := url.Values{}
	params.Set("language", c.language)

	var detail MovieDetail
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", tmdbID), params, &detail); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] TMDB movie detail fetched - tmdbID=%d title=%s", tmdbID, detail.Title)
	return &detail, nil
}

// GetTVDetail fetches the full record for a single TV series.
func (c *Client) GetTVDetail(ctx context.Context, tmdbID int64) (*TVDetail, error) {
	if tmdbID <= 0 {
		return nil, fmt.Errorf("invalid tmdb id: %d", tmdbID)
	}

	params := url.Values{}
	params.Set("language", c.language)

	var detail TVDetail
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", tmdbID), params, &detail); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] TMDB tv detail fetched - tmdbID=%d name=%s", tmdbID, detail.Name)
	return &detail, nil
}

// SearchMovies searches movies by keyword. Results are re-ranked exact
// match first, then prefix match, then popularity.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*ListingPage, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("language", c.language)
	params.Set("page", strconv.Itoa(page))

	var listing ListingPage
	if err := c.get(ctx, "/search/movie", params, &listing); err != nil {
		return nil, err
	}

	sortMovieResults(listing.Results, query)
	return &listing, nil
}

// SearchTV searches TV series by keyword, with the same re-ranking as
// SearchMovies.
func (c *Client) SearchTV(ctx context.Context, query string, page int) (*TVListingPage, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("language", c.language)
	params.Set("page", strconv.Itoa(page))

	var listing TVListingPage
	if err := c.get(ctx, "/search/tv", params, &listing); err != nil {
		return nil, err
	}

	sortTVResults(listing.Results, query)
	return &listing, nil
}

// IsNotFound reports whether err is a provider 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable reports whether err is a transient provider failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}
