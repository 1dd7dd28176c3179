package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// Content is the API-facing shape of a mirrored title. Image URLs are
// fully expanded; dates use YYYY-MM-DD.
type Content struct {
	ID               uint    `json:"id"`
	TmdbID           int64   `json:"tmdb_id"`
	MediaKind        string  `json:"media_kind"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	Overview         string  `json:"overview,omitempty"`
	ReleaseDate      string  `json:"release_date,omitempty"`
	EndDate          string  `json:"end_date,omitempty"`
	PosterURL        string  `json:"poster_url,omitempty"`
	BackdropURL      string  `json:"backdrop_url,omitempty"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Genre            string  `json:"genre,omitempty"`
	OriginCountry    string  `json:"origin_country,omitempty"`
}

// ContentsResponse for category listings
type ContentsResponse struct {
	BaseResponse
	Contents []Content `json:"contents"`
	Tag      string    `json:"tag"`
	Count    int       `json:"count"` // Number of results in this response
}

// SingleContentResponse for getting a single title
type SingleContentResponse struct {
	BaseResponse
	Content *Content `json:"content"`
}

// SearchResult is one provider search hit. These are not persisted
// locally, so there is no local id.
type SearchResult struct {
	TmdbID        int64   `json:"tmdb_id"`
	MediaKind     string  `json:"media_kind"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title,omitempty"`
	Overview      string  `json:"overview,omitempty"`
	ReleaseDate   string  `json:"release_date,omitempty"`
	PosterURL     string  `json:"poster_url,omitempty"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
}

// SearchResponse for search endpoints
type SearchResponse struct {
	BaseResponse
	Results []SearchResult `json:"results"`
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Total   int            `json:"total,omitempty"` // Total available results (if known)
	Page    int            `json:"page,omitempty"`
}

// ErrorResponse creates a standard error payload
func ErrorResponse(message string) BaseResponse {
	return BaseResponse{
		Status:  StatusError,
		Message: message,
	}
}
