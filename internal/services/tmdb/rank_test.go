package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortMovieResults(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		results  []MovieSummary
		expected []int64
	}{
		{
			name:  "exact beats prefix beats popularity",
			query: "dune",
			results: []MovieSummary{
				{ID: 1, Title: "Dune: Part Two", Popularity: 500},
				{ID: 2, Title: "Children of Dune", Popularity: 100},
				{ID: 3, Title: "Dune", Popularity: 50},
			},
			expected: []int64{3, 1, 2},
		},
		{
			name:  "original title counts as exact",
			query: "oldboy",
			results: []MovieSummary{
				{ID: 1, Title: "Oldboy Remake", Popularity: 80},
				{ID: 2, Title: "Old Boy", OriginalTitle: "Oldboy", Popularity: 20},
			},
			expected: []int64{2, 1},
		},
		{
			name:  "case insensitive",
			query: "THE MATRIX",
			results: []MovieSummary{
				{ID: 1, Title: "The Matrix Reloaded", Popularity: 90},
				{ID: 2, Title: "the matrix", Popularity: 10},
			},
			expected: []int64{2, 1},
		},
		{
			name:  "popularity breaks ties within same tier",
			query: "star",
			results: []MovieSummary{
				{ID: 1, Title: "Star Wars", Popularity: 70},
				{ID: 2, Title: "Star Trek", Popularity: 95},
			},
			expected: []int64{2, 1},
		},
		{
			name:     "empty input",
			query:    "anything",
			results:  nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sortMovieResults(tt.results, tt.query)
			got := make([]int64, 0, len(tt.results))
			for _, r := range tt.results {
				got = append(got, r.ID)
			}
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSortTVResults(t *testing.T) {
	results := []TVSummary{
		{ID: 1, Name: "Better Call Saul", Popularity: 300},
		{ID: 2, Name: "Breaking Bad", Popularity: 250},
	}

	sortTVResults(results, "breaking bad")

	assert.Equal(t, int64(2), results[0].ID)
	assert.Equal(t, int64(1), results[1].ID)
}
