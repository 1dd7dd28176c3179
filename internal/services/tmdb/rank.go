package tmdb

import (
	"sort"
	"strings"
)

// relevanceLess orders two search hits for a query: exact title match
// first, then prefix match, then popularity descending. Both the local
// and original titles count as a match.
func relevanceLess(query, titleA, origA, titleB, origB string, popA, popB float64) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	titleA, origA = strings.ToLower(titleA), strings.ToLower(origA)
	titleB, origB = strings.ToLower(titleB), strings.ToLower(origB)

	exactA := titleA == q || origA == q
	exactB := titleB == q || origB == q
	if exactA != exactB {
		return exactA
	}

	prefixA := strings.HasPrefix(titleA, q) || strings.HasPrefix(origA, q)
	prefixB := strings.HasPrefix(titleB, q) || strings.HasPrefix(origB, q)
	if prefixA != prefixB {
		return prefixA
	}

	return popA > popB
}

func sortMovieResults(results []MovieSummary, query string) {
	sort.SliceStable(results, func(i, j int) bool {
		return relevanceLess(query,
			results[i].Title, results[i].OriginalTitle,
			results[j].Title, results[j].OriginalTitle,
			results[i].Popularity, results[j].Popularity)
	})
}

func sortTVResults(results []TVSummary, query string) {
	sort.SliceStable(results, func(i, j int) bool {
		return relevanceLess(query,
			results[i].Name, results[i].OriginalName,
			results[j].Name, results[j].OriginalName,
			results[i].Popularity, results[j].Popularity)
	})
}
