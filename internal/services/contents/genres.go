package contents

import "strings"

// TMDB movie genre ids. Listing endpoints return ids only; the detail
// endpoints return full genre objects, so this table is needed just for
// rows materialized from listing summaries.
var genreNames = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// GenreLabel converts a list of TMDB genre ids into a comma-joined
// label, skipping ids the table does not know.
func GenreLabel(genreIDs []int) string {
	if len(genreIDs) == 0 {
		return ""
	}

	names := make([]string, 0, len(genreIDs))
	for _, id := range genreIDs {
		if name, ok := genreNames[id]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}
