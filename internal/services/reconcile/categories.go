package reconcile

// Category binds a local listing tag to the provider endpoint that
// feeds it and the cron schedule that refreshes it.
type Category struct {
	// Name is the tag value stored on category_tags rows.
	Name string
	// ListingPath is the provider listing endpoint, relative to the
	// API base.
	ListingPath string
	// CronSpec is a six-field cron expression (with seconds). Refreshes
	// run every three hours, staggered by one second per category so
	// the passes never contend for the same SQLite write lock at tick
	// time.
	CronSpec string
}

// DefaultCategories is the standing set of mirrored listings.
var DefaultCategories = []Category{
	{Name: "NOW_PLAYING", ListingPath: "/movie/now_playing", CronSpec: "0 0 */3 * * *"},
	{Name: "POPULAR", ListingPath: "/movie/popular", CronSpec: "1 0 */3 * * *"},
	{Name: "TOP_RATED", ListingPath: "/movie/top_rated", CronSpec: "2 0 */3 * * *"},
	{Name: "UPCOMING", ListingPath: "/movie/upcoming", CronSpec: "3 0 */3 * * *"},
}

// CategoryByName looks up a standing category by its tag name.
func CategoryByName(name string) (Category, bool) {
	for _, c := range DefaultCategories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryNames returns the tag names of the standing categories.
func CategoryNames() []string {
	names := make([]string, 0, len(DefaultCategories))
	for _, c := range DefaultCategories {
		names = append(names, c.Name)
	}
	return names
}
