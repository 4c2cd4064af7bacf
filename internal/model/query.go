package model

// Sorting modes understood by the remote search
const (
	SortDateAdded = "date_added"
	SortRelevance = "relevance"
	SortRandom    = "random"
	SortViews     = "views"
	SortFavorites = "favorites"
	SortToplist   = "toplist"
)

// Toplist ranges
const (
	Range1Day    = "1d"
	Range3Days   = "3d"
	Range1Week   = "1w"
	Range1Month  = "1M"
	Range3Months = "3M"
	Range6Months = "6M"
	Range1Year   = "1y"
)

// Query defaults
const (
	DefaultResolution = "1920x1080"
	DefaultCount      = 24
	DefaultRange      = Range1Month
	DefaultSort       = SortToplist
	DefaultCategories = "111"
	DefaultPurity     = "100"
	MaxCount          = 240
)

// SearchQuery carries the form state forwarded to the remote search
type SearchQuery struct {
	Resolution string // minimum resolution, e.g. "1920x1080"
	APIKey     string
	Count      int
	Range      string // only meaningful for toplist sorting
	Sort       string
	Categories string // general/anime/people bit flags, e.g. "111"
	Purity     string // sfw/sketchy/nsfw bit flags, e.g. "100"
	Ratios     string
}

// NewSearchQuery returns a query populated with defaults
func NewSearchQuery() SearchQuery {
	return SearchQuery{
		Resolution: DefaultResolution,
		Count:      DefaultCount,
		Range:      DefaultRange,
		Sort:       DefaultSort,
		Categories: DefaultCategories,
		Purity:     DefaultPurity,
	}
}

// SortOptions returns the selectable sorting modes
func SortOptions() []string {
	return []string{SortToplist, SortDateAdded, SortRelevance, SortRandom, SortViews, SortFavorites}
}

// RangeOptions returns the selectable toplist ranges
func RangeOptions() []string {
	return []string{Range1Day, Range3Days, Range1Week, Range1Month, Range3Months, Range6Months, Range1Year}
}

// EffectiveCount clamps Count into [1, MaxCount], using the default for zero
func (q SearchQuery) EffectiveCount() int {
	switch {
	case q.Count <= 0:
		return DefaultCount
	case q.Count > MaxCount:
		return MaxCount
	default:
		return q.Count
	}
}
