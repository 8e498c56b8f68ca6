package domain

// Fixed marketing figures shown on the dashboard. They are not derived from
// the catalog, so AdvertisedCategoryCount differs from len(Categories()).
const (
	AdvertisedCategoryCount = 6
	AdvertisedAverageRating = 4.8
)

// Statistics summarises the current view of the catalog.
type Statistics struct {
	// Count is the number of professionals matching the current filters.
	Count int

	// CategoryCount is AdvertisedCategoryCount.
	CategoryCount int

	// AverageRating is AdvertisedAverageRating.
	AverageRating float64
}

// NewStatistics builds the statistics for a filtered result count.
func NewStatistics(count int) Statistics {
	return Statistics{
		Count:         count,
		CategoryCount: AdvertisedCategoryCount,
		AverageRating: AdvertisedAverageRating,
	}
}
