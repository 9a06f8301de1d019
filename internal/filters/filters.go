// Package filters turns raw query-string parameters into typed, validated filter sets.
package filters

import (
	"math"
	"time"
)

// Filters is the filter set accepted by the chart endpoints.
// Nil bounds are absent; zero-valued bounds are accepted but constrain nothing.
type Filters struct {
	Metric string `json:"metric,omitempty"`

	MinDate           *time.Time `json:"minDate,omitempty"`
	MaxDate           *time.Time `json:"maxDate,omitempty"`
	IncludeUnreleased bool       `json:"includeUnreleased"`

	MinPrice    *float64 `json:"minPrice,omitempty" validate:"omitempty,gte=0"`
	MaxPrice    *float64 `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	IncludeFree bool     `json:"includeFree"`

	MinFollowers *int64 `json:"minFollowers,omitempty" validate:"omitempty,gte=0"`
	MaxFollowers *int64 `json:"maxFollowers,omitempty" validate:"omitempty,gte=0"`

	MinTotalReviews *int64 `json:"minTotalReviews,omitempty" validate:"omitempty,gte=0"`
	MaxTotalReviews *int64 `json:"maxTotalReviews,omitempty" validate:"omitempty,gte=0"`

	MinPositiveReviews *float64 `json:"minPositiveReviews,omitempty" validate:"omitempty,gte=0,lte=1"`
	MaxPositiveReviews *float64 `json:"maxPositiveReviews,omitempty" validate:"omitempty,gte=0,lte=1"`

	Genres []string `json:"genres,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// Search is the parameter set of the paginated search endpoint.
type Search struct {
	Filters

	SearchString  string        `json:"searchString,omitempty"`
	SortBy        SortOption    `json:"sortBy" validate:"sort_option"`
	SortDirection SortDirection `json:"sortDirection" validate:"sort_direction"`
	Page          int           `json:"page" validate:"gte=0,lte=1000000"`
	PerPage       int           `json:"perPage" validate:"gte=0"`
}

// DefaultFilters returns the filter set produced by an empty query string.
func DefaultFilters() Filters {
	return Filters{IncludeUnreleased: true, IncludeFree: true}
}

// DefaultSearch returns the search parameters produced by an empty query string.
func DefaultSearch() Search {
	return Search{
		Filters:       DefaultFilters(),
		SortBy:        SortOptions[0],
		SortDirection: SortDirections[0],
		Page:          0,
		PerPage:       30,
	}
}

// MaxPage is the highest page number the parser accepts.
const MaxPage = 1_000_000

// Offset is the number of rows skipped before the requested page. It saturates
// at math.MaxInt instead of wrapping, so an absurd page simply reads past the end.
func (s Search) Offset() int {
	if s.Page <= 0 || s.PerPage <= 0 {
		return 0
	}
	if s.Page > math.MaxInt/s.PerPage {
		return math.MaxInt
	}
	return s.Page * s.PerPage
}

func active[T int64 | float64](bound *T) bool {
	return bound != nil && *bound > 0
}

func (f Filters) HasMinDate() bool { return f.MinDate != nil }
func (f Filters) HasMaxDate() bool { return f.MaxDate != nil }

func (f Filters) HasMinPrice() bool { return active(f.MinPrice) }
func (f Filters) HasMaxPrice() bool { return active(f.MaxPrice) }

func (f Filters) HasMinFollowers() bool { return active(f.MinFollowers) }
func (f Filters) HasMaxFollowers() bool { return active(f.MaxFollowers) }

func (f Filters) HasMinTotalReviews() bool { return active(f.MinTotalReviews) }
func (f Filters) HasMaxTotalReviews() bool { return active(f.MaxTotalReviews) }

func (f Filters) HasMinPositiveReviews() bool { return active(f.MinPositiveReviews) }
func (f Filters) HasMaxPositiveReviews() bool { return active(f.MaxPositiveReviews) }

// HasReviewFilters reports whether any bound reads the latest review snapshot.
func (f Filters) HasReviewFilters() bool {
	return f.HasMinTotalReviews() || f.HasMaxTotalReviews() ||
		f.HasMinPositiveReviews() || f.HasMaxPositiveReviews()
}

// HasFollowerFilters reports whether any bound reads the latest follower snapshot.
func (f Filters) HasFollowerFilters() bool {
	return f.HasMinFollowers() || f.HasMaxFollowers()
}
