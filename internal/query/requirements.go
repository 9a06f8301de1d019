package query

import (
	"brasilnasteam/backend/internal/filters"
	"brasilnasteam/backend/internal/metric"
)

// Requirements lists the optional relations a statement must join for its
// predicates and metric to resolve.
type Requirements struct {
	Reviews   bool
	Followers bool
	Games     bool
	Genres    bool
	Tags      bool
}

// Analyze derives the required joins from the filters and the active metric.
func Analyze(f filters.Filters, m metric.Definition) Requirements {
	return Requirements{
		Reviews:   f.HasReviewFilters() || m.Series == metric.LatestReviews,
		Followers: f.HasFollowerFilters() || m.Series == metric.LatestFollowers,
		Games: f.HasMinDate() || f.HasMaxDate() || !f.IncludeUnreleased ||
			f.HasMinPrice() || f.HasMaxPrice() || !f.IncludeFree ||
			f.HasMinPositiveReviews() || f.HasMaxPositiveReviews(),
		Genres: len(f.Genres) > 0,
		Tags:   len(f.Tags) > 0,
	}
}

// Without clears the relations a statement's base already provides.
func (r Requirements) Without(provided Requirements) Requirements {
	return Requirements{
		Reviews:   r.Reviews && !provided.Reviews,
		Followers: r.Followers && !provided.Followers,
		Games:     r.Games && !provided.Games,
		Genres:    r.Genres && !provided.Genres,
		Tags:      r.Tags && !provided.Tags,
	}
}
