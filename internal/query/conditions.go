package query

import (
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"brasilnasteam/backend/internal/filters"
)

// Conditions converts a filter set into predicates to be conjoined. It only emits
// predicates; the caller joins whatever Analyze reports so that they resolve.
// Chart statements pass a Search with only Filters set.
func Conditions(s filters.Search) []exp.Expression {
	var conds []exp.Expression
	conds = append(conds, DateConditions(s)...)
	conds = append(conds, PriceConditions(s)...)
	conds = append(conds, FollowerConditions(s.Filters)...)
	conds = append(conds, TotalReviewConditions(s)...)
	conds = append(conds, PositiveReviewConditions(s.Filters)...)
	conds = append(conds, MembershipConditions(s.Filters)...)
	conds = append(conds, SearchStringConditions(s.SearchString)...)
	return conds
}

// requiresReleased reports whether a firm date boundary is in place: an upper
// bound, excluded unreleased games, or a release-date sort.
func requiresReleased(s filters.Search) bool {
	return s.HasMaxDate() || !s.IncludeUnreleased || s.SortBy == filters.SortReleaseDate
}

// DateConditions bounds the release date. Without a firm boundary, a lower bound
// keeps unreleased games visible.
func DateConditions(s filters.Search) []exp.Expression {
	var conds []exp.Expression
	firm := requiresReleased(s)
	if s.HasMinDate() {
		lower := gameReleaseDate.Gte(dateValue(*s.MinDate))
		if firm {
			conds = append(conds, lower)
		} else {
			conds = append(conds, goqu.Or(lower, gameReleased.IsNotTrue()))
		}
	}
	if s.HasMaxDate() {
		conds = append(conds, gameReleaseDate.Lte(dateValue(*s.MaxDate)))
	}
	if firm {
		conds = append(conds, gameReleased.IsTrue())
	}
	return conds
}

// dateValue compares on the calendar date the client sent, in its own offset.
func dateValue(t time.Time) exp.CastExpression {
	return goqu.Cast(goqu.V(t.Format(time.DateOnly)), "DATE")
}

// PriceConditions bounds the price. Excluding free games drops released games
// priced NULL or 0, the same prices the Free bucket holds. A lower bound or a
// price sort drops released games without a price. Unreleased games are kept.
func PriceConditions(s filters.Search) []exp.Expression {
	var conds []exp.Expression
	if s.HasMinPrice() {
		conds = append(conds, gamePrice.Gte(*s.MinPrice))
	}
	if s.HasMaxPrice() {
		conds = append(conds, gamePrice.Lte(*s.MaxPrice))
	}
	switch {
	case !s.IncludeFree:
		conds = append(conds, goqu.Or(gamePrice.Gt(0), gameReleased.IsNotTrue()))
	case s.HasMinPrice() || s.SortBy == filters.SortPrice:
		conds = append(conds, goqu.Or(gamePrice.IsNotNull(), gameReleased.IsNotTrue()))
	}
	return conds
}

// FollowerConditions bounds the current follower count.
func FollowerConditions(f filters.Filters) []exp.Expression {
	followers := LatestFollowers.Col("followers")
	var conds []exp.Expression
	if f.HasMinFollowers() {
		conds = append(conds, followers.Gte(*f.MinFollowers))
	}
	if f.HasMaxFollowers() {
		conds = append(conds, followers.Lte(*f.MaxFollowers))
	}
	return conds
}

// TotalReviewConditions bounds the current review count. Sorting by it drops
// games that have no review snapshot.
func TotalReviewConditions(s filters.Search) []exp.Expression {
	total := LatestReviews.Col("total_reviews")
	var conds []exp.Expression
	if s.HasMinTotalReviews() {
		conds = append(conds, total.Gte(*s.MinTotalReviews))
	}
	if s.HasMaxTotalReviews() {
		conds = append(conds, total.Lte(*s.MaxTotalReviews))
	}
	if s.SortBy == filters.SortTotalReviews {
		conds = append(conds, total.IsNotNull())
	}
	return conds
}

// PositiveReviewConditions bounds the current positive fraction of released games.
func PositiveReviewConditions(f filters.Filters) []exp.Expression {
	positive := LatestReviews.Col("positive_percentage")
	var conds []exp.Expression
	if f.HasMinPositiveReviews() {
		conds = append(conds, goqu.Or(gameReleased.IsNotTrue(), positive.Gte(*f.MinPositiveReviews)))
	}
	if f.HasMaxPositiveReviews() {
		conds = append(conds, goqu.Or(gameReleased.IsNotTrue(), positive.Lte(*f.MaxPositiveReviews)))
	}
	return conds
}

// MembershipConditions keeps rows whose joined genre or tag is in the requested lists.
func MembershipConditions(f filters.Filters) []exp.Expression {
	var conds []exp.Expression
	if len(f.Genres) > 0 {
		conds = append(conds, genreName.In(f.Genres))
	}
	if len(f.Tags) > 0 {
		conds = append(conds, tagName.In(f.Tags))
	}
	return conds
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchStringConditions matches a case-insensitive substring of the game name.
func SearchStringConditions(search string) []exp.Expression {
	search = strings.TrimSpace(search)
	if search == "" {
		return nil
	}
	return []exp.Expression{gameName.ILike("%" + likeEscaper.Replace(search) + "%")}
}
