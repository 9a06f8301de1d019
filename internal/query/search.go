package query

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"brasilnasteam/backend/internal/filters"
	"brasilnasteam/backend/internal/metric"
)

var sortColumns = map[filters.SortOption]exp.IdentifierExpression{
	filters.SortReleaseDate:        gameReleaseDate,
	filters.SortName:               gameName,
	filters.SortPrice:              gamePrice,
	filters.SortFollowers:          LatestFollowers.Col("followers"),
	filters.SortTotalReviews:       LatestReviews.Col("total_reviews"),
	filters.SortPositivePercentage: LatestReviews.Col("positive_percentage"),
}

// list columns of a search row, each aggregated from one association
var searchLists = []struct {
	column string
	assoc  association
}{
	{"languages", languageAssoc},
	{"genres", genreAssoc},
	{"tags", tagAssoc},
	{"developers", developerAssoc},
	{"publishers", publisherAssoc},
}

// searchFrom joins and filters the games matching s. Both snapshot views are
// always joined; genre and tag tables only when a membership filter needs them.
func searchFrom(s filters.Search) (*goqu.SelectDataset, Requirements) {
	req := Analyze(s.Filters, metric.Definition{}).Without(Requirements{Games: true})
	req.Reviews, req.Followers = true, true
	ds := joinRequired(dialect.From(gameTable), gameAppID, req)
	return ds.Where(Conditions(s)...), req
}

// SearchPage renders one page of search rows. Besides the game columns each row
// carries the current snapshot values, deduplicated name arrays for every list
// column and total_count, the number of matching games.
// s.PerPage must be positive.
func SearchPage(s filters.Search) (Statement, error) {
	ds, req := searchFrom(s)

	cols := []any{
		gameAppID,
		gameName,
		gamePrice,
		goqu.Cast(gameReleaseDate, "TEXT").As("release_date"),
		gameReleased,
		gameShortDescription,
		LatestFollowers.Col("followers"),
		LatestReviews.Col("total_reviews"),
		LatestReviews.Col("positive_percentage"),
		goqu.COUNT(goqu.Star()).Over(goqu.W()).As("total_count"),
	}
	for _, list := range searchLists {
		alias := list.column + "_list"
		ds = list.assoc.leftJoin(ds, gameAppID, alias)
		cols = append(cols, arrayAgg(goqu.T(alias).Col("name")).As(list.column))
	}

	ds = ds.Select(cols...).
		GroupBy(
			gameAppID,
			LatestFollowers.Col("followers"),
			LatestReviews.Col("total_reviews"),
			LatestReviews.Col("positive_percentage"),
		).
		Order(sortOrder(s)...).
		Limit(uint(s.PerPage)).
		Offset(uint(s.Offset()))
	return render(withSnapshots(ds, req))
}

// SearchCount renders the number of games matching s, ignoring pagination.
func SearchCount(s filters.Search) (Statement, error) {
	ds, req := searchFrom(s)
	ds = ds.Select(goqu.COUNT(goqu.DISTINCT(gameAppID)).As("total_count"))
	return render(withSnapshots(ds, req))
}

// sortOrder puts NULLs last in either direction and breaks ties by app id.
func sortOrder(s filters.Search) []exp.OrderedExpression {
	col, ok := sortColumns[s.SortBy]
	if !ok {
		col = gameReleaseDate
	}
	primary := col.Asc()
	if s.SortDirection == filters.Descending {
		primary = col.Desc()
	}
	return []exp.OrderedExpression{primary.NullsLast(), gameAppID.Asc()}
}

// arrayAgg collects the distinct non-null values of col, or an empty array.
func arrayAgg(col exp.IdentifierExpression) exp.LiteralExpression {
	return goqu.L("COALESCE(ARRAY_AGG(DISTINCT ?) FILTER (WHERE ? IS NOT NULL), '{}')", col, col)
}
