package query

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"brasilnasteam/backend/internal/filters"
	"brasilnasteam/backend/internal/metric"
)

// Chart names an aggregate chart dimension.
type Chart string

const (
	ChartReleases  Chart = "releases"
	ChartGenres    Chart = "genres"
	ChartTags      Chart = "tags"
	ChartLanguages Chart = "languages"
	ChartPrices    Chart = "prices"
)

// Charts lists every dimension.
var Charts = []Chart{ChartReleases, ChartGenres, ChartTags, ChartLanguages, ChartPrices}

// TopCategories caps the tag and language charts.
const TopCategories = 12

// Result columns of an aggregate statement.
const (
	ColumnCategory  = "category"
	ColumnGameCount = "game_count"
	ColumnMetric    = "metric"
)

// dimension is the part of an aggregate statement that differs per chart.
type dimension struct {
	from     func() (*goqu.SelectDataset, exp.IdentifierExpression)
	category exp.AliasedExpression
	provides Requirements
	where    []exp.Expression
	order    []exp.OrderedExpression
	limit    uint
}

func fromGames() (*goqu.SelectDataset, exp.IdentifierExpression) {
	return dialect.From(gameTable), gameAppID
}

var (
	byCategory     = []exp.OrderedExpression{goqu.C(ColumnCategory).Asc()}
	byGameCountDsc = []exp.OrderedExpression{goqu.C(ColumnGameCount).Desc(), goqu.C(ColumnCategory).Asc()}
)

// Builder assembles the aggregate chart statements.
type Builder struct {
	dimensions map[Chart]dimension
}

// NewBuilder returns a builder whose genre chart reports only chartGenres,
// or every genre when the list is empty.
func NewBuilder(chartGenres []string) *Builder {
	var curated []exp.Expression
	if len(chartGenres) > 0 {
		curated = append(curated, genreName.In(chartGenres))
	}
	return &Builder{dimensions: map[Chart]dimension{
		ChartReleases: {
			from:     fromGames,
			category: goqu.L("CAST(EXTRACT(YEAR FROM ?) AS INTEGER)", gameReleaseDate).As(ColumnCategory),
			provides: Requirements{Games: true},
			where:    []exp.Expression{gameReleased.IsTrue(), gameReleaseDate.IsNotNull()},
			order:    byCategory,
		},
		ChartGenres: {
			from:     genreAssoc.from,
			category: genreName.As(ColumnCategory),
			provides: Requirements{Genres: true},
			where:    curated,
			order:    byCategory,
		},
		ChartTags: {
			from:     tagAssoc.from,
			category: tagName.As(ColumnCategory),
			provides: Requirements{Tags: true},
			// tags and genres share a name pool; a genre never shows up as a tag
			where: []exp.Expression{tagName.NotIn(dialect.From("genre").Select("name"))},
			order: byGameCountDsc,
			limit: TopCategories,
		},
		ChartLanguages: {
			from:     languageAssoc.from,
			category: goqu.T(languageAssoc.entity).Col("name").As(ColumnCategory),
			order:    byGameCountDsc,
			limit:    TopCategories,
		},
		ChartPrices: {
			from:     fromGames,
			category: priceBucketExpr().As(ColumnCategory),
			provides: Requirements{Games: true},
			where:    []exp.Expression{gameReleased.IsTrue()},
			order:    byCategory,
		},
	}}
}

// Aggregate renders the chart statement for f, aggregating m per category.
// Result columns are category, game_count and metric.
//
// Rows are first reduced to distinct (category, game, value) triples so that the
// fan-out of genre or tag joins never counts a game twice.
func (b *Builder) Aggregate(chart Chart, f filters.Filters, m metric.Definition) (Statement, error) {
	dim, ok := b.dimensions[chart]
	if !ok {
		return Statement{}, fmt.Errorf("query: unknown chart %q", chart)
	}

	req := Analyze(f, m).Without(dim.provides)
	ds, appID := dim.from()
	ds = joinRequired(ds, appID, req)

	where := append(append([]exp.Expression{}, dim.where...), Conditions(filters.Search{Filters: f})...)
	rows := ds.
		Select(dim.category, appID.As("app_id"), SnapshotFor(m.Series).Col(m.Field).As("metric_value")).
		Distinct().
		Where(where...)

	stmt := dialect.From(rows.As("chart_rows")).
		Select(
			goqu.C(ColumnCategory),
			goqu.COUNT(goqu.Star()).As(ColumnGameCount),
			aggregateExpr(m.Aggregation, goqu.C("metric_value")).As(ColumnMetric),
		).
		GroupBy(goqu.C(ColumnCategory)).
		Order(dim.order...)
	if dim.limit > 0 {
		stmt = stmt.Limit(dim.limit)
	}
	return render(withSnapshots(stmt, req))
}

func aggregateExpr(agg metric.Aggregation, value exp.IdentifierExpression) exp.Aliaseable {
	if agg == metric.Median {
		return goqu.L("PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY ?)", value)
	}
	return goqu.AVG(value)
}

// joinRequired left-joins the required relations in a fixed order.
func joinRequired(ds *goqu.SelectDataset, appID exp.IdentifierExpression, req Requirements) *goqu.SelectDataset {
	if req.Reviews {
		ds = LatestReviews.LeftJoin(ds, appID)
	}
	if req.Followers {
		ds = LatestFollowers.LeftJoin(ds, appID)
	}
	if req.Games {
		ds = ds.LeftJoin(gameTable, goqu.On(gameAppID.Eq(appID)))
	}
	if req.Genres {
		ds = genreAssoc.leftJoin(ds, appID, "")
	}
	if req.Tags {
		ds = tagAssoc.leftJoin(ds, appID, "")
	}
	return ds
}

// withSnapshots attaches the views joined by req.
func withSnapshots(ds *goqu.SelectDataset, req Requirements) *goqu.SelectDataset {
	if req.Reviews {
		ds = LatestReviews.With(ds)
	}
	if req.Followers {
		ds = LatestFollowers.With(ds)
	}
	return ds
}
