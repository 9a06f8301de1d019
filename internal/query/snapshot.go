package query

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"brasilnasteam/backend/internal/metric"
)

// Snapshot is the latest-row view over an append-only time-series table.
// Each row of the source is ranked within its game by descending timestamp;
// rank 1 is the current value. Every consumer goes through the same view.
type Snapshot struct {
	Name   string
	source string
	rank   string
}

var (
	LatestReviews   = Snapshot{Name: "latest_reviews", source: "game_reviews", rank: "rrn"}
	LatestFollowers = Snapshot{Name: "latest_followers", source: "game_followers", rank: "frn"}
)

// SnapshotFor maps a metric series to its view.
func SnapshotFor(series metric.Series) Snapshot {
	if series == metric.LatestFollowers {
		return LatestFollowers
	}
	return LatestReviews
}

// CTE is the ranking query. Ties on timestamp are broken by the newest id.
func (s Snapshot) CTE() *goqu.SelectDataset {
	src := goqu.T(s.source)
	window := goqu.W().
		PartitionBy(src.Col("game_app_id")).
		OrderBy(src.Col("timestamp").Desc(), src.Col("id").Desc())
	return dialect.From(src).Select(
		src.All(),
		goqu.ROW_NUMBER().Over(window).As(s.rank),
	)
}

// With attaches the view as a common table expression.
func (s Snapshot) With(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return ds.With(s.Name, s.CTE())
}

func (s Snapshot) Table() exp.IdentifierExpression { return goqu.T(s.Name) }

func (s Snapshot) Col(name string) exp.IdentifierExpression { return goqu.T(s.Name).Col(name) }

// Current restricts the view to rank 1.
func (s Snapshot) Current() exp.Expression { return s.Col(s.rank).Eq(1) }

// JoinOn matches a game's current row. Used with LEFT JOIN, games without any
// snapshot keep a single row with NULL values instead of disappearing.
func (s Snapshot) JoinOn(appID exp.IdentifierExpression) exp.JoinCondition {
	return goqu.On(s.Col("game_app_id").Eq(appID), s.Current())
}

// LeftJoin joins the view to ds for the given game column.
func (s Snapshot) LeftJoin(ds *goqu.SelectDataset, appID exp.IdentifierExpression) *goqu.SelectDataset {
	return ds.LeftJoin(s.Table(), s.JoinOn(appID))
}
