package query

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

func topGameColumns() []any {
	return []any{
		gameAppID,
		gameName,
		gamePrice,
		goqu.Cast(gameReleaseDate, "TEXT").As("release_date"),
		gameReleased,
		gameShortDescription,
	}
}

// PopularGames renders the released games since the given date with the most
// reviews, with their current total_reviews.
func PopularGames(since time.Time, limit uint) (Statement, error) {
	reviews := LatestReviews
	total := reviews.Col("total_reviews")
	ds := dialect.From(reviews.Table()).
		InnerJoin(gameTable, goqu.On(gameAppID.Eq(reviews.Col("game_app_id")))).
		Select(append(topGameColumns(), total)...).
		Where(
			reviews.Current(),
			gameReleased.IsTrue(),
			gameReleaseDate.Gte(dateValue(since)),
		).
		Order(total.Desc(), gameAppID.Asc()).
		Limit(limit)
	return render(reviews.With(ds))
}

// UpcomingGames renders the unreleased games with the most followers, with
// their current followers.
func UpcomingGames(limit uint) (Statement, error) {
	followers := LatestFollowers
	count := followers.Col("followers")
	ds := dialect.From(followers.Table()).
		InnerJoin(gameTable, goqu.On(gameAppID.Eq(followers.Col("game_app_id")))).
		Select(append(topGameColumns(), count)...).
		Where(
			followers.Current(),
			gameReleased.IsNotTrue(),
		).
		Order(count.Desc(), gameAppID.Asc()).
		Limit(limit)
	return render(followers.With(ds))
}
