package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brasilnasteam/backend/internal/filters"
	"brasilnasteam/backend/internal/metric"
)

var (
	reviewsAverage  = metric.DefaultRegistry().Default()
	followersMedian = metric.Definition{Name: "Seguidores (Mediana)", Aggregation: metric.Median, Series: metric.LatestFollowers, Field: "followers"}
	testChartGenres = []string{"Ação", "Indie"}
)

func aggregate(t *testing.T, chart Chart, f filters.Filters, m metric.Definition) Statement {
	t.Helper()
	st, err := NewBuilder(testChartGenres).Aggregate(chart, f, m)
	require.NoError(t, err)
	return st
}

func TestSnapshotCTERanksNewestFirst(t *testing.T) {
	sql, _, err := LatestReviews.CTE().ToSQL()
	require.NoError(t, err)
	assert.Contains(t, sql, `"game_reviews".*`)
	assert.Contains(t, sql, "ROW_NUMBER() OVER (PARTITION BY")
	assert.Contains(t, sql, `ORDER BY "game_reviews"."timestamp" DESC, "game_reviews"."id" DESC`)
	assert.Contains(t, sql, `AS "rrn"`)
}

func TestSnapshotFor(t *testing.T) {
	assert.Equal(t, LatestFollowers, SnapshotFor(metric.LatestFollowers))
	assert.Equal(t, LatestReviews, SnapshotFor(metric.LatestReviews))
}

func TestAggregateShape(t *testing.T) {
	for _, chart := range Charts {
		t.Run(string(chart), func(t *testing.T) {
			st := aggregate(t, chart, filters.DefaultFilters(), reviewsAverage)
			assert.True(t, strings.HasPrefix(st.SQL, "WITH latest_reviews AS ("))
			assert.Contains(t, st.SQL, "SELECT DISTINCT")
			assert.Contains(t, st.SQL, `LEFT JOIN "latest_reviews"`)
			assert.Contains(t, st.SQL, `AVG("metric_value") AS "metric"`)
			assert.Contains(t, st.SQL, `COUNT(*) AS "game_count"`)
			assert.Contains(t, st.SQL, `GROUP BY "category"`)
			assert.NotContains(t, st.SQL, "latest_followers")
			assert.Contains(t, st.Args, int64(1))
		})
	}
}

func TestAggregateUnknownChart(t *testing.T) {
	_, err := NewBuilder(nil).Aggregate("platforms", filters.DefaultFilters(), reviewsAverage)
	assert.Error(t, err)
}

func TestAggregateMedianOverFollowers(t *testing.T) {
	st := aggregate(t, ChartGenres, filters.DefaultFilters(), followersMedian)
	assert.Contains(t, st.SQL, "WITH latest_followers AS (")
	assert.Contains(t, st.SQL, `PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY "metric_value")`)
	assert.Contains(t, st.SQL, `"latest_followers"."followers" AS "metric_value"`)
	assert.NotContains(t, st.SQL, "latest_reviews")
}

func TestAggregateReleasedOnlyCharts(t *testing.T) {
	for _, chart := range []Chart{ChartReleases, ChartPrices} {
		st := aggregate(t, chart, filters.DefaultFilters(), reviewsAverage)
		assert.Contains(t, st.SQL, `"game"."released" IS TRUE`, chart)
		assert.Contains(t, st.SQL, `FROM "game"`, chart)
		assert.NotContains(t, st.SQL, `LEFT JOIN "game"`, chart)
	}
	st := aggregate(t, ChartReleases, filters.DefaultFilters(), reviewsAverage)
	assert.Contains(t, st.SQL, `CAST(EXTRACT(YEAR FROM "game"."release_date") AS INTEGER) AS "category"`)
	assert.Contains(t, st.SQL, `ORDER BY "category" ASC`)
}

func TestAggregatePriceBuckets(t *testing.T) {
	st := aggregate(t, ChartPrices, filters.DefaultFilters(), reviewsAverage)
	assert.Contains(t, st.SQL, "CASE WHEN")
	assert.Contains(t, st.SQL, `"game"."price" <= 500`)
	assert.Contains(t, st.SQL, `"game"."price" <= 6000`)
	assert.Contains(t, st.SQL, "ELSE 9 END")
}

func TestAggregateGenreChartUsesCuratedGenres(t *testing.T) {
	st := aggregate(t, ChartGenres, filters.DefaultFilters(), reviewsAverage)
	assert.Contains(t, st.SQL, `FROM "game_genre" INNER JOIN "genre"`)
	assert.Contains(t, st.SQL, `"genre"."name" IN ($`)
	assert.Contains(t, st.Args, "Ação")
	assert.Contains(t, st.Args, "Indie")

	st, err := NewBuilder(nil).Aggregate(ChartGenres, filters.DefaultFilters(), reviewsAverage)
	require.NoError(t, err)
	assert.NotContains(t, st.SQL, `"genre"."name" IN`)
}

func TestAggregateGenreFilterReusesBaseJoin(t *testing.T) {
	f := filters.DefaultFilters()
	f.Genres = []string{"RPG"}
	st := aggregate(t, ChartGenres, f, reviewsAverage)
	assert.Equal(t, 1, strings.Count(st.SQL, `"game_genre"`+" "), "genre association joined once")
	assert.Contains(t, st.Args, "RPG")
}

func TestAggregateTagChart(t *testing.T) {
	f := filters.DefaultFilters()
	f.Genres = []string{"RPG"}
	st := aggregate(t, ChartTags, f, reviewsAverage)
	assert.Contains(t, st.SQL, `"tag"."name" NOT IN (SELECT "name" FROM "genre")`)
	assert.Contains(t, st.SQL, `LEFT JOIN "game_genre"`)
	assert.Contains(t, st.SQL, `ORDER BY "game_count" DESC, "category" ASC`)
	assert.Contains(t, st.SQL, "LIMIT")
}

func TestAggregateLanguageChartJoinsOnlyWhatFiltersNeed(t *testing.T) {
	st := aggregate(t, ChartLanguages, filters.DefaultFilters(), reviewsAverage)
	assert.NotContains(t, st.SQL, `LEFT JOIN "game"`)
	assert.NotContains(t, st.SQL, `"game_tag"`)

	f := filters.DefaultFilters()
	f.IncludeFree = false
	f.Tags = []string{"Roguelike"}
	f.MinFollowers = ptr(int64(100))
	st = aggregate(t, ChartLanguages, f, reviewsAverage)
	assert.Contains(t, st.SQL, `LEFT JOIN "game" ON`)
	assert.Contains(t, st.SQL, `LEFT JOIN "game_tag"`)
	assert.Contains(t, st.SQL, "latest_followers AS (")
	assert.Contains(t, st.SQL, "latest_reviews AS (")

	reviews := strings.Index(st.SQL, `LEFT JOIN "latest_reviews"`)
	followers := strings.Index(st.SQL, `LEFT JOIN "latest_followers"`)
	game := strings.Index(st.SQL, `LEFT JOIN "game" ON`)
	tags := strings.Index(st.SQL, `LEFT JOIN "game_tag"`)
	assert.True(t, reviews < followers && followers < game && game < tags, "joins follow a fixed order")
}

func TestAggregateIsDeterministic(t *testing.T) {
	f := filters.DefaultFilters()
	f.Tags = []string{"Pixel Art", "Metroidvania"}
	f.MaxPrice = ptr(3000.0)
	first := aggregate(t, ChartTags, f, followersMedian)
	second := aggregate(t, ChartTags, f, followersMedian)
	assert.Equal(t, first, second)
}

func TestAnalyze(t *testing.T) {
	req := Analyze(filters.DefaultFilters(), reviewsAverage)
	assert.Equal(t, Requirements{Reviews: true}, req)

	f := filters.DefaultFilters()
	f.MinPositiveReviews = ptr(0.5)
	f.Genres = []string{"RPG"}
	req = Analyze(f, followersMedian)
	assert.Equal(t, Requirements{Reviews: true, Followers: true, Games: true, Genres: true}, req)

	f = filters.DefaultFilters()
	f.IncludeUnreleased = false
	assert.True(t, Analyze(f, reviewsAverage).Games)

	assert.Equal(t, Requirements{Reviews: true}, req.Without(Requirements{Followers: true, Games: true, Genres: true}))
}

func TestPriceBucket(t *testing.T) {
	tests := []struct {
		price *int64
		want  int
	}{
		{nil, FreeBucket},
		{ptr(int64(0)), FreeBucket},
		{ptr(int64(1)), 1},
		{ptr(int64(450)), 1},
		{ptr(int64(500)), 1},
		{ptr(int64(501)), 2},
		{ptr(int64(2999)), 5},
		{ptr(int64(6000)), 8},
		{ptr(int64(6500)), OverflowBucket},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceBucket(tt.price))
	}
}
