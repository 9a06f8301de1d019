package stats

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"brasilnasteam/backend/internal/logging"
	"brasilnasteam/backend/internal/metric"
	"brasilnasteam/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func newTestService(db *gorm.DB, cache Cache) *Service {
	return NewService(db, nil, Options{
		MaxPerPage: 100,
		Cache:      cache,
		Logger:     logging.Discard(),
	})
}

func ptr[T any](v T) *T { return &v }

func date(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestTagNamesSorted(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create([]models.Tag{
		{ID: 3, Name: "Roguelike"},
		{ID: 1, Name: "Ação"},
		{ID: 2, Name: "Metroidvania"},
	}).Error)

	names, err := newTestService(db, nil).TagNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Ação", "Metroidvania", "Roguelike"}, names)
}

func TestTagNamesEmpty(t *testing.T) {
	names, err := newTestService(newTestDB(t), nil).TagNames(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestRecentGames(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create([]models.Game{
		{AppID: 10, Name: ptr("Old"), Released: ptr(true), ReleaseDate: date("2019-03-01")},
		{AppID: 20, Name: ptr("New"), Released: ptr(true), ReleaseDate: date("2025-11-20"), Price: ptr(int64(2999))},
		{AppID: 30, Name: ptr("Soon"), Released: ptr(false), ReleaseDate: date("2027-01-01")},
		{AppID: 40, Name: ptr("Undated"), Released: ptr(true)},
		{AppID: 50, Name: ptr("Middle"), Released: ptr(true), ReleaseDate: date("2023-07-14")},
	}).Error)

	games, err := newTestService(db, nil).recentGames(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, int64(20), games[0].AppID)
	assert.Equal(t, "2025-11-20", *games[0].ReleaseDate)
	assert.Equal(t, int64(2999), *games[0].Price)
	assert.Equal(t, int64(50), games[1].AppID)
	assert.Nil(t, games[0].Followers)
}

func TestChartPointsApplyTransform(t *testing.T) {
	percent := metric.DefaultRegistry().Resolve("Percentual de Análises Positivas (Média)")
	rows := []chartRow{
		{Category: sql.NullString{String: "Indie", Valid: true}, GameCount: 12, Metric: sql.NullFloat64{Float64: 0.875, Valid: true}},
		{Category: sql.NullString{String: "RPG", Valid: true}, GameCount: 3},
	}
	points := chartPoints(rows, percent)
	assert.Equal(t, []ChartPoint{
		{Category: "Indie", GameCount: 12, Metric: 87.5},
		{Category: "RPG", GameCount: 3, Metric: 0},
	}, points)

	assert.NotNil(t, chartPoints(nil, percent))
	assert.Empty(t, chartPoints(nil, percent))
}

func TestPriceLabels(t *testing.T) {
	assert.Equal(t, "Gratuito", PriceLabel(0))
	assert.Equal(t, "Até R$ 5,00", PriceLabel(1))
	assert.Equal(t, "Até R$ 15,00", PriceLabel(3))
	assert.Equal(t, "Até R$ 60,00", PriceLabel(8))
	assert.Equal(t, "Acima de R$ 60,00", PriceLabel(9))
}

func TestPriceChartPointsMovesFreeFirst(t *testing.T) {
	m := metric.DefaultRegistry().Default()
	rows := []chartRow{
		{Category: sql.NullString{String: "1", Valid: true}, GameCount: 4, Metric: sql.NullFloat64{Float64: 10.4, Valid: true}},
		{Category: sql.NullString{String: "9", Valid: true}, GameCount: 1, Metric: sql.NullFloat64{Float64: 200, Valid: true}},
		{GameCount: 7, Metric: sql.NullFloat64{Float64: 3.6, Valid: true}},
	}
	points, err := priceChartPoints(rows, m)
	require.NoError(t, err)
	assert.Equal(t, []ChartPoint{
		{Category: "Gratuito", GameCount: 7, Metric: 4},
		{Category: "Até R$ 5,00", GameCount: 4, Metric: 10},
		{Category: "Acima de R$ 60,00", GameCount: 1, Metric: 200},
	}, points)

	_, err = priceChartPoints([]chartRow{{Category: sql.NullString{String: "cheap", Valid: true}}}, m)
	assert.Error(t, err)
}

func TestResolveMetricFallsBack(t *testing.T) {
	s := newTestService(nil, nil)
	s.warnUnknownMetric = true
	def := metric.DefaultRegistry().Default()

	assert.Equal(t, def.Name, s.resolveMetric(context.Background(), "").Name)
	assert.Equal(t, def.Name, s.resolveMetric(context.Background(), "NonexistentName").Name)
	assert.Equal(t, "Seguidores (Média)", s.resolveMetric(context.Background(), "Seguidores (Média)").Name)
}

type fakeCache struct {
	entries map[string][]ChartPoint
	getErr  error
	sets    int
	flushed bool
}

func (c *fakeCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	v, ok := c.entries[key]
	if ok {
		*dst.(*[]ChartPoint) = v
	}
	return ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value any) error {
	c.sets++
	c.entries[key] = value.([]ChartPoint)
	return nil
}

func (c *fakeCache) Flush(context.Context) (int, error) {
	c.flushed = true
	n := len(c.entries)
	c.entries = map[string][]ChartPoint{}
	return n, nil
}

func TestCachedLoadsOnceAndServesHits(t *testing.T) {
	cache := &fakeCache{entries: map[string][]ChartPoint{}}
	s := newTestService(nil, cache)
	loads := 0
	load := func() ([]ChartPoint, error) {
		loads++
		return []ChartPoint{{Category: "2024", GameCount: 2, Metric: 5}}, nil
	}

	for range 3 {
		got, err := cached(context.Background(), s, "chart:releases", load)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, cache.sets)

	n, err := s.FlushCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, cache.flushed)
}

func TestCachedIgnoresCacheFailures(t *testing.T) {
	cache := &fakeCache{entries: map[string][]ChartPoint{}, getErr: errors.New("connection refused")}
	s := newTestService(nil, cache)
	got, err := cached(context.Background(), s, "k", func() ([]ChartPoint, error) {
		return []ChartPoint{{Category: "x"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "x", got[0].Category)
}

func TestCachedDoesNotStoreErrors(t *testing.T) {
	cache := &fakeCache{entries: map[string][]ChartPoint{}}
	s := newTestService(nil, cache)
	_, err := cached(context.Background(), s, "k", func() ([]ChartPoint, error) {
		return nil, errors.New("boom")
	})
	assert.Error(t, err)
	assert.Zero(t, cache.sets)
}

func TestFlushCacheWithoutCache(t *testing.T) {
	n, err := newTestService(nil, nil).FlushCache(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCacheKeyDistinguishesParams(t *testing.T) {
	a := cacheKey("chart:genres", map[string]any{"metric": "a"})
	b := cacheKey("chart:genres", map[string]any{"metric": "b"})
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, cacheKey("chart:genres", map[string]any{"metric": "a"}))
}
