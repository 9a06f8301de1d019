package query

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"brasilnasteam/backend/internal/models"
)

func newSnapshotDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

type currentReviews struct {
	AppID              int64
	TotalReviews       *int64
	PositivePercentage *float64
}

// latestReviewsPerGame runs the shared view joined to every game. The query is
// rendered without placeholders; the quoted identifiers and window function are
// valid SQLite as well.
func latestReviewsPerGame(t *testing.T, db *gorm.DB) []currentReviews {
	t.Helper()
	ds := dialect.From(gameTable).
		Select(gameAppID, LatestReviews.Col("total_reviews"), LatestReviews.Col("positive_percentage"))
	ds = LatestReviews.LeftJoin(ds, gameAppID).Order(gameAppID.Asc())
	sql, _, err := LatestReviews.With(ds).ToSQL()
	require.NoError(t, err)

	var rows []currentReviews
	require.NoError(t, db.Raw(sql).Scan(&rows).Error)
	return rows
}

func TestLatestSnapshotJoinReturnsNewestRow(t *testing.T) {
	db := newSnapshotDB(t)
	require.NoError(t, db.Create([]models.Game{{AppID: 1}, {AppID: 2}, {AppID: 3}}).Error)

	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2, t3 := t1.AddDate(0, 1, 0), t1.AddDate(0, 2, 0)
	// inserted out of order so that insertion order cannot stand in for recency
	require.NoError(t, db.Create([]models.GameReviews{
		{ID: 1, GameAppID: 1, TotalReviews: 20, PositivePercentage: 0.5, Timestamp: t2},
		{ID: 2, GameAppID: 1, TotalReviews: 30, PositivePercentage: 0.9, Timestamp: t3},
		{ID: 3, GameAppID: 1, TotalReviews: 10, PositivePercentage: 0.1, Timestamp: t1},
		{ID: 4, GameAppID: 2, TotalReviews: 5, PositivePercentage: 0.6, Timestamp: t1},
		{ID: 5, GameAppID: 2, TotalReviews: 7, PositivePercentage: 0.7, Timestamp: t1},
	}).Error)

	rows := latestReviewsPerGame(t, db)
	require.Len(t, rows, 3, "one row per game")

	assert.Equal(t, int64(1), rows[0].AppID)
	require.NotNil(t, rows[0].TotalReviews)
	assert.Equal(t, int64(30), *rows[0].TotalReviews)
	assert.InDelta(t, 0.9, *rows[0].PositivePercentage, 1e-9)

	// equal timestamps: the newest id wins
	require.NotNil(t, rows[1].TotalReviews)
	assert.Equal(t, int64(7), *rows[1].TotalReviews)

	// no snapshot yet: kept with NULL values
	assert.Equal(t, int64(3), rows[2].AppID)
	assert.Nil(t, rows[2].TotalReviews)
	assert.Nil(t, rows[2].PositivePercentage)
}
