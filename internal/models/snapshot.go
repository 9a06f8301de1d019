package models

import "time"

// GameFollowers is one observation of a game's community follower count.
// The table is append-only; the current value is the row with the latest Timestamp.
type GameFollowers struct {
	ID        int64     `gorm:"primaryKey"`
	Followers int64     `gorm:"not null"`
	Timestamp time.Time `gorm:"not null;index:follower_timestamp_index"`
	GameAppID int64     `gorm:"not null;index:follower_game_index"`
}

func (GameFollowers) TableName() string { return "game_followers" }

// GameReviews is one observation of a game's review summary.
type GameReviews struct {
	ID                 int64     `gorm:"primaryKey"`
	TotalReviews       int64     `gorm:"not null"`
	PositivePercentage float64   `gorm:"type:real;not null"` // 0..1
	Timestamp          time.Time `gorm:"not null;index:review_timestamp_index"`
	GameAppID          int64     `gorm:"not null;index:review_game_index"`
}

func (GameReviews) TableName() string { return "game_reviews" }

// All lists every model in migration order.
func All() []any {
	return []any{
		&Company{}, &Genre{}, &Tag{}, &Language{},
		&Game{}, &GameFollowers{}, &GameReviews{},
	}
}
