package models

// Tag represents a user-defined storefront tag (e.g., "Roguelike", "Co-op").
// Tags and genres share a name pool; a tag may carry the same name as a genre.
type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"unique;not null"`
}

func (Tag) TableName() string { return "tag" }
