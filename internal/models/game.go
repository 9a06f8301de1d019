package models

import "time"

// Game represents a storefront title tracked by the dashboard.
// Rows are created by the discovery job with only AppID set and enriched later.
type Game struct {
	AppID               int64      `gorm:"primaryKey;autoIncrement:false"`
	LastUpdate          *time.Time `gorm:"index:game_last_update_index"`
	Name                *string
	Released            *bool
	ReleaseDate         *time.Time `gorm:"type:date;index:game_release_date_index"`
	Price               *int64     `gorm:"index:game_price_index"` // minor currency units, nil when free or unknown
	ShortDescription    *string
	DetailedDescription *string
	CommunityName       *string

	Genres     []*Genre    `gorm:"many2many:game_genre;foreignKey:AppID;joinForeignKey:GameAppID;References:ID;joinReferences:GenreID"`
	Tags       []*Tag      `gorm:"many2many:game_tag;foreignKey:AppID;joinForeignKey:GameAppID;References:ID;joinReferences:TagID"`
	Languages  []*Language `gorm:"many2many:game_language;foreignKey:AppID;joinForeignKey:GameAppID;References:ID;joinReferences:LanguageID"`
	Developers []*Company  `gorm:"many2many:game_developer;foreignKey:AppID;joinForeignKey:GameAppID;References:ID;joinReferences:CompanyID"`
	Publishers []*Company  `gorm:"many2many:game_publisher;foreignKey:AppID;joinForeignKey:GameAppID;References:ID;joinReferences:CompanyID"`

	Followers []GameFollowers `gorm:"foreignKey:GameAppID;references:AppID"`
	Reviews   []GameReviews   `gorm:"foreignKey:GameAppID;references:AppID"`
}

func (Game) TableName() string { return "game" }

// Company is a developer or publisher, identified by its storefront name.
type Company struct {
	ID          int64  `gorm:"primaryKey"`
	SteamName   string `gorm:"not null;uniqueIndex:company_name_index"`
	IsBrazilian *bool  `gorm:"index:company_is_brasilian_index"`
}

func (Company) TableName() string { return "company" }

// Language is a supported interface/audio language.
type Language struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"unique;not null"`
}

func (Language) TableName() string { return "language" }

// Genre is one of the storefront's fixed genres.
type Genre struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"unique;not null"`
}

func (Genre) TableName() string { return "genre" }
