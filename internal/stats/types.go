package stats

import "github.com/lib/pq"

// ChartPoint is one category of an aggregate chart.
type ChartPoint struct {
	Category  string  `json:"category"`
	GameCount int64   `json:"gameCount"`
	Metric    float64 `json:"metric"`
}

// GameSearchData is one game of a search page.
type GameSearchData struct {
	AppID              int64          `json:"appId" db:"app_id"`
	Name               *string        `json:"name" db:"name"`
	Price              *int64         `json:"price" db:"price"`
	ReleaseDate        *string        `json:"releaseDate" db:"release_date"`
	Released           *bool          `json:"released" db:"released"`
	ShortDescription   *string        `json:"shortDescription" db:"short_description"`
	Followers          *int64         `json:"followers" db:"followers"`
	TotalReviews       *int64         `json:"totalReviews" db:"total_reviews"`
	PositivePercentage *float64       `json:"positivePercentage" db:"positive_percentage"`
	Languages          pq.StringArray `json:"languages" db:"languages" swaggertype:"array,string"`
	Genres             pq.StringArray `json:"genres" db:"genres" swaggertype:"array,string"`
	Tags               pq.StringArray `json:"tags" db:"tags" swaggertype:"array,string"`
	Developers         pq.StringArray `json:"developers" db:"developers" swaggertype:"array,string"`
	Publishers         pq.StringArray `json:"publishers" db:"publishers" swaggertype:"array,string"`
}

// SearchResult is a search page and the number of games matching the filters.
type SearchResult struct {
	Data       []GameSearchData `json:"data"`
	TotalCount int64            `json:"totalCount"`
}

// TopGame is a game of the landing page lists. Followers is set for upcoming
// games and TotalReviews for popular ones.
type TopGame struct {
	AppID            int64   `json:"appId" db:"app_id"`
	Name             *string `json:"name" db:"name"`
	Price            *int64  `json:"price" db:"price"`
	ReleaseDate      *string `json:"releaseDate" db:"release_date"`
	Released         *bool   `json:"released" db:"released"`
	ShortDescription *string `json:"shortDescription" db:"short_description"`
	Followers        *int64  `json:"followers,omitempty" db:"followers"`
	TotalReviews     *int64  `json:"totalReviews,omitempty" db:"total_reviews"`
}

type TopGames struct {
	Popular  []TopGame `json:"popular"`
	Recent   []TopGame `json:"recent"`
	Upcoming []TopGame `json:"upcoming"`
}
