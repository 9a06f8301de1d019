package filters

import "slices"

// SortOption is a search sort dimension, named as the UI sends it.
type SortOption string

const (
	SortReleaseDate        SortOption = "Data de Lançamento"
	SortName               SortOption = "Nome"
	SortPrice              SortOption = "Preço"
	SortFollowers          SortOption = "Seguidores"
	SortTotalReviews       SortOption = "Análises Recebidas"
	SortPositivePercentage SortOption = "Percentual de Análises Positivas"
)

// SortOptions lists every sort dimension; the first is the default.
var SortOptions = []SortOption{
	SortReleaseDate,
	SortName,
	SortPrice,
	SortFollowers,
	SortTotalReviews,
	SortPositivePercentage,
}

// Valid reports whether s is one of SortOptions.
func (s SortOption) Valid() bool { return slices.Contains(SortOptions, s) }

// SortDirection orders search results.
type SortDirection string

const (
	Ascending  SortDirection = "Crescente"
	Descending SortDirection = "Decrescente"
)

// SortDirections lists the accepted directions; the first is the default.
var SortDirections = []SortDirection{Ascending, Descending}

// Valid reports whether d is one of SortDirections.
func (d SortDirection) Valid() bool { return slices.Contains(SortDirections, d) }
