// Package metric holds the catalog of chart metrics: which snapshot series a chart
// aggregates, how it aggregates it, and how the raw aggregate is displayed.
package metric

import "math"

// Aggregation is the statistical reduction applied per chart category.
type Aggregation string

const (
	Average Aggregation = "Average"
	Median  Aggregation = "Median"
)

// Series names a latest-snapshot view a metric reads from.
type Series string

const (
	LatestReviews   Series = "latestReviews"
	LatestFollowers Series = "latestFollowers"
)

// Transform converts a raw aggregate into its display value.
type Transform func(float64) float64

// Definition describes one selectable chart metric.
type Definition struct {
	Name        string
	Aggregation Aggregation
	Series      Series
	Field       string // column of the snapshot series
	Transform   Transform
}

// Apply runs the display transform, if any, on a raw aggregate.
func (d Definition) Apply(value float64) float64 {
	if d.Transform == nil {
		return value
	}
	return d.Transform(value)
}

// Round rounds half away from zero.
func Round(value float64) float64 { return math.Round(value) }

// Percent scales a 0..1 fraction to 0..100.
func Percent(value float64) float64 { return value * 100 }

// Registry is an ordered, immutable metric catalog. The first entry is the default.
type Registry struct {
	defs   []Definition
	byName map[string]int
}

// NewRegistry builds a registry from at least one definition. Later duplicates of a name are ignored.
func NewRegistry(defs ...Definition) *Registry {
	if len(defs) == 0 {
		panic("metric: registry needs at least one definition")
	}
	r := &Registry{
		defs:   make([]Definition, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	copy(r.defs, defs)
	for i, d := range r.defs {
		if _, dup := r.byName[d.Name]; !dup {
			r.byName[d.Name] = i
		}
	}
	return r
}

// DefaultRegistry returns the dashboard's metric catalog.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Definition{Name: "Análises Recebidas (Média)", Aggregation: Average, Series: LatestReviews, Field: "total_reviews", Transform: Round},
		Definition{Name: "Análises Recebidas (Mediana)", Aggregation: Median, Series: LatestReviews, Field: "total_reviews", Transform: Round},
		Definition{Name: "Seguidores (Média)", Aggregation: Average, Series: LatestFollowers, Field: "followers", Transform: Round},
		Definition{Name: "Seguidores (Mediana)", Aggregation: Median, Series: LatestFollowers, Field: "followers", Transform: Round},
		Definition{Name: "Percentual de Análises Positivas (Média)", Aggregation: Average, Series: LatestReviews, Field: "positive_percentage", Transform: Percent},
		Definition{Name: "Percentual de Análises Positivas (Mediana)", Aggregation: Median, Series: LatestReviews, Field: "positive_percentage", Transform: Percent},
	)
}

// Default returns the first metric of the catalog.
func (r *Registry) Default() Definition {
	return r.defs[0]
}

// Lookup finds a metric by display name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// Resolve never fails: a missing or unknown name yields the default metric.
func (r *Registry) Resolve(name string) Definition {
	if d, ok := r.Lookup(name); ok {
		return d
	}
	return r.Default()
}

// Names lists metric display names in catalog order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = d.Name
	}
	return names
}
