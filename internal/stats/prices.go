package stats

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"brasilnasteam/backend/internal/metric"
	"brasilnasteam/backend/internal/query"
)

const freeLabel = "Gratuito"

var brl = message.NewPrinter(language.BrazilianPortuguese)

// formatBRL formats centavos as reais, e.g. 1500 as "R$ 15,00".
func formatBRL(cents int64) string {
	return brl.Sprintf("R$ %v", number.Decimal(float64(cents)/100, number.Scale(2)))
}

// PriceLabel names a price bucket.
func PriceLabel(bucket int) string {
	switch {
	case bucket == query.FreeBucket:
		return freeLabel
	case bucket >= query.OverflowBucket:
		return "Acima de " + formatBRL(query.PriceThresholds[len(query.PriceThresholds)-1])
	default:
		return "Até " + formatBRL(query.PriceThresholds[bucket])
	}
}

// priceChartPoints labels the bucket rows and moves the free bucket, which the
// database sorts last, to the front.
func priceChartPoints(rows []chartRow, m metric.Definition) ([]ChartPoint, error) {
	points := make([]ChartPoint, 0, len(rows))
	var free *ChartPoint
	for _, row := range rows {
		bucket := query.FreeBucket
		if row.Category.Valid {
			b, err := strconv.Atoi(row.Category.String)
			if err != nil {
				return nil, fmt.Errorf("price bucket %q: %w", row.Category.String, err)
			}
			bucket = b
		}
		point := ChartPoint{
			Category:  PriceLabel(bucket),
			GameCount: row.GameCount,
			Metric:    m.Apply(row.Metric.Float64),
		}
		if bucket == query.FreeBucket {
			free = &point
			continue
		}
		points = append(points, point)
	}
	if free != nil {
		points = append([]ChartPoint{*free}, points...)
	}
	return points, nil
}
