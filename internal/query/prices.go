package query

import (
	"strconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// PriceThresholds are the upper bounds, in centavos, of the price buckets.
// Bucket i (1-based) holds prices in (PriceThresholds[i-1], PriceThresholds[i]];
// prices above the last threshold fall into bucket len(PriceThresholds).
var PriceThresholds = []int64{0, 500, 1000, 1500, 2000, 3000, 4000, 5000, 6000}

// FreeBucket is the bucket of games without a price or priced at zero.
const FreeBucket = 0

// OverflowBucket holds prices above the last threshold.
var OverflowBucket = len(PriceThresholds)

// PriceBucket mirrors priceBucketExpr for a single price.
func PriceBucket(price *int64) int {
	if price == nil || *price <= 0 {
		return FreeBucket
	}
	for i := 1; i < len(PriceThresholds); i++ {
		if *price <= PriceThresholds[i] {
			return i
		}
	}
	return OverflowBucket
}

// priceBucketExpr yields NULL for free games so that they group together,
// otherwise the 1-based bucket index. Bounds are constants and rendered inline.
func priceBucketExpr() exp.CaseExpression {
	c := goqu.Case().When(goqu.Or(gamePrice.IsNull(), gamePrice.Lte(goqu.L("0"))), goqu.L("NULL"))
	for i := 1; i < len(PriceThresholds); i++ {
		c = c.When(gamePrice.Lte(goqu.L(strconv.FormatInt(PriceThresholds[i], 10))), goqu.L(strconv.Itoa(i)))
	}
	return c.Else(goqu.L(strconv.Itoa(OverflowBucket)))
}
