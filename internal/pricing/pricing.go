package pricing

import (
	"github.com/shopspring/decimal"

	"equiprent-backend/internal/domain"
)

// Duration-based discount fractions applied when no tiered-price entry
// matches the requested duration exactly.
var (
	discount30Plus = decimal.RequireFromString("0.25")
	discount15to29 = decimal.RequireFromString("0.15")
	discount7to14  = decimal.RequireFromString("0.10")
	discount3to6   = decimal.RequireFromString("0.05")
)

// Calculate returns the total price for renting the equipment for the
// given number of days. A tiered-price entry whose duration equals days
// wins over the formula, which is how per-equipment special pricing is
// expressed. Otherwise the price is dailyRate * days * (1 - discount).
//
// days <= 0 is not validated here; callers must reject it first.
func Calculate(equipment *domain.Equipment, days int32) decimal.Decimal {
	for _, tier := range equipment.TieredPrices {
		if tier.Days == days {
			return tier.Price
		}
	}

	base := equipment.DailyRate.Mul(decimal.NewFromInt32(days))
	return base.Mul(decimal.NewFromInt(1).Sub(Discount(days)))
}

// Discount returns the discount fraction for the given rental duration:
// 0% for 1-2 days, 5% for 3-6, 10% for 7-14, 15% for 15-29, 25% for 30+.
func Discount(days int32) decimal.Decimal {
	switch {
	case days >= 30:
		return discount30Plus
	case days >= 15:
		return discount15to29
	case days >= 7:
		return discount7to14
	case days >= 3:
		return discount3to6
	default:
		return decimal.Zero
	}
}
