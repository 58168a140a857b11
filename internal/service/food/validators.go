package food

import "foodorder/internal/entities"

const (
	DefaultLimit = 6
	MaxLimit     = 100
)

func isValidRange(filter entities.FoodFilter) bool {
	if filter.PriceFrom != nil && filter.PriceTo != nil && *filter.PriceFrom > *filter.PriceTo {
		return false
	}
	if filter.RateFrom != nil && filter.RateTo != nil && *filter.RateFrom > *filter.RateTo {
		return false
	}
	return true
}
