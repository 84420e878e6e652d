package estimate

import (
	"math"

	"service-food-delivery/internal/domain"
)

// extraUnitFactor is the share of the base time each additional unit of the same item adds.
const extraUnitFactor = 0.5

// EffectiveMinutes scales a base preparation time by the quantity of a line:
// b for a single unit, b × (1 + (q − 1) × 0.5) otherwise.
func EffectiveMinutes(base, quantity int) float64 {
	if quantity <= 1 {
		return float64(base)
	}
	return float64(base) * (1 + float64(quantity-1)*extraUnitFactor)
}

// PreparationMinutes returns the kitchen critical path: the slowest line's effective time,
// rounded half to even. Lines are prepared concurrently, so times are not summed.
// The result saturates at math.MaxInt32.
func PreparationMinutes(lines []domain.ResolvedLine) int {
	longest := 0.0
	for _, line := range lines {
		longest = math.Max(longest, EffectiveMinutes(line.Item.PreparationMinutes, line.Quantity))
	}
	if longest >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.RoundToEven(longest))
}
