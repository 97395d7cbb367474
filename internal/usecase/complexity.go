package usecase

import (
	"math"

	"bistro_core/internal/domain/entities"
)

// Complexity estimation is pure: identical items and an identical load
// snapshot always produce the same score and prep estimate, so admission
// decisions stay testable in isolation.

// categoryWeights maps a menu category to its prep-effort weight. Dishes
// composed of several prepared components weigh more than single-component
// ones. Unknown categories get a middle weight.
var categoryWeights = map[string]int{
	"multi_component": 5,
	"grill":           4,
	"main":            3,
	"dessert":         2,
	"side":            2,
	"drink":           1,
}

const defaultCategoryWeight = 3

// basePrepMinutes maps a complexity score to its base processing time.
var basePrepMinutes = map[int]int{
	1: 10,
	2: 15,
	3: 25,
	4: 35,
	5: 50,
}

// ComplexityScore derives a 1-5 score from the order's line items as the
// quantity-weighted mean of category weights, rounded and clamped.
func ComplexityScore(items []entities.OrderItem) int {
	if len(items) == 0 {
		return 1
	}

	weighted := 0
	count := 0
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		w, ok := categoryWeights[it.Category]
		if !ok {
			w = defaultCategoryWeight
		}
		weighted += w * qty
		count += qty
	}

	score := int(math.Round(float64(weighted) / float64(count)))
	if score < 1 {
		score = 1
	}
	if score > 5 {
		score = 5
	}
	return score
}

// EstimatePrepMinutes combines the base processing time for a score with a
// load penalty that grows linearly once the kitchen is past its high-water
// threshold. Below the threshold there is no penalty.
func EstimatePrepMinutes(score int, loadPercent float64, cfg CapacityConfig) int {
	base, ok := basePrepMinutes[score]
	if !ok {
		base = basePrepMinutes[3]
	}
	if loadPercent <= cfg.HighWaterPercent {
		return base
	}
	penalty := (loadPercent - cfg.HighWaterPercent) * cfg.LoadPenaltySlope
	return base + int(math.Round(penalty))
}
