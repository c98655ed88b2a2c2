package recommender

import (
	"math"
	"shopMate/domain"
)

// BuildUserProfile aggregates a user's recent interactions into preference
// weights and an acceptable price interval. Interactions referencing
// products no longer in the catalog are skipped silently and do not count
// toward InteractionCount. Weights are purely additive and may go negative;
// the interaction order does not affect the result.
func BuildUserProfile(catalog map[uint64]domain.Product, interactions []domain.Interaction, cfg Config) domain.UserProfile {
	profile := domain.UserProfile{
		CategoryWeights:    make(map[string]float64),
		SubcategoryWeights: make(map[string]float64),
		PriceMin:           0,
		PriceMax:           math.Inf(1),
	}

	if len(interactions) > cfg.RecencyCap {
		interactions = interactions[:cfg.RecencyCap]
	}

	var cartPrices []float64

	for _, it := range interactions {
		product, ok := catalog[it.ProductID]
		if !ok {
			// stale reference, tolerated
			continue
		}

		weight := interactionWeight(it.Type, cfg)
		profile.CategoryWeights[product.Category] += weight
		profile.SubcategoryWeights[product.Subcategory] += weight
		profile.InteractionCount++

		if it.Type == domain.InteractionAddToCart {
			cartPrices = append(cartPrices, product.Price)
		}
	}

	if len(cartPrices) > 0 {
		minPrice := cartPrices[0]
		maxPrice := cartPrices[0]
		for _, p := range cartPrices[1:] {
			if p < minPrice {
				minPrice = p
			}
			if p > maxPrice {
				maxPrice = p
			}
		}
		profile.PriceMin = cfg.PriceBandLow * minPrice
		profile.PriceMax = cfg.PriceBandHigh * maxPrice
	}

	return profile
}

func interactionWeight(interactionType string, cfg Config) float64 {
	switch interactionType {
	case domain.InteractionAddToCart:
		return cfg.WeightAddToCart
	case domain.InteractionView:
		return cfg.WeightView
	case domain.InteractionRemoveFromCart:
		return cfg.WeightRemoveFromCart
	default:
		return 0
	}
}
