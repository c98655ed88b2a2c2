package recommender

import (
	"shopMate/domain"
)

// Reason strings shown to shoppers next to a recommendation.
const (
	ReasonHighlyRated      = "Highly rated product"
	ReasonCategoryMatch    = "Matches your favorite category"
	ReasonSubcategoryMatch = "Matches a subcategory you like"
	ReasonPriceRange       = "Within your preferred price range"
	ReasonFeatured         = "Featured product"
	ReasonOnSale           = "Currently on sale"
	ReasonPopular          = "Popular choice"
)

// ScoreProduct computes the weighted linear score for one product against a
// profile. Every term is computed unconditionally; branching only decides
// which reason strings are emitted. Reasons come out in a fixed evaluation
// order: rating, category, subcategory, price, featured, sale.
func ScoreProduct(product domain.Product, profile domain.UserProfile, cfg Config) domain.Recommendation {
	var score float64
	reasons := make([]string, 0, 6)

	// rating term
	score += (product.Rating / 5) * cfg.WRating
	if product.Rating >= cfg.HighRatingThreshold {
		reasons = append(reasons, ReasonHighlyRated)
	}

	// category term, weight normalized against the strongest category
	catRatio := normalizedWeight(profile.CategoryWeights, product.Category)
	score += catRatio * cfg.WCategory
	if catRatio > cfg.CategoryReasonThreshold {
		reasons = append(reasons, ReasonCategoryMatch)
	}

	// subcategory term, same shape at a lower weight and threshold
	subRatio := normalizedWeight(profile.SubcategoryWeights, product.Subcategory)
	score += subRatio * cfg.WSubcategory
	if subRatio > cfg.SubcategoryReasonThreshold {
		reasons = append(reasons, ReasonSubcategoryMatch)
	}

	// price term. Cold-start profiles admit every price, so the reason is
	// suppressed until at least one interaction is on record.
	inRange := product.Price >= profile.PriceMin && product.Price <= profile.PriceMax
	if inRange {
		score += 1 * cfg.WPrice
		if profile.InteractionCount > 0 {
			reasons = append(reasons, ReasonPriceRange)
		}
	} else {
		score += 0.3 * cfg.WPrice
	}

	if product.IsFeatured {
		score += cfg.FeaturedBonus
		reasons = append(reasons, ReasonFeatured)
	}

	if product.IsOnSale {
		score += cfg.SaleBonus
		reasons = append(reasons, ReasonOnSale)
	}

	// upper clamp only; negative scores are legal and keep their ordering
	if score > cfg.MaxScore {
		score = cfg.MaxScore
	}

	return domain.Recommendation{
		Product: product,
		Score:   score,
		Reasons: reasons,
	}
}

// normalizedWeight returns weight/max(weights) doubled, with the divisor
// floored at 1 so an empty or all-negative profile never divides by zero.
func normalizedWeight(weights map[string]float64, key string) float64 {
	maxWeight := 1.0
	for _, w := range weights {
		if w > maxWeight {
			maxWeight = w
		}
	}
	return (weights[key] / maxWeight) * 2
}
