package domain

// UserProfile is the per-user preference aggregate derived from recent
// interactions. It is rebuilt on every recommendation request and never
// persisted. The weight maps only hold categories that actually appeared in
// the history; absent keys mean zero.
type UserProfile struct {
	CategoryWeights    map[string]float64 `json:"category_weights"`
	SubcategoryWeights map[string]float64 `json:"subcategory_weights"`

	// Acceptable price interval inferred from add-to-cart prices.
	// Defaults to [0, +Inf) when the user never added anything to cart.
	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`

	// Number of interactions that resolved to a live catalog product.
	InteractionCount int `json:"interaction_count"`
}

// Recommendation is one scored catalog product with the human-readable
// reasons that fired during scoring, in evaluation order.
type Recommendation struct {
	Product Product  `json:"product"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}
