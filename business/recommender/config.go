package recommender

import (
	"os"
	"strconv"
)

// Config holds the scoring knobs. Defaults are the production values; env
// overrides exist so weights can be tuned per deployment without a release.
type Config struct {
	// how many of the most recent interactions feed the profile
	RecencyCap int

	// per-interaction-type profile weights
	WeightView           float64
	WeightAddToCart      float64
	WeightRemoveFromCart float64

	// linear term weights
	WRating      float64
	WCategory    float64
	WSubcategory float64
	WPrice       float64

	// additive bonuses
	FeaturedBonus float64
	SaleBonus     float64

	// price interval band around observed add-to-cart prices
	PriceBandLow  float64
	PriceBandHigh float64

	// reason thresholds
	HighRatingThreshold        float64
	CategoryReasonThreshold    float64
	SubcategoryReasonThreshold float64

	// upper clamp for the final score; there is no lower clamp
	MaxScore float64
}

const (
	defaultRecencyCap                 = 50
	defaultWeightView                 = 1.0
	defaultWeightAddToCart            = 3.0
	defaultWeightRemoveFromCart       = -1.0
	defaultWRating                    = 0.30
	defaultWCategory                  = 0.40
	defaultWSubcategory               = 0.20
	defaultWPrice                     = 0.10
	defaultFeaturedBonus              = 0.10
	defaultSaleBonus                  = 0.15
	defaultPriceBandLow               = 0.7
	defaultPriceBandHigh              = 1.3
	defaultHighRatingThreshold        = 4.0
	defaultCategoryReasonThreshold    = 1.0
	defaultSubcategoryReasonThreshold = 0.5
	defaultMaxScore                   = 5.0
)

func DefaultConfig() Config {
	return Config{
		RecencyCap:                 defaultRecencyCap,
		WeightView:                 defaultWeightView,
		WeightAddToCart:            defaultWeightAddToCart,
		WeightRemoveFromCart:       defaultWeightRemoveFromCart,
		WRating:                    defaultWRating,
		WCategory:                  defaultWCategory,
		WSubcategory:               defaultWSubcategory,
		WPrice:                     defaultWPrice,
		FeaturedBonus:              defaultFeaturedBonus,
		SaleBonus:                  defaultSaleBonus,
		PriceBandLow:               defaultPriceBandLow,
		PriceBandHigh:              defaultPriceBandHigh,
		HighRatingThreshold:        defaultHighRatingThreshold,
		CategoryReasonThreshold:    defaultCategoryReasonThreshold,
		SubcategoryReasonThreshold: defaultSubcategoryReasonThreshold,
		MaxScore:                   defaultMaxScore,
	}
}

// ConfigFromEnv starts from defaults and applies RECO_* env overrides.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v, ok := envInt("RECO_RECENCY_CAP"); ok && v > 0 {
		cfg.RecencyCap = v
	}
	if v, ok := envFloat("RECO_WEIGHT_VIEW"); ok {
		cfg.WeightView = v
	}
	if v, ok := envFloat("RECO_WEIGHT_ADD_TO_CART"); ok {
		cfg.WeightAddToCart = v
	}
	if v, ok := envFloat("RECO_WEIGHT_REMOVE_FROM_CART"); ok {
		cfg.WeightRemoveFromCart = v
	}
	if v, ok := envFloat("RECO_W_RATING"); ok {
		cfg.WRating = v
	}
	if v, ok := envFloat("RECO_W_CATEGORY"); ok {
		cfg.WCategory = v
	}
	if v, ok := envFloat("RECO_W_SUBCATEGORY"); ok {
		cfg.WSubcategory = v
	}
	if v, ok := envFloat("RECO_W_PRICE"); ok {
		cfg.WPrice = v
	}

	return cfg
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
