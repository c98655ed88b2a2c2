package recommender

import (
	"math"
	"testing"
	"time"

	"shopMate/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Headphones", Category: "Electronics", Subcategory: "Audio", Price: 100, Rating: 4.5, IsFeatured: true},
		{ID: 2, Name: "Speaker", Category: "Electronics", Subcategory: "Audio", Price: 80, Rating: 4.2, IsOnSale: true},
		{ID: 3, Name: "Skillet", Category: "Kitchen", Subcategory: "Cookware", Price: 40, Rating: 4.7},
		{ID: 4, Name: "Lamp", Category: "Home", Subcategory: "Lighting", Price: 89, Rating: 3.6},
	}
}

func interactionAt(userID uint, productID uint64, kind string, age time.Duration) domain.Interaction {
	return domain.Interaction{
		UserID:    userID,
		ProductID: productID,
		Type:      kind,
		CreatedAt: time.Now().Add(-age),
	}
}

func TestBuildUserProfile_Weights(t *testing.T) {
	cfg := DefaultConfig()
	catalog := indexByID(testCatalog())

	interactions := []domain.Interaction{
		interactionAt(1, 2, domain.InteractionAddToCart, time.Minute),
		interactionAt(1, 1, domain.InteractionView, 2*time.Minute),
		interactionAt(1, 3, domain.InteractionRemoveFromCart, 3*time.Minute),
	}

	profile := BuildUserProfile(catalog, interactions, cfg)

	assert.Equal(t, 3, profile.InteractionCount)
	assert.Equal(t, 4.0, profile.CategoryWeights["Electronics"]) // +3 cart, +1 view
	assert.Equal(t, -1.0, profile.CategoryWeights["Kitchen"])
	assert.Equal(t, 4.0, profile.SubcategoryWeights["Audio"])
	assert.Equal(t, -1.0, profile.SubcategoryWeights["Cookware"])

	// no zero-filled keys for categories never touched
	_, ok := profile.CategoryWeights["Home"]
	assert.False(t, ok)
}

func TestBuildUserProfile_NegativeWeightsAccumulate(t *testing.T) {
	cfg := DefaultConfig()
	catalog := indexByID(testCatalog())

	interactions := []domain.Interaction{
		interactionAt(1, 3, domain.InteractionRemoveFromCart, time.Minute),
		interactionAt(1, 3, domain.InteractionRemoveFromCart, 2*time.Minute),
		interactionAt(1, 3, domain.InteractionRemoveFromCart, 3*time.Minute),
	}

	profile := BuildUserProfile(catalog, interactions, cfg)

	assert.Equal(t, -3.0, profile.CategoryWeights["Kitchen"])
	assert.Equal(t, 3, profile.InteractionCount)
}

func TestBuildUserProfile_PriceInterval(t *testing.T) {
	cfg := DefaultConfig()
	catalog := indexByID(testCatalog())

	interactions := []domain.Interaction{
		interactionAt(1, 2, domain.InteractionAddToCart, time.Minute), // price 80
		interactionAt(1, 3, domain.InteractionAddToCart, 2*time.Minute), // price 40
	}

	profile := BuildUserProfile(catalog, interactions, cfg)

	assert.InDelta(t, 0.7*40, profile.PriceMin, 1e-9)
	assert.InDelta(t, 1.3*80, profile.PriceMax, 1e-9)
}

func TestBuildUserProfile_PriceIntervalDefaultsWithoutCart(t *testing.T) {
	cfg := DefaultConfig()
	catalog := indexByID(testCatalog())

	interactions := []domain.Interaction{
		interactionAt(1, 1, domain.InteractionView, time.Minute),
	}

	profile := BuildUserProfile(catalog, interactions, cfg)

	assert.Equal(t, 0.0, profile.PriceMin)
	assert.True(t, math.IsInf(profile.PriceMax, 1))
}

func TestBuildUserProfile_SkipsStaleProductRefs(t *testing.T) {
	cfg := DefaultConfig()
	catalog := indexByID(testCatalog())

	interactions := []domain.Interaction{
		interactionAt(1, 999, domain.InteractionAddToCart, time.Minute),
	}

	profile := BuildUserProfile(catalog, interactions, cfg)

	assert.Equal(t, 0, profile.InteractionCount)
	assert.Empty(t, profile.CategoryWeights)
	assert.Equal(t, 0.0, profile.PriceMin)
	assert.True(t, math.IsInf(profile.PriceMax, 1))
}

func TestBuildUserProfile_UnrecognizedTypeHasZeroWeight(t *testing.T) {
	cfg := DefaultConfig()
	catalog := indexByID(testCatalog())

	interactions := []domain.Interaction{
		interactionAt(1, 1, "wishlist", time.Minute),
	}

	profile := BuildUserProfile(catalog, interactions, cfg)

	assert.Equal(t, 1, profile.InteractionCount)
	assert.Equal(t, 0.0, profile.CategoryWeights["Electronics"])
}

func TestBuildUserProfile_RecencyCap(t *testing.T) {
	cfg := DefaultConfig()
	catalog := indexByID(testCatalog())

	// newest-first: 50 views of product 1, then 10 older cart-adds of product 3
	var interactions []domain.Interaction
	for i := 0; i < cfg.RecencyCap; i++ {
		interactions = append(interactions, interactionAt(1, 1, domain.InteractionView, time.Duration(i)*time.Minute))
	}
	for i := 0; i < 10; i++ {
		interactions = append(interactions, interactionAt(1, 3, domain.InteractionAddToCart, time.Duration(100+i)*time.Minute))
	}

	profile := BuildUserProfile(catalog, interactions, cfg)

	require.Equal(t, cfg.RecencyCap, profile.InteractionCount)
	_, ok := profile.CategoryWeights["Kitchen"]
	assert.False(t, ok, "interactions beyond the recency cap must not count")
}

func TestBuildUserProfile_EmptyHistory(t *testing.T) {
	cfg := DefaultConfig()

	profile := BuildUserProfile(indexByID(testCatalog()), nil, cfg)

	assert.Equal(t, 0, profile.InteractionCount)
	assert.Empty(t, profile.CategoryWeights)
	assert.Empty(t, profile.SubcategoryWeights)
}
