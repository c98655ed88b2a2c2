package recommender

import (
	"context"
	"testing"
	"time"

	"shopMate/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	products []domain.Product
}

func (f *fakeCatalogRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

type fakeInteractionRepo struct {
	interactions []domain.Interaction
}

func (f *fakeInteractionRepo) RecentByUser(ctx context.Context, userID uint, limit int) ([]domain.Interaction, error) {
	var out []domain.Interaction
	for _, it := range f.interactions {
		if it.UserID != userID {
			continue
		}
		out = append(out, it)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func newTestService(products []domain.Product, interactions []domain.Interaction) *Service {
	return NewService(
		&fakeCatalogRepo{products: products},
		&fakeInteractionRepo{interactions: interactions},
		DefaultConfig(),
	)
}

func TestGetRecommendations_ExcludesInteractedProducts(t *testing.T) {
	svc := newTestService(testCatalog(), []domain.Interaction{
		{UserID: 1, ProductID: 1, Type: domain.InteractionView, CreatedAt: time.Now()},
		{UserID: 1, ProductID: 3, Type: domain.InteractionRemoveFromCart, CreatedAt: time.Now()},
	})

	recs, err := svc.GetRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)

	for _, rec := range recs {
		assert.NotEqual(t, uint64(1), rec.Product.ID)
		assert.NotEqual(t, uint64(3), rec.Product.ID)
	}
	assert.Len(t, recs, 2)
}

func TestGetRecommendations_ColdStartEqualsFallback(t *testing.T) {
	svc := newTestService(testCatalog(), nil)

	recs, err := svc.GetRecommendations(context.Background(), 1, 5)
	require.NoError(t, err)

	fallback, err := svc.GetFallbackRecommendations(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, fallback, recs)
}

func TestGetRecommendations_StaleOnlyHistoryFallsBack(t *testing.T) {
	// every interaction points at a product that left the catalog
	svc := newTestService(testCatalog(), []domain.Interaction{
		{UserID: 1, ProductID: 999, Type: domain.InteractionAddToCart, CreatedAt: time.Now()},
	})

	recs, err := svc.GetRecommendations(context.Background(), 1, 5)
	require.NoError(t, err)

	fallback, err := svc.GetFallbackRecommendations(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, fallback, recs)
}

func TestGetRecommendations_SortedDescendingAndDeterministic(t *testing.T) {
	svc := newTestService(testCatalog(), []domain.Interaction{
		{UserID: 1, ProductID: 2, Type: domain.InteractionAddToCart, CreatedAt: time.Now()},
	})

	first, err := svc.GetRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	for i := 1; i < len(first); i++ {
		assert.GreaterOrEqual(t, first[i-1].Score, first[i].Score)
	}

	second, err := svc.GetRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetRecommendations_ScoresNeverExceedMax(t *testing.T) {
	svc := newTestService(testCatalog(), []domain.Interaction{
		{UserID: 1, ProductID: 1, Type: domain.InteractionAddToCart, CreatedAt: time.Now()},
	})

	recs, err := svc.GetRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)

	for _, rec := range recs {
		assert.LessOrEqual(t, rec.Score, DefaultConfig().MaxScore)
	}
}

func TestGetRecommendations_TruncationLaw(t *testing.T) {
	catalog := testCatalog()
	svc := newTestService(catalog, []domain.Interaction{
		{UserID: 1, ProductID: 4, Type: domain.InteractionView, CreatedAt: time.Now()},
	})

	// limit far beyond catalog size returns everything not interacted with
	recs, err := svc.GetRecommendations(context.Background(), 1, 1000)
	require.NoError(t, err)
	assert.Len(t, recs, len(catalog)-1)
}

func TestGetRecommendations_InvalidLimit(t *testing.T) {
	svc := newTestService(testCatalog(), nil)

	_, err := svc.GetRecommendations(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = svc.GetRecommendations(context.Background(), 1, -3)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = svc.GetFallbackRecommendations(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestGetRecommendations_EmptyCatalog(t *testing.T) {
	svc := newTestService(nil, nil)

	recs, err := svc.GetRecommendations(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Empty(t, recs)

	fallback, err := svc.GetFallbackRecommendations(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, fallback)
}

func TestGetRecommendations_TruncatesToLimit(t *testing.T) {
	svc := newTestService(testCatalog(), []domain.Interaction{
		{UserID: 1, ProductID: 2, Type: domain.InteractionView, CreatedAt: time.Now()},
	})

	recs, err := svc.GetRecommendations(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestBuildProfile_Transient(t *testing.T) {
	svc := newTestService(testCatalog(), []domain.Interaction{
		{UserID: 1, ProductID: 2, Type: domain.InteractionAddToCart, CreatedAt: time.Now()},
	})

	profile, err := svc.BuildProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.InteractionCount)
	assert.Equal(t, 3.0, profile.CategoryWeights["Electronics"])
}

func TestGetRecommendations_OtherUsersHistoryIgnored(t *testing.T) {
	svc := newTestService(testCatalog(), []domain.Interaction{
		{UserID: 2, ProductID: 1, Type: domain.InteractionAddToCart, CreatedAt: time.Now()},
	})

	// user 1 has no history, so the cold-start list applies
	recs, err := svc.GetRecommendations(context.Background(), 1, 5)
	require.NoError(t, err)

	fallback, err := svc.GetFallbackRecommendations(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, fallback, recs)
}
