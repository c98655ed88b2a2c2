package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopMate/business/recommender"
	"shopMate/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecommendationService struct {
	lastUserID uint
	lastLimit  int
	recs       []domain.Recommendation
	err        error
}

func (s *stubRecommendationService) GetRecommendations(ctx context.Context, userID uint, limit int) ([]domain.Recommendation, error) {
	s.lastUserID = userID
	s.lastLimit = limit
	return s.recs, s.err
}

func (s *stubRecommendationService) GetFallbackRecommendations(ctx context.Context, limit int) ([]domain.Recommendation, error) {
	s.lastLimit = limit
	return s.recs, s.err
}

func (s *stubRecommendationService) BuildProfile(ctx context.Context, userID uint) (domain.UserProfile, error) {
	s.lastUserID = userID
	return domain.UserProfile{InteractionCount: 0}, s.err
}

func TestRecommendHandler_OK(t *testing.T) {
	stub := &stubRecommendationService{
		recs: []domain.Recommendation{
			{Product: domain.Product{ID: 1, Name: "Headphones"}, Score: 1.67, Reasons: []string{recommender.ReasonFeatured}},
		},
	}
	h := NewRecommendationHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?n=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))

	require.NoError(t, h.Recommend(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), stub.lastUserID)
	assert.Equal(t, 3, stub.lastLimit)
}

func TestRecommendHandler_DefaultsLimit(t *testing.T) {
	stub := &stubRecommendationService{}
	h := NewRecommendationHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(1))

	require.NoError(t, h.Recommend(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultRecommendLimit, stub.lastLimit)
}

func TestRecommendHandler_Unauthorized(t *testing.T) {
	h := NewRecommendationHandler(&stubRecommendationService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Recommend(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecommendHandler_InvalidLimit(t *testing.T) {
	stub := &stubRecommendationService{err: recommender.ErrInvalidLimit}
	h := NewRecommendationHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?n=-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(1))

	require.NoError(t, h.Recommend(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPopularHandler_OK(t *testing.T) {
	stub := &stubRecommendationService{
		recs: []domain.Recommendation{
			{Product: domain.Product{ID: 3}, Score: 4.8, Reasons: []string{recommender.ReasonPopular, recommender.ReasonHighlyRated}},
		},
	}
	h := NewRecommendationHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/popular?n=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Popular(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, stub.lastLimit)
}
