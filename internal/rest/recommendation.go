package rest

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"shopMate/business/recommender"
	"shopMate/domain"
	"shopMate/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationService interface {
		GetRecommendations(ctx context.Context, userID uint, limit int) ([]domain.Recommendation, error)
		GetFallbackRecommendations(ctx context.Context, limit int) ([]domain.Recommendation, error)
		BuildProfile(ctx context.Context, userID uint) (domain.UserProfile, error)
	}

	RecommendationHandler struct {
		validate              *validator.Validate
		recommendationService RecommendationService
	}

	RecommendQuery struct {
		N int `query:"n"`
	}
)

const defaultRecommendLimit = 10

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:              validator.New(),
		recommendationService: svc,
	}
}

// GET /api/v1/recommendations?n=10
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()
	metrics.RecommendRequests.Inc()

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.N == 0 {
		q.N = defaultRecommendLimit
	}

	recs, err := h.recommendationService.GetRecommendations(c.Request().Context(), userID, q.N)
	if err != nil {
		if errors.Is(err, recommender.ErrInvalidLimit) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/recommendations/popular?n=10
// Unauthenticated surface backed directly by the cold-start list.
func (h *RecommendationHandler) Popular(c echo.Context) error {
	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.N == 0 {
		q.N = defaultRecommendLimit
	}

	recs, err := h.recommendationService.GetFallbackRecommendations(c.Request().Context(), q.N)
	if err != nil {
		if errors.Is(err, recommender.ErrInvalidLimit) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/recommendations/profile
// Debug view of the transient profile the scorer would use right now.
func (h *RecommendationHandler) Profile(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	profile, err := h.recommendationService.BuildProfile(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	// PriceMax is +Inf for cold-start profiles, which JSON cannot carry
	var priceMax interface{}
	if !math.IsInf(profile.PriceMax, 1) {
		priceMax = profile.PriceMax
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"category_weights":    profile.CategoryWeights,
		"subcategory_weights": profile.SubcategoryWeights,
		"price_min":           profile.PriceMin,
		"price_max":           priceMax,
		"interaction_count":   profile.InteractionCount,
	}))
}
