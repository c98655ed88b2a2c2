package rest

import (
	"context"
	"net/http"
	"time"

	"shopMate/domain"
	"shopMate/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	InteractionService interface {
		Record(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, error)
		RecentByUser(ctx context.Context, userID uint, limit int) ([]domain.Interaction, error)
	}

	InteractionHandler struct {
		interactionService InteractionService
		validate           *validator.Validate
		timeout            time.Duration
	}

	RecordInteractionRequest struct {
		ProductID uint64 `json:"product_id" validate:"required"`
		Type      string `json:"type" validate:"required,oneof=view add_to_cart remove_from_cart"`
	}

	RecentInteractionsQuery struct {
		N int `query:"n"`
	}
)

func NewInteractionHandler(svc InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: svc,
		validate:           validator.New(),
		timeout:            10 * time.Second,
	}
}

func (h *InteractionHandler) Record(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req RecordInteractionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate interaction request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	interaction, err := h.interactionService.Record(ctx, &domain.Interaction{
		UserID:    userID,
		ProductID: req.ProductID,
		Type:      req.Type,
		CreatedAt: time.Now(),
	})
	if err != nil {
		logger.Error("Failed to record interaction", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(interaction))
}

func (h *InteractionHandler) Recent(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecentInteractionsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.N <= 0 {
		q.N = 50
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	interactions, err := h.interactionService.RecentByUser(ctx, userID, q.N)
	if err != nil {
		logger.Error("Failed to list interactions", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(interactions))
}
