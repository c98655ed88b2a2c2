package interaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopMate/domain"
	"shopMate/pkg/logger"
)

// InteractionRepository contract interface
type InteractionRepository interface {
	Create(ctx context.Context, interaction *domain.Interaction) error
	RecentByUser(ctx context.Context, userID uint, limit int) ([]domain.Interaction, error)
}

type interactionService struct {
	interactionRepo InteractionRepository
}

func NewInteractionService(interactionRepo InteractionRepository) *interactionService {
	return &interactionService{
		interactionRepo: interactionRepo,
	}
}

// Record appends one interaction to the log. The log is append-only; nothing
// in the system ever updates or deletes an interaction row.
func (s *interactionService) Record(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when recording interaction")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if interaction.UserID == 0 {
		logger.Error("Invalid interaction: user id is required")
		return nil, errors.New("user id is required")
	}
	if interaction.ProductID == 0 {
		logger.Error("Invalid interaction: product id is required")
		return nil, errors.New("product id is required")
	}
	if interaction.Type == "" {
		logger.Error("Invalid interaction: type is required")
		return nil, errors.New("interaction type is required")
	}

	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = time.Now()
	}

	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		logger.Error("failed to record interaction", err)
		return nil, fmt.Errorf("failed to record interaction: %w", err)
	}

	return interaction, nil
}

// RecentByUser returns the newest interactions for one user, newest first.
func (s *interactionService) RecentByUser(ctx context.Context, userID uint, limit int) ([]domain.Interaction, error) {
	if userID == 0 {
		logger.Error("invalid user id when listing interactions")
		return nil, errors.New("invalid user id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing interactions")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}

	interactions, err := s.interactionRepo.RecentByUser(ctx, userID, limit)
	if err != nil {
		logger.Error("failed to list interactions", err)
		return nil, err
	}

	return interactions, nil
}
