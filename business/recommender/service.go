package recommender

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"shopMate/domain"
	"shopMate/pkg/metrics"
)

// ErrInvalidLimit is the single validation error this package produces.
// Everything else degrades gracefully to empty or fallback results.
var ErrInvalidLimit = errors.New("limit must be a positive integer")

// CatalogRepository contract interface
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// InteractionRepository contract interface
type InteractionRepository interface {
	RecentByUser(ctx context.Context, userID uint, limit int) ([]domain.Interaction, error)
}

type Service struct {
	catalogRepo     CatalogRepository
	interactionRepo InteractionRepository
	cfg             Config
}

func NewService(catalogRepo CatalogRepository, interactionRepo InteractionRepository, cfg Config) *Service {
	return &Service{
		catalogRepo:     catalogRepo,
		interactionRepo: interactionRepo,
		cfg:             cfg,
	}
}

// GetRecommendations returns up to limit products the user has not yet
// interacted with, scored against the user's profile and sorted by
// descending score. Ties keep catalog order. Users without any resolvable
// interaction history get the fallback list instead.
func (s *Service) GetRecommendations(ctx context.Context, userID uint, limit int) ([]domain.Recommendation, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	catalog, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(catalog) == 0 {
		return []domain.Recommendation{}, nil
	}

	interactions, err := s.interactionRepo.RecentByUser(ctx, userID, s.cfg.RecencyCap)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}

	index := indexByID(catalog)
	profile := BuildUserProfile(index, interactions, s.cfg)

	if profile.InteractionCount == 0 {
		metrics.RecommendFallbackServed.Inc()
		return FallbackRecommendations(catalog, limit, s.cfg), nil
	}

	// exclude everything the user already touched, whatever the type
	seen := make(map[uint64]struct{}, len(interactions))
	for _, it := range interactions {
		seen[it.ProductID] = struct{}{}
	}

	recs := make([]domain.Recommendation, 0, len(catalog))
	for _, p := range catalog {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		recs = append(recs, ScoreProduct(p, profile, s.cfg))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}

	return recs, nil
}

// GetFallbackRecommendations exposes the cold-start list directly, for
// surfaces that render a generic "popular now" row.
func (s *Service) GetFallbackRecommendations(ctx context.Context, limit int) ([]domain.Recommendation, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	catalog, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return FallbackRecommendations(catalog, limit, s.cfg), nil
}

// BuildProfile is exposed for the debug endpoint; the profile itself is
// never persisted.
func (s *Service) BuildProfile(ctx context.Context, userID uint) (domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserProfile{}, fmt.Errorf("context error: %w", err)
	}

	catalog, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("load catalog: %w", err)
	}

	interactions, err := s.interactionRepo.RecentByUser(ctx, userID, s.cfg.RecencyCap)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("load interactions: %w", err)
	}

	return BuildUserProfile(indexByID(catalog), interactions, s.cfg), nil
}

func indexByID(catalog []domain.Product) map[uint64]domain.Product {
	index := make(map[uint64]domain.Product, len(catalog))
	for _, p := range catalog {
		index[p.ID] = p
	}
	return index
}
