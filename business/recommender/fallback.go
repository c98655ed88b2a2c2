package recommender

import (
	"sort"

	"shopMate/domain"
)

// FallbackRecommendations is the cold-start list for users with no history:
// featured or highly rated products ranked by raw rating. The score is the
// product's rating, not the weighted formula.
func FallbackRecommendations(catalog []domain.Product, limit int, cfg Config) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, limit)

	for _, p := range catalog {
		if !p.IsFeatured && p.Rating < cfg.HighRatingThreshold {
			continue
		}

		second := ReasonHighlyRated
		if p.IsFeatured {
			second = ReasonFeatured
		}

		recs = append(recs, domain.Recommendation{
			Product: p,
			Score:   p.Rating,
			Reasons: []string{ReasonPopular, second},
		})
	}

	// ties keep catalog order
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}

	return recs
}
