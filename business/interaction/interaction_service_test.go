package interaction

import (
	"context"
	"testing"
	"time"

	"shopMate/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInteractionRepo struct {
	created []domain.Interaction
}

func (f *fakeInteractionRepo) Create(ctx context.Context, interaction *domain.Interaction) error {
	f.created = append(f.created, *interaction)
	return nil
}

func (f *fakeInteractionRepo) RecentByUser(ctx context.Context, userID uint, limit int) ([]domain.Interaction, error) {
	var out []domain.Interaction
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].UserID != userID {
			continue
		}
		out = append(out, f.created[i])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestRecord_AppendsInteraction(t *testing.T) {
	repo := &fakeInteractionRepo{}
	svc := NewInteractionService(repo)

	created, err := svc.Record(context.Background(), &domain.Interaction{
		UserID:    1,
		ProductID: 42,
		Type:      domain.InteractionAddToCart,
	})

	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, repo.created, 1)
	assert.Equal(t, uint64(42), repo.created[0].ProductID)
}

func TestRecord_RejectsMissingFields(t *testing.T) {
	svc := NewInteractionService(&fakeInteractionRepo{})

	_, err := svc.Record(context.Background(), &domain.Interaction{ProductID: 42, Type: domain.InteractionView})
	assert.Error(t, err)

	_, err = svc.Record(context.Background(), &domain.Interaction{UserID: 1, Type: domain.InteractionView})
	assert.Error(t, err)

	_, err = svc.Record(context.Background(), &domain.Interaction{UserID: 1, ProductID: 42})
	assert.Error(t, err)
}

func TestRecentByUser_NewestFirstAndLimited(t *testing.T) {
	repo := &fakeInteractionRepo{}
	svc := NewInteractionService(repo)

	for i := 0; i < 5; i++ {
		_, err := svc.Record(context.Background(), &domain.Interaction{
			UserID:    1,
			ProductID: uint64(i + 1),
			Type:      domain.InteractionView,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	recent, err := svc.RecentByUser(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, uint64(5), recent[0].ProductID)
}

func TestRecentByUser_InvalidUser(t *testing.T) {
	svc := NewInteractionService(&fakeInteractionRepo{})

	_, err := svc.RecentByUser(context.Background(), 0, 10)
	assert.Error(t, err)
}
