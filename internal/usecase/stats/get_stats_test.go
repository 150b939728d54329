package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/memory"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/stats"
)

func TestGetStats(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	owner := uuid.New()

	for _, visibility := range []valueobject.Visibility{valueobject.VisibilityCampus, valueobject.VisibilityAdminOnly} {
		r, err := entity.NewLostReport(owner, entity.LostReportDetails{
			ItemName:     "Bag",
			Category:     valueobject.CategoryBag,
			Description:  "Black backpack",
			DateLost:     time.Now().Add(-time.Hour),
			LocationLost: "Hostel",
			Visibility:   visibility,
		})
		require.NoError(t, err)
		require.NoError(t, store.LostReports().Create(ctx, r))
	}

	item, err := entity.NewFoundItem(nil, entity.FoundItemDetails{
		ItemName:      "Backpack",
		Category:      valueobject.CategoryBag,
		Description:   "Black backpack",
		DateFound:     time.Now(),
		LocationFound: "Hostel",
	})
	require.NoError(t, err)
	require.NoError(t, store.FoundItems().Create(ctx, item))

	for i, status := range []valueobject.ClaimStatus{valueobject.ClaimStatusPending, valueobject.ClaimStatusRejected} {
		c, err := entity.NewClaim(uuid.New(), item.ID, "mine")
		require.NoError(t, err)
		if i > 0 {
			require.NoError(t, c.Resolve(status, "", owner, time.Now()))
		}
		require.NoError(t, store.Claims().Create(ctx, c))
	}

	uc := stats.NewGetStatsUseCase(store.LostReports(), store.FoundItems(), store.Claims())

	_, err = uc.Execute(ctx, entity.Requester{UserID: owner, Role: valueobject.RoleStudent})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	got, err := uc.Execute(ctx, entity.Requester{UserID: uuid.New(), Role: valueobject.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, stats.Stats{
		TotalLost:          2,
		TotalFound:         1,
		TotalClaims:        2,
		PendingClaims:      1,
		PendingLostReviews: 1,
	}, *got)
}
