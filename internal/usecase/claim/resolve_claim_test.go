package claim_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/memory"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/pagination"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/claim"
)

type claimFixture struct {
	store    *memory.Store
	sink     *recordingSink
	staff    *entity.User
	student  *entity.User
	item     *entity.FoundItem
	claim    *entity.Claim
	resolver *claim.ResolveClaimUseCase
}

func newClaimFixture(t *testing.T) *claimFixture {
	t.Helper()
	store := memory.NewStore()
	sink := &recordingSink{}
	f := &claimFixture{
		store:   store,
		sink:    sink,
		staff:   addUser(t, store, "staff", valueobject.RoleStaff),
		student: addUser(t, store, "asha", valueobject.RoleStudent),
		item:    addFoundItem(t, store, nil),
	}
	c, err := entity.NewClaim(f.student.ID, f.item.ID, "mine")
	require.NoError(t, err)
	require.NoError(t, store.Claims().Create(context.Background(), c))
	f.claim = c
	f.resolver = claim.NewResolveClaimUseCase(store.Claims(), store.FoundItems(), store.Users(), sink)
	return f
}

func TestResolveClaim_StudentForbidden(t *testing.T) {
	f := newClaimFixture(t)

	_, err := f.resolver.Execute(context.Background(), claim.ResolveClaimInput{
		Requester: requesterOf(f.student), ClaimID: f.claim.ID, Status: "APPROVED",
	})

	assert.True(t, apperror.IsForbidden(err))
}

func TestResolveClaim_ApproveWithPickup(t *testing.T) {
	f := newClaimFixture(t)

	out, err := f.resolver.Execute(context.Background(), claim.ResolveClaimInput{
		Requester:          requesterOf(f.staff),
		ClaimID:            f.claim.ID,
		Status:             "APPROVED",
		PickupInstructions: "Room 204",
	})

	require.NoError(t, err)
	assert.Equal(t, valueobject.ClaimStatusApproved, out.Claim.Status)
	require.NotNil(t, out.Claim.ResolvedBy)
	assert.Equal(t, f.staff.ID, *out.Claim.ResolvedBy)

	require.Len(t, f.sink.requests, 1)
	req := f.sink.requests[0]
	assert.Equal(t, valueobject.NotificationClaimApproved, req.Type)
	require.NotNil(t, req.Email)
	assert.Contains(t, req.Email.Text, "Pickup Instructions: Room 204")

	stored, err := f.store.Claims().FindByID(context.Background(), f.claim.ID)
	require.NoError(t, err)
	assert.Equal(t, valueobject.ClaimStatusApproved, stored.Status)
}

func TestResolveClaim_Reject(t *testing.T) {
	f := newClaimFixture(t)

	out, err := f.resolver.Execute(context.Background(), claim.ResolveClaimInput{
		Requester: requesterOf(f.staff), ClaimID: f.claim.ID, Status: "REJECTED",
	})

	require.NoError(t, err)
	assert.Equal(t, valueobject.ClaimStatusRejected, out.Claim.Status)
	assert.Nil(t, out.Claim.PickupInstructions)
	require.Len(t, f.sink.requests, 1)
	assert.Equal(t, valueobject.NotificationClaimRejected, f.sink.requests[0].Type)
}

func TestResolveClaim_InvalidStatus(t *testing.T) {
	f := newClaimFixture(t)

	for _, status := range []string{"PENDING", "LOST", ""} {
		_, err := f.resolver.Execute(context.Background(), claim.ResolveClaimInput{
			Requester: requesterOf(f.staff), ClaimID: f.claim.ID, Status: status,
		})
		assert.True(t, apperror.IsValidation(err), status)
	}
	assert.Empty(t, f.sink.requests)
}

func TestResolveClaim_NotFound(t *testing.T) {
	f := newClaimFixture(t)

	_, err := f.resolver.Execute(context.Background(), claim.ResolveClaimInput{
		Requester: requesterOf(f.staff), ClaimID: uuid.New(), Status: "APPROVED",
	})

	assert.ErrorIs(t, err, apperror.ErrClaimNotFound)
}

func TestListClaims(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	mine, err := claim.NewListMyClaimsUseCase(f.store.Claims()).Execute(ctx, requesterOf(f.student))
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	byItem := claim.NewListFoundItemClaimsUseCase(f.store.Claims(), f.store.FoundItems())
	_, err = byItem.Execute(ctx, requesterOf(f.student), f.item.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	claims, err := byItem.Execute(ctx, requesterOf(f.staff), f.item.ID)
	require.NoError(t, err)
	assert.Len(t, claims, 1)
	_, err = byItem.Execute(ctx, requesterOf(f.staff), uuid.New())
	assert.True(t, apperror.IsNotFound(err))

	all := claim.NewListClaimsUseCase(f.store.Claims())
	page, err := all.Execute(ctx, requesterOf(f.staff), claim.ListClaimsInput{Status: "PENDING"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, claim.DefaultAdminLimit, page.Limit)

	page, err = all.Execute(ctx, requesterOf(f.staff), claim.ListClaimsInput{Status: "APPROVED", Pagination: pagination.Params{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Items)
}
