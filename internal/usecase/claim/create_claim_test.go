package claim_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/memory"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/claim"
)

func newCreateClaim(store *memory.Store, sink *recordingSink) *claim.CreateClaimUseCase {
	return claim.NewCreateClaimUseCase(store.Claims(), store.FoundItems(), store.LostReports(), store.Users(), sink)
}

func TestCreateClaim_NotifiesClaimant(t *testing.T) {
	store := memory.NewStore()
	sink := &recordingSink{}
	student := addUser(t, store, "asha", valueobject.RoleStudent)
	item := addFoundItem(t, store, nil)

	out, err := newCreateClaim(store, sink).Execute(context.Background(), claim.CreateClaimInput{
		Requester:   requesterOf(student),
		FoundItemID: item.ID,
		Message:     "  It has my initials on the case  ",
	})

	require.NoError(t, err)
	assert.Equal(t, valueobject.ClaimStatusPending, out.Claim.Status)
	assert.Equal(t, "It has my initials on the case", out.Claim.Message)
	require.Len(t, sink.requests, 1)
	assert.Equal(t, student.ID, sink.requests[0].Recipient.ID)
	assert.Equal(t, valueobject.NotificationClaimRequested, sink.requests[0].Type)
	assert.False(t, out.Notifications.Failed())
}

func TestCreateClaim_NotifiesLinkedReportOwner(t *testing.T) {
	store := memory.NewStore()
	sink := &recordingSink{}
	owner := addUser(t, store, "asha", valueobject.RoleStudent)
	claimant := addUser(t, store, "ravi", valueobject.RoleStudent)
	report := addLostReport(t, store, owner)
	item := addFoundItem(t, store, &report.ID)

	out, err := newCreateClaim(store, sink).Execute(context.Background(), claim.CreateClaimInput{
		Requester:   requesterOf(claimant),
		FoundItemID: item.ID,
		Message:     "mine",
	})

	require.NoError(t, err)
	require.Len(t, sink.requests, 2)
	assert.Equal(t, claimant.ID, sink.requests[0].Recipient.ID)
	assert.Equal(t, owner.ID, sink.requests[1].Recipient.ID)
	assert.Contains(t, sink.requests[1].Message, "ravi")
	assert.Len(t, out.Notifications, 2)
}

func TestCreateClaim_OwnerClaimingOwnMatchGetsOneMessage(t *testing.T) {
	store := memory.NewStore()
	sink := &recordingSink{}
	owner := addUser(t, store, "asha", valueobject.RoleStudent)
	report := addLostReport(t, store, owner)
	item := addFoundItem(t, store, &report.ID)

	_, err := newCreateClaim(store, sink).Execute(context.Background(), claim.CreateClaimInput{
		Requester:   requesterOf(owner),
		FoundItemID: item.ID,
		Message:     "that's mine",
	})

	require.NoError(t, err)
	assert.Len(t, sink.requests, 1)
}

func TestCreateClaim_Duplicate(t *testing.T) {
	store := memory.NewStore()
	sink := &recordingSink{}
	student := addUser(t, store, "asha", valueobject.RoleStudent)
	item := addFoundItem(t, store, nil)
	uc := newCreateClaim(store, sink)
	input := claim.CreateClaimInput{Requester: requesterOf(student), FoundItemID: item.ID, Message: "mine"}

	_, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), input)

	assert.ErrorIs(t, err, apperror.ErrDuplicateClaim)
	assert.Equal(t, apperror.ErrCodeConflict, apperror.CodeOf(err))
	claims, err := store.Claims().FindByClaimant(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Len(t, claims, 1)
}

func TestCreateClaim_ConcurrentDuplicatesKeepOne(t *testing.T) {
	store := memory.NewStore()
	sink := &recordingSink{}
	student := addUser(t, store, "asha", valueobject.RoleStudent)
	item := addFoundItem(t, store, nil)
	uc := newCreateClaim(store, sink)
	input := claim.CreateClaimInput{Requester: requesterOf(student), FoundItemID: item.ID, Message: "mine"}

	const attempts = 50
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), input)
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, apperror.ErrDuplicateClaim)
	}
	assert.Equal(t, 1, created)

	claims, err := store.Claims().FindByClaimant(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Len(t, claims, 1)
	assert.Len(t, sink.requests, 1)
}

func TestCreateClaim_Validation(t *testing.T) {
	store := memory.NewStore()
	sink := &recordingSink{}
	student := addUser(t, store, "asha", valueobject.RoleStudent)
	uc := newCreateClaim(store, sink)

	_, err := uc.Execute(context.Background(), claim.CreateClaimInput{
		Requester: requesterOf(student), FoundItemID: uuid.New(), Message: "   ",
	})
	assert.True(t, apperror.IsValidation(err))

	_, err = uc.Execute(context.Background(), claim.CreateClaimInput{
		Requester: requesterOf(student), FoundItemID: uuid.New(), Message: "mine",
	})
	assert.ErrorIs(t, err, apperror.ErrFoundItemNotFound)
	assert.Empty(t, sink.requests)
}
