package lostreport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/memory"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/lostreport"
)

func TestCreateLostReport_Campus(t *testing.T) {
	store := memory.NewStore()
	owner := addUser(t, store, "asha", valueobject.RoleStudent, "A")
	sink := &recordingSink{}
	uc := lostreport.NewCreateLostReportUseCase(store.LostReports(), store.Users(), sink)

	out, err := uc.Execute(context.Background(), lostInput(owner, "", false))

	require.NoError(t, err)
	assert.Equal(t, valueobject.VisibilityCampus, out.Report.Visibility)
	assert.Equal(t, valueobject.ReviewStatusPending, out.Report.ReviewStatus)
	assert.Equal(t, valueobject.PublishStatusDraft, out.Report.PublishStatus)
	assert.Empty(t, sink.requests)

	stored, err := store.LostReports().FindByID(context.Background(), out.Report.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, stored.OwnerID)
}

func TestCreateLostReport_PrivateNotifiesModerators(t *testing.T) {
	store := memory.NewStore()
	owner := addUser(t, store, "asha", valueobject.RoleStudent, "A")
	addUser(t, store, "staff", valueobject.RoleStaff, "")
	addUser(t, store, "admin", valueobject.RoleAdmin, "")
	sink := &recordingSink{}
	uc := lostreport.NewCreateLostReportUseCase(store.LostReports(), store.Users(), sink)

	out, err := uc.Execute(context.Background(), lostInput(owner, "ADMIN_ONLY", true))

	require.NoError(t, err)
	assert.Len(t, out.Notifications, 2)
	assert.Equal(t, []valueobject.NotificationType{
		valueobject.NotificationReportCreated,
		valueobject.NotificationReportCreated,
	}, sink.types())
	for _, req := range sink.requests {
		assert.True(t, req.Recipient.Role.IsModerator())
	}
}

func TestCreateLostReport_PrivateWithoutNotifyIsSilent(t *testing.T) {
	store := memory.NewStore()
	owner := addUser(t, store, "asha", valueobject.RoleStudent, "A")
	addUser(t, store, "admin", valueobject.RoleAdmin, "")
	sink := &recordingSink{}
	uc := lostreport.NewCreateLostReportUseCase(store.LostReports(), store.Users(), sink)

	out, err := uc.Execute(context.Background(), lostInput(owner, "ADMIN_ONLY", false))

	require.NoError(t, err)
	assert.Equal(t, valueobject.ReviewStatusApproved, out.Report.ReviewStatus)
	assert.Empty(t, sink.requests)
}

func TestCreateLostReport_InvalidCategory(t *testing.T) {
	store := memory.NewStore()
	owner := addUser(t, store, "asha", valueobject.RoleStudent, "A")
	uc := lostreport.NewCreateLostReportUseCase(store.LostReports(), store.Users(), &recordingSink{})
	input := lostInput(owner, "", false)
	input.Category = "Umbrella"

	_, err := uc.Execute(context.Background(), input)

	assert.True(t, apperror.IsValidation(err))
	total, err := store.LostReports().Count(context.Background(), repository.LostReportFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}
