package lostreport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/memory"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/lostreport"
)

func strPtr(s string) *string {
	return &s
}

func TestModerate_StudentForbidden(t *testing.T) {
	store := memory.NewStore()
	owner := addUser(t, store, "asha", valueobject.RoleStudent, "A")
	report := createReport(t, store, owner, "", false)
	uc := lostreport.NewModerateLostReportUseCase(store.LostReports(), store.Comments(), store.Users(), &recordingSink{})

	_, err := uc.Execute(context.Background(), lostreport.ModerateLostReportInput{
		Requester:    requesterOf(owner),
		ReportID:     report.ID,
		ReviewStatus: strPtr("APPROVED"),
	})

	assert.True(t, apperror.IsForbidden(err))
}

func TestModerate_ApprovalPublishesAndNotifiesOnce(t *testing.T) {
	store := memory.NewStore()
	owner := addUser(t, store, "asha", valueobject.RoleStudent, "A")
	staff := addUser(t, store, "staff", valueobject.RoleStaff, "")
	report := createReport(t, store, owner, "", false)
	sink := &recordingSink{}
	uc := lostreport.NewModerateLostReportUseCase(store.LostReports(), store.Comments(), store.Users(), sink)
	input := lostreport.ModerateLostReportInput{
		Requester:    requesterOf(staff),
		ReportID:     report.ID,
		ReviewStatus: strPtr("APPROVED"),
	}

	out, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, valueobject.PublishStatusPublished, out.Report.PublishStatus)
	require.Len(t, out.Notifications, 1)
	assert.Equal(t, owner.ID, out.Notifications[0].RecipientID)

	_, err = uc.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []valueobject.NotificationType{valueobject.NotificationReportPublished}, sink.types())

	stored, err := store.LostReports().FindByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsPublished())
}

func TestModerate_CloseRemovesThread(t *testing.T) {
	store := memory.NewStore()
	owner := addUser(t, store, "asha", valueobject.RoleStudent, "A")
	admin := addUser(t, store, "admin", valueobject.RoleAdmin, "")
	report := createReport(t, store, owner, "", false)
	comment, err := entity.NewComment(valueobject.LostReportRef(report.ID), owner.ID, "any news?", nil)
	require.NoError(t, err)
	require.NoError(t, store.Comments().Create(context.Background(), comment))
	uc := lostreport.NewModerateLostReportUseCase(store.LostReports(), store.Comments(), store.Users(), &recordingSink{})

	out, err := uc.Execute(context.Background(), lostreport.ModerateLostReportInput{
		Requester: requesterOf(admin),
		ReportID:  report.ID,
		Status:    strPtr("CLOSED"),
	})

	require.NoError(t, err)
	assert.Equal(t, valueobject.ReportStatusClosed, out.Report.Status)
	assert.Equal(t, int64(1), out.CommentsPurged)
	left, err := store.Comments().FindByTarget(context.Background(), valueobject.LostReportRef(report.ID))
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestModerate_ApprovingClosedReportIsSilent(t *testing.T) {
	store := memory.NewStore()
	owner := addUser(t, store, "asha", valueobject.RoleStudent, "A")
	admin := addUser(t, store, "admin", valueobject.RoleAdmin, "")
	report := createReport(t, store, owner, "", false)
	sink := &recordingSink{}
	uc := lostreport.NewModerateLostReportUseCase(store.LostReports(), store.Comments(), store.Users(), sink)

	_, err := uc.Execute(context.Background(), lostreport.ModerateLostReportInput{
		Requester: requesterOf(admin),
		ReportID:  report.ID,
		Status:    strPtr("CLOSED"),
	})
	require.NoError(t, err)

	out, err := uc.Execute(context.Background(), lostreport.ModerateLostReportInput{
		Requester:    requesterOf(admin),
		ReportID:     report.ID,
		ReviewStatus: strPtr("APPROVED"),
	})

	require.NoError(t, err)
	assert.Empty(t, out.Notifications)
	assert.Empty(t, sink.types())
	assert.Equal(t, valueobject.ReportStatusClosed, out.Report.Status)
	assert.Equal(t, valueobject.PublishStatusDraft, out.Report.PublishStatus)
}

func TestModerate_NothingToChange(t *testing.T) {
	store := memory.NewStore()
	owner := addUser(t, store, "asha", valueobject.RoleStudent, "A")
	admin := addUser(t, store, "admin", valueobject.RoleAdmin, "")
	report := createReport(t, store, owner, "", false)
	uc := lostreport.NewModerateLostReportUseCase(store.LostReports(), store.Comments(), store.Users(), &recordingSink{})

	_, err := uc.Execute(context.Background(), lostreport.ModerateLostReportInput{
		Requester: requesterOf(admin),
		ReportID:  report.ID,
	})

	assert.True(t, apperror.IsValidation(err))
}

func TestModerate_UnknownStatusValue(t *testing.T) {
	store := memory.NewStore()
	owner := addUser(t, store, "asha", valueobject.RoleStudent, "A")
	admin := addUser(t, store, "admin", valueobject.RoleAdmin, "")
	report := createReport(t, store, owner, "", false)
	uc := lostreport.NewModerateLostReportUseCase(store.LostReports(), store.Comments(), store.Users(), &recordingSink{})

	_, err := uc.Execute(context.Background(), lostreport.ModerateLostReportInput{
		Requester:     requesterOf(admin),
		ReportID:      report.ID,
		PublishStatus: strPtr("LIVE"),
	})

	assert.True(t, apperror.IsValidation(err))
}
