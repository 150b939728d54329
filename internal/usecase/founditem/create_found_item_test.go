package founditem_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/memory"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/founditem"
)

type recordingSink struct {
	requests []notify.Request
}

func (s *recordingSink) Notify(ctx context.Context, req notify.Request) notify.Result {
	s.requests = append(s.requests, req)
	return notify.Result{RecipientID: req.Recipient.ID, Type: req.Type, InApp: notify.StatusSent, Email: notify.StatusSkipped}
}

func addUser(t *testing.T, store *memory.Store, name string, role valueobject.Role) *entity.User {
	t.Helper()
	block, dept := "", ""
	if role == valueobject.RoleStudent {
		block, dept = "A", "CSE"
	}
	u, err := entity.NewUser(name, name+"@campus.test", role, block, dept)
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u
}

func addReport(t *testing.T, store *memory.Store, owner *entity.User) *entity.LostReport {
	t.Helper()
	r, err := entity.NewLostReport(owner.ID, entity.LostReportDetails{
		ItemName:     "Student ID",
		Category:     valueobject.CategoryIDCard,
		Description:  "Blue lanyard",
		DateLost:     time.Now().Add(-2 * time.Hour),
		LocationLost: "Gym",
		Visibility:   valueobject.VisibilityCampus,
	})
	require.NoError(t, err)
	require.NoError(t, store.LostReports().Create(context.Background(), r))
	return r
}

func foundInput(staff *entity.User, linked *uuid.UUID) founditem.CreateFoundItemInput {
	return founditem.CreateFoundItemInput{
		Requester:          entity.Requester{UserID: staff.ID, Role: staff.Role},
		ItemName:           "ID card",
		Category:           "ID Card",
		Description:        "Found on the bleachers",
		DateFound:          time.Now(),
		LocationFound:      "Gym",
		LinkedLostReportID: linked,
	}
}

func newCreate(store *memory.Store, sink notify.Sink) *founditem.CreateFoundItemUseCase {
	return founditem.NewCreateFoundItemUseCase(store.FoundItems(), store.LostReports(), store.Comments(), store.Users(), sink)
}

func TestCreateFoundItem_Unlinked(t *testing.T) {
	store := memory.NewStore()
	sink := &recordingSink{}
	staff := addUser(t, store, "staff", valueobject.RoleStaff)

	out, err := newCreate(store, sink).Execute(context.Background(), foundInput(staff, nil))

	require.NoError(t, err)
	require.NotNil(t, out.Item.ReportedBy)
	assert.Equal(t, staff.ID, *out.Item.ReportedBy)
	assert.Nil(t, out.MatchedReport)
	assert.Empty(t, out.Notifications)
	assert.Empty(t, sink.requests)
}

func TestCreateFoundItem_LinkedReportIsMatched(t *testing.T) {
	store := memory.NewStore()
	sink := &recordingSink{}
	staff := addUser(t, store, "staff", valueobject.RoleStaff)
	owner := addUser(t, store, "asha", valueobject.RoleStudent)
	report := addReport(t, store, owner)

	out, err := newCreate(store, sink).Execute(context.Background(), foundInput(staff, &report.ID))

	require.NoError(t, err)
	require.NotNil(t, out.MatchedReport)
	assert.Equal(t, valueobject.ReportStatusMatched, out.MatchedReport.Status)

	stored, err := store.LostReports().FindByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, valueobject.ReportStatusMatched, stored.Status)

	comments, err := store.Comments().FindByTarget(context.Background(), valueobject.LostReportRef(report.ID))
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.True(t, comments[0].IsSystemMessage)
	assert.Contains(t, comments[0].Text, out.Item.ID.String())

	require.Len(t, sink.requests, 1)
	assert.Equal(t, owner.ID, sink.requests[0].Recipient.ID)
	assert.Equal(t, valueobject.NotificationMatchFound, sink.requests[0].Type)
	assert.True(t, sink.requests[0].IsMatch)
}

func TestCreateFoundItem_MissingLinkedReport(t *testing.T) {
	store := memory.NewStore()
	sink := &recordingSink{}
	staff := addUser(t, store, "staff", valueobject.RoleStaff)
	missing := uuid.New()

	_, err := newCreate(store, sink).Execute(context.Background(), foundInput(staff, &missing))

	assert.ErrorIs(t, err, apperror.ErrLostReportNotFound)
	total, err := store.FoundItems().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreateFoundItem_ClosedReportStaysClosed(t *testing.T) {
	store := memory.NewStore()
	sink := &recordingSink{}
	staff := addUser(t, store, "staff", valueobject.RoleStaff)
	owner := addUser(t, store, "asha", valueobject.RoleStudent)
	report := addReport(t, store, owner)
	report.Close(time.Now())
	require.NoError(t, store.LostReports().Update(context.Background(), report))

	out, err := newCreate(store, sink).Execute(context.Background(), foundInput(staff, &report.ID))

	require.NoError(t, err)
	assert.Nil(t, out.MatchedReport)
	assert.Empty(t, sink.requests)
	stored, err := store.LostReports().FindByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, valueobject.ReportStatusClosed, stored.Status)
	total, err := store.FoundItems().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestCreateFoundItem_Validation(t *testing.T) {
	store := memory.NewStore()
	staff := addUser(t, store, "staff", valueobject.RoleStaff)
	uc := newCreate(store, &recordingSink{})

	input := foundInput(staff, nil)
	input.Category = "Umbrella"
	_, err := uc.Execute(context.Background(), input)
	assert.True(t, apperror.IsValidation(err))

	input = foundInput(staff, nil)
	input.ItemName = " "
	_, err = uc.Execute(context.Background(), input)
	assert.True(t, apperror.IsValidation(err))

	items, _, err := store.FoundItems().List(context.Background(), repository.FoundItemFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}
