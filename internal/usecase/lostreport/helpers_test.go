package lostreport_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/memory"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/lostreport"
)

type recordingSink struct {
	requests []notify.Request
}

func (s *recordingSink) Notify(ctx context.Context, req notify.Request) notify.Result {
	s.requests = append(s.requests, req)
	return notify.Result{
		RecipientID: req.Recipient.ID,
		Type:        req.Type,
		InApp:       notify.StatusSent,
		Email:       notify.StatusSent,
	}
}

func (s *recordingSink) types() []valueobject.NotificationType {
	var out []valueobject.NotificationType
	for _, r := range s.requests {
		out = append(out, r.Type)
	}
	return out
}

func addUser(t *testing.T, store *memory.Store, name string, role valueobject.Role, block string) *entity.User {
	t.Helper()
	dept := ""
	if role == valueobject.RoleStudent {
		dept = "CSE"
	}
	u, err := entity.NewUser(name, name+"@campus.test", role, block, dept)
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u
}

func requesterOf(u *entity.User) entity.Requester {
	return entity.Requester{UserID: u.ID, Role: u.Role}
}

func lostInput(owner *entity.User, visibility string, notifyRequested bool) lostreport.CreateLostReportInput {
	phone := "+91 90000 00000"
	return lostreport.CreateLostReportInput{
		Requester:       requesterOf(owner),
		ItemName:        "Blue Earbuds",
		Category:        string(valueobject.CategoryElectronics),
		Description:     "Blue wireless earbuds in a white case",
		DateLost:        time.Now().Add(-24 * time.Hour),
		LocationLost:    "Library",
		ContactPhone:    &phone,
		Visibility:      visibility,
		NotifyRequested: notifyRequested,
	}
}

func createReport(t *testing.T, store *memory.Store, owner *entity.User, visibility string, notifyRequested bool) *entity.LostReport {
	t.Helper()
	uc := lostreport.NewCreateLostReportUseCase(store.LostReports(), store.Users(), &recordingSink{})
	out, err := uc.Execute(context.Background(), lostInput(owner, visibility, notifyRequested))
	require.NoError(t, err)
	return out.Report
}

func approve(t *testing.T, store *memory.Store, admin *entity.User, report *entity.LostReport) *entity.LostReport {
	t.Helper()
	status := string(valueobject.ReviewStatusApproved)
	uc := lostreport.NewModerateLostReportUseCase(store.LostReports(), store.Comments(), store.Users(), &recordingSink{})
	out, err := uc.Execute(context.Background(), lostreport.ModerateLostReportInput{
		Requester:    requesterOf(admin),
		ReportID:     report.ID,
		ReviewStatus: &status,
	})
	require.NoError(t, err)
	return out.Report
}
