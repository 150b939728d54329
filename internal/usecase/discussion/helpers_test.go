package discussion_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/memory"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/discussion"
)

type recordingSink struct {
	requests []notify.Request
}

func (s *recordingSink) Notify(ctx context.Context, req notify.Request) notify.Result {
	s.requests = append(s.requests, req)
	return notify.Result{RecipientID: req.Recipient.ID, Type: req.Type, InApp: notify.StatusSent, Email: notify.StatusSent}
}

func (s *recordingSink) recipients() []uuid.UUID {
	var out []uuid.UUID
	for _, r := range s.requests {
		out = append(out, r.Recipient.ID)
	}
	return out
}

type fixture struct {
	store *memory.Store
	sink  *recordingSink
	post  *discussion.PostCommentUseCase
	list  *discussion.ListCommentsUseCase
}

func newFixture(words ...string) *fixture {
	store := memory.NewStore()
	sink := &recordingSink{}
	return &fixture{
		store: store,
		sink:  sink,
		post: discussion.NewPostCommentUseCase(store.Comments(), store.LostReports(), store.FoundItems(), store.Users(),
			discussion.NewTextFilter(words), sink),
		list: discussion.NewListCommentsUseCase(store.Comments(), store.LostReports(), store.FoundItems(), store.Users()),
	}
}

func (f *fixture) user(t *testing.T, name string, role valueobject.Role) *entity.User {
	t.Helper()
	block, dept := "", ""
	if role == valueobject.RoleStudent {
		block, dept = "A", "CSE"
	}
	u, err := entity.NewUser(name, name+"@campus.test", role, block, dept)
	require.NoError(t, err)
	require.NoError(t, f.store.Users().Create(context.Background(), u))
	return u
}

// publishedReport создаёт опубликованную заявку, видимую всему кампусу.
func (f *fixture) publishedReport(t *testing.T, owner *entity.User) *entity.LostReport {
	t.Helper()
	r, err := entity.NewLostReport(owner.ID, entity.LostReportDetails{
		ItemName:     "Black Wallet",
		Category:     valueobject.CategoryWallet,
		Description:  "Black leather wallet with student ID",
		DateLost:     time.Now().Add(-time.Hour),
		LocationLost: "Canteen",
		Visibility:   valueobject.VisibilityCampus,
	})
	require.NoError(t, err)
	approved := valueobject.ReviewStatusApproved
	_, err = r.Moderate(entity.Moderation{ReviewStatus: &approved}, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.store.LostReports().Create(context.Background(), r))
	return r
}

func (f *fixture) foundItem(t *testing.T, reporter *entity.User) *entity.FoundItem {
	t.Helper()
	var by *uuid.UUID
	if reporter != nil {
		id := reporter.ID
		by = &id
	}
	item, err := entity.NewFoundItem(by, entity.FoundItemDetails{
		ItemName:      "Umbrella",
		Category:      valueobject.CategoryOther,
		Description:   "Red umbrella left at the gate",
		DateFound:     time.Now(),
		LocationFound: "Main gate",
	})
	require.NoError(t, err)
	require.NoError(t, f.store.FoundItems().Create(context.Background(), item))
	return item
}

func requesterOf(u *entity.User) entity.Requester {
	return entity.Requester{UserID: u.ID, Role: u.Role}
}
