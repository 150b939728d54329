package claim_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/memory"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
)

type recordingSink struct {
	mu       sync.Mutex
	requests []notify.Request
}

func (s *recordingSink) Notify(ctx context.Context, req notify.Request) notify.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return notify.Result{RecipientID: req.Recipient.ID, Type: req.Type, InApp: notify.StatusSent, Email: notify.StatusSent}
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

func requesterOf(u *entity.User) entity.Requester {
	return entity.Requester{UserID: u.ID, Role: u.Role}
}

func addFoundItem(t *testing.T, store *memory.Store, linked *uuid.UUID) *entity.FoundItem {
	t.Helper()
	item, err := entity.NewFoundItem(nil, entity.FoundItemDetails{
		ItemName:           "Blue Earbuds",
		Category:           valueobject.CategoryElectronics,
		Description:        "Wireless earbuds in a blue case",
		DateFound:          time.Now(),
		LocationFound:      "Library",
		LinkedLostReportID: linked,
	})
	require.NoError(t, err)
	require.NoError(t, store.FoundItems().Create(context.Background(), item))
	return item
}

func addLostReport(t *testing.T, store *memory.Store, owner *entity.User) *entity.LostReport {
	t.Helper()
	r, err := entity.NewLostReport(owner.ID, entity.LostReportDetails{
		ItemName:     "Earbuds",
		Category:     valueobject.CategoryElectronics,
		Description:  "Blue earbuds",
		DateLost:     time.Now().Add(-time.Hour),
		LocationLost: "Library",
		Visibility:   valueobject.VisibilityCampus,
	})
	require.NoError(t, err)
	require.NoError(t, store.LostReports().Create(context.Background(), r))
	return r
}
