package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/persistence"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

func newLostReport(t *testing.T) *entity.LostReport {
	t.Helper()
	r, err := entity.NewLostReport(uuid.New(), entity.LostReportDetails{
		ItemName:     "Earbuds",
		Category:     valueobject.CategoryElectronics,
		Description:  "Blue earbuds",
		DateLost:     time.Now().Add(-time.Hour),
		LocationLost: "Library",
		Visibility:   valueobject.VisibilityCampus,
	})
	require.NoError(t, err)
	return r
}

func newClaim(t *testing.T) *entity.Claim {
	t.Helper()
	c, err := entity.NewClaim(uuid.New(), uuid.New(), "mine")
	require.NoError(t, err)
	return c
}

func TestClaimRepository_CreateUniqueViolationIsDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewClaimRepository(db)

	mock.ExpectExec(`INSERT INTO claims`).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), newClaim(t))

	assert.ErrorIs(t, err, apperror.ErrDuplicateClaim)
	assert.Equal(t, apperror.ErrCodeConflict, apperror.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepository_CreateOtherErrorIsDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewClaimRepository(db)

	mock.ExpectExec(`INSERT INTO claims`).
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), newClaim(t))

	assert.Equal(t, apperror.ErrCodeDatabaseError, apperror.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
