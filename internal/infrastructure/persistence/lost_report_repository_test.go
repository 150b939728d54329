package persistence_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/persistence"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

var lostReportColumnNames = []string{
	"id", "owner_id", "item_name", "category", "description", "color", "brand", "unique_mark",
	"date_lost", "location_lost", "contact_phone", "visibility", "review_status", "publish_status", "status",
	"notify_requested", "admin_note", "closed_at", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestLostReportRepository_ListFeedQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewLostReportRepository(db)

	category := valueobject.CategoryElectronics
	since := time.Now().Add(-7 * 24 * time.Hour)
	owner := uuid.New()
	closedAt := time.Now().Add(-time.Hour)

	where := "publish_status = 'PUBLISHED' AND review_status = 'APPROVED' AND visibility = 'CAMPUS' AND " +
		"(status <> 'CLOSED' OR closed_at >= $1) AND category = $2 AND owner_id = ANY($3::uuid[])"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM lost_reports WHERE "+where)).
		WithArgs(since, string(category), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`(?s)SELECT .* FROM lost_reports WHERE ` + regexp.QuoteMeta(where) +
		` ORDER BY created_at DESC LIMIT \$4 OFFSET \$5`).
		WithArgs(since, string(category), sqlmock.AnyArg(), 12, 0).
		WillReturnRows(sqlmock.NewRows(lostReportColumnNames).AddRow(
			uuid.New().String(), owner.String(), "Blue Earbuds", "Electronics", "Blue wireless earbuds", nil, nil, nil,
			time.Now().Add(-48*time.Hour), "Library", nil, "CAMPUS", "APPROVED", "PUBLISHED", "CLOSED",
			false, nil, closedAt, time.Now(), time.Now(),
		))

	reports, total, err := repo.ListFeed(context.Background(), repository.FeedFilter{
		ClosedSince: since,
		Category:    &category,
		OwnerIDs:    []uuid.UUID{owner},
		Limit:       12,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, reports, 1)
	assert.Equal(t, owner, reports[0].OwnerID)
	assert.Equal(t, valueobject.ReportStatusClosed, reports[0].Status)
	require.NotNil(t, reports[0].ClosedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLostReportRepository_ListFeedWithoutOptionalFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewLostReportRepository(db)
	since := time.Now()

	where := "publish_status = 'PUBLISHED' AND review_status = 'APPROVED' AND visibility = 'CAMPUS' AND " +
		"(status <> 'CLOSED' OR closed_at >= $1)"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM lost_reports WHERE "+where)).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`(?s)SELECT .* FROM lost_reports WHERE ` + regexp.QuoteMeta(where) +
		` ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(since, 5, 10).
		WillReturnRows(sqlmock.NewRows(lostReportColumnNames))

	reports, total, err := repo.ListFeed(context.Background(), repository.FeedFilter{
		ClosedSince: since,
		Limit:       5,
		Offset:      10,
	})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, reports)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLostReportRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewLostReportRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`(?s)SELECT .* FROM lost_reports WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), id)

	assert.ErrorIs(t, err, apperror.ErrLostReportNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLostReportRepository_UpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewLostReportRepository(db)

	mock.ExpectExec(`UPDATE lost_reports`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), newLostReport(t))

	assert.ErrorIs(t, err, apperror.ErrLostReportNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
