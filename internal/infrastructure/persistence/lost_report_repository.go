package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

const lostReportColumns = `id, owner_id, item_name, category, description, color, brand, unique_mark,
	date_lost, location_lost, contact_phone, visibility, review_status, publish_status, status,
	notify_requested, admin_note, closed_at, created_at, updated_at`

type lostReportRow struct {
	ID              uuid.UUID  `db:"id"`
	OwnerID         uuid.UUID  `db:"owner_id"`
	ItemName        string     `db:"item_name"`
	Category        string     `db:"category"`
	Description     string     `db:"description"`
	Color           *string    `db:"color"`
	Brand           *string    `db:"brand"`
	UniqueMark      *string    `db:"unique_mark"`
	DateLost        time.Time  `db:"date_lost"`
	LocationLost    string     `db:"location_lost"`
	ContactPhone    *string    `db:"contact_phone"`
	Visibility      string     `db:"visibility"`
	ReviewStatus    string     `db:"review_status"`
	PublishStatus   string     `db:"publish_status"`
	Status          string     `db:"status"`
	NotifyRequested bool       `db:"notify_requested"`
	AdminNote       *string    `db:"admin_note"`
	ClosedAt        *time.Time `db:"closed_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (r lostReportRow) toEntity() *entity.LostReport {
	return &entity.LostReport{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		ItemName:        r.ItemName,
		Category:        valueobject.Category(r.Category),
		Description:     r.Description,
		Color:           r.Color,
		Brand:           r.Brand,
		UniqueMark:      r.UniqueMark,
		DateLost:        r.DateLost,
		LocationLost:    r.LocationLost,
		ContactPhone:    r.ContactPhone,
		Visibility:      valueobject.Visibility(r.Visibility),
		ReviewStatus:    valueobject.ReviewStatus(r.ReviewStatus),
		PublishStatus:   valueobject.PublishStatus(r.PublishStatus),
		Status:          valueobject.ReportStatus(r.Status),
		NotifyRequested: r.NotifyRequested,
		AdminNote:       r.AdminNote,
		ClosedAt:        r.ClosedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type LostReportRepository struct {
	db *sqlx.DB
}

func NewLostReportRepository(db *sqlx.DB) *LostReportRepository {
	return &LostReportRepository{db: db}
}

func (r *LostReportRepository) Create(ctx context.Context, report *entity.LostReport) error {
	query := `
		INSERT INTO lost_reports (` + lostReportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`
	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.OwnerID,
		report.ItemName,
		string(report.Category),
		report.Description,
		report.Color,
		report.Brand,
		report.UniqueMark,
		report.DateLost,
		report.LocationLost,
		report.ContactPhone,
		string(report.Visibility),
		string(report.ReviewStatus),
		string(report.PublishStatus),
		string(report.Status),
		report.NotifyRequested,
		report.AdminNote,
		report.ClosedAt,
		report.CreatedAt,
		report.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать заявку о пропаже")
	}
	return nil
}

func (r *LostReportRepository) Update(ctx context.Context, report *entity.LostReport) error {
	query := `
		UPDATE lost_reports
		SET visibility = $2, review_status = $3, publish_status = $4, status = $5,
		    admin_note = $6, closed_at = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		report.ID,
		string(report.Visibility),
		string(report.ReviewStatus),
		string(report.PublishStatus),
		string(report.Status),
		report.AdminNote,
		report.ClosedAt,
		report.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить заявку о пропаже")
	}
	return checkAffected(result, apperror.ErrLostReportNotFound)
}

func (r *LostReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LostReport, error) {
	var row lostReportRow
	query := `SELECT ` + lostReportColumns + ` FROM lost_reports WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, notFoundOr(err, apperror.ErrLostReportNotFound, "не удалось получить заявку о пропаже")
	}
	return row.toEntity(), nil
}

func (r *LostReportRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.LostReport, int, error) {
	return r.selectPage(ctx, "owner_id = $1", []interface{}{ownerID}, limit, offset)
}

// ListFeed отдаёт опубликованные заявки; закрытые - только недавно закрытые.
func (r *LostReportRepository) ListFeed(ctx context.Context, filter repository.FeedFilter) ([]*entity.LostReport, int, error) {
	conditions := []string{
		"publish_status = 'PUBLISHED'",
		"review_status = 'APPROVED'",
		"visibility = 'CAMPUS'",
		"(status <> 'CLOSED' OR closed_at >= $1)",
	}
	args := []interface{}{filter.ClosedSince}

	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.OwnerIDs != nil {
		args = append(args, pq.Array(uuidStrings(filter.OwnerIDs)))
		conditions = append(conditions, fmt.Sprintf("owner_id = ANY($%d::uuid[])", len(args)))
	}

	return r.selectPage(ctx, strings.Join(conditions, " AND "), args, filter.Limit, filter.Offset)
}

func (r *LostReportRepository) List(ctx context.Context, filter repository.LostReportFilter) ([]*entity.LostReport, int, error) {
	where, args := lostReportWhere(filter)
	return r.selectPage(ctx, where, args, filter.Limit, filter.Offset)
}

func (r *LostReportRepository) Count(ctx context.Context, filter repository.LostReportFilter) (int, error) {
	where, args := lostReportWhere(filter)
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM lost_reports WHERE `+where, args...); err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать заявки о пропаже")
	}
	return total, nil
}

func (r *LostReportRepository) selectPage(ctx context.Context, where string, args []interface{}, limit, offset int) ([]*entity.LostReport, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM lost_reports WHERE `+where, args...); err != nil {
		return nil, 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать заявки о пропаже")
	}

	query := fmt.Sprintf(`SELECT %s FROM lost_reports WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		lostReportColumns, where, len(args)+1, len(args)+2)

	var rows []lostReportRow
	if err := r.db.SelectContext(ctx, &rows, query, append(args, limit, offset)...); err != nil {
		return nil, 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить заявки о пропаже")
	}

	reports := make([]*entity.LostReport, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, row.toEntity())
	}
	return reports, total, nil
}

func lostReportWhere(filter repository.LostReportFilter) (string, []interface{}) {
	conditions := []string{"TRUE"}
	var args []interface{}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Visibility != nil {
		args = append(args, string(*filter.Visibility))
		conditions = append(conditions, fmt.Sprintf("visibility = $%d", len(args)))
	}
	if filter.ReviewStatus != nil {
		args = append(args, string(*filter.ReviewStatus))
		conditions = append(conditions, fmt.Sprintf("review_status = $%d", len(args)))
	}
	return strings.Join(conditions, " AND "), args
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
