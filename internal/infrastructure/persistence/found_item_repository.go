package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

const foundItemColumns = `id, item_name, category, description, color, brand, unique_mark,
	date_found, location_found, image_url, reported_by, linked_lost_report_id, created_at, updated_at`

type foundItemRow struct {
	ID                 uuid.UUID  `db:"id"`
	ItemName           string     `db:"item_name"`
	Category           string     `db:"category"`
	Description        string     `db:"description"`
	Color              *string    `db:"color"`
	Brand              *string    `db:"brand"`
	UniqueMark         *string    `db:"unique_mark"`
	DateFound          time.Time  `db:"date_found"`
	LocationFound      string     `db:"location_found"`
	ImageURL           *string    `db:"image_url"`
	ReportedBy         *uuid.UUID `db:"reported_by"`
	LinkedLostReportID *uuid.UUID `db:"linked_lost_report_id"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (r foundItemRow) toEntity() *entity.FoundItem {
	return &entity.FoundItem{
		ID:                 r.ID,
		ItemName:           r.ItemName,
		Category:           valueobject.Category(r.Category),
		Description:        r.Description,
		Color:              r.Color,
		Brand:              r.Brand,
		UniqueMark:         r.UniqueMark,
		DateFound:          r.DateFound,
		LocationFound:      r.LocationFound,
		ImageURL:           r.ImageURL,
		ReportedBy:         r.ReportedBy,
		LinkedLostReportID: r.LinkedLostReportID,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

type FoundItemRepository struct {
	db *sqlx.DB
}

func NewFoundItemRepository(db *sqlx.DB) *FoundItemRepository {
	return &FoundItemRepository{db: db}
}

func (r *FoundItemRepository) Create(ctx context.Context, item *entity.FoundItem) error {
	query := `
		INSERT INTO found_items (` + foundItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.ItemName,
		string(item.Category),
		item.Description,
		item.Color,
		item.Brand,
		item.UniqueMark,
		item.DateFound,
		item.LocationFound,
		item.ImageURL,
		item.ReportedBy,
		item.LinkedLostReportID,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить найденную вещь")
	}
	return nil
}

func (r *FoundItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoundItem, error) {
	var row foundItemRow
	query := `SELECT ` + foundItemColumns + ` FROM found_items WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, notFoundOr(err, apperror.ErrFoundItemNotFound, "не удалось получить найденную вещь")
	}
	return row.toEntity(), nil
}

func (r *FoundItemRepository) List(ctx context.Context, filter repository.FoundItemFilter) ([]*entity.FoundItem, int, error) {
	conditions := []string{"TRUE"}
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		conditions = append(conditions, fmt.Sprintf("(item_name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+escapeLike(filter.Location)+"%")
		conditions = append(conditions, fmt.Sprintf("location_found ILIKE $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM found_items WHERE `+where, args...); err != nil {
		return nil, 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать найденные вещи")
	}

	query := fmt.Sprintf(`SELECT %s FROM found_items WHERE %s ORDER BY date_found DESC LIMIT $%d OFFSET $%d`,
		foundItemColumns, where, len(args)+1, len(args)+2)

	var rows []foundItemRow
	if err := r.db.SelectContext(ctx, &rows, query, append(args, filter.Limit, filter.Offset)...); err != nil {
		return nil, 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить найденные вещи")
	}
	return foundItemsFromRows(rows), total, nil
}

func (r *FoundItemRepository) FindCandidates(ctx context.Context, category valueobject.Category, since time.Time) ([]*entity.FoundItem, error) {
	var rows []foundItemRow
	query := `SELECT ` + foundItemColumns + ` FROM found_items WHERE category = $1 AND date_found >= $2 ORDER BY date_found DESC`
	if err := r.db.SelectContext(ctx, &rows, query, string(category), since); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось подобрать найденные вещи")
	}
	return foundItemsFromRows(rows), nil
}

func (r *FoundItemRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM found_items`); err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать найденные вещи")
	}
	return total, nil
}

func foundItemsFromRows(rows []foundItemRow) []*entity.FoundItem {
	items := make([]*entity.FoundItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы ILIKE, чтобы поиск был буквальным.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
