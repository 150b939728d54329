package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

const claimColumns = `id, claimant_id, found_item_id, message, status, pickup_instructions,
	resolved_by, resolved_at, created_at, updated_at`

type claimRow struct {
	ID                 uuid.UUID  `db:"id"`
	ClaimantID         uuid.UUID  `db:"claimant_id"`
	FoundItemID        uuid.UUID  `db:"found_item_id"`
	Message            string     `db:"message"`
	Status             string     `db:"status"`
	PickupInstructions *string    `db:"pickup_instructions"`
	ResolvedBy         *uuid.UUID `db:"resolved_by"`
	ResolvedAt         *time.Time `db:"resolved_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (r claimRow) toEntity() *entity.Claim {
	return &entity.Claim{
		ID:                 r.ID,
		ClaimantID:         r.ClaimantID,
		FoundItemID:        r.FoundItemID,
		Message:            r.Message,
		Status:             valueobject.ClaimStatus(r.Status),
		PickupInstructions: r.PickupInstructions,
		ResolvedBy:         r.ResolvedBy,
		ResolvedAt:         r.ResolvedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

type ClaimRepository struct {
	db *sqlx.DB
}

func NewClaimRepository(db *sqlx.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

func (r *ClaimRepository) Create(ctx context.Context, claim *entity.Claim) error {
	query := `
		INSERT INTO claims (` + claimColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		claim.ID,
		claim.ClaimantID,
		claim.FoundItemID,
		claim.Message,
		string(claim.Status),
		claim.PickupInstructions,
		claim.ResolvedBy,
		claim.ResolvedAt,
		claim.CreatedAt,
		claim.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.ErrDuplicateClaim
		}
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать заявку на вещь")
	}
	return nil
}

func (r *ClaimRepository) Update(ctx context.Context, claim *entity.Claim) error {
	query := `
		UPDATE claims
		SET status = $2, pickup_instructions = $3, resolved_by = $4, resolved_at = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		claim.ID,
		string(claim.Status),
		claim.PickupInstructions,
		claim.ResolvedBy,
		claim.ResolvedAt,
		claim.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить заявку на вещь")
	}
	return checkAffected(result, apperror.ErrClaimNotFound)
}

func (r *ClaimRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Claim, error) {
	var row claimRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+claimColumns+` FROM claims WHERE id = $1`, id); err != nil {
		return nil, notFoundOr(err, apperror.ErrClaimNotFound, "не удалось получить заявку на вещь")
	}
	return row.toEntity(), nil
}

func (r *ClaimRepository) FindByClaimantAndFoundItem(ctx context.Context, claimantID, foundItemID uuid.UUID) (*entity.Claim, error) {
	var row claimRow
	query := `SELECT ` + claimColumns + ` FROM claims WHERE claimant_id = $1 AND found_item_id = $2`
	if err := r.db.GetContext(ctx, &row, query, claimantID, foundItemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось проверить заявку на вещь")
	}
	return row.toEntity(), nil
}

func (r *ClaimRepository) FindByClaimant(ctx context.Context, claimantID uuid.UUID) ([]*entity.Claim, error) {
	return r.selectClaims(ctx, `SELECT `+claimColumns+` FROM claims WHERE claimant_id = $1 ORDER BY created_at DESC`, claimantID)
}

func (r *ClaimRepository) FindByFoundItem(ctx context.Context, foundItemID uuid.UUID) ([]*entity.Claim, error) {
	return r.selectClaims(ctx, `SELECT `+claimColumns+` FROM claims WHERE found_item_id = $1 ORDER BY created_at DESC`, foundItemID)
}

func (r *ClaimRepository) List(ctx context.Context, filter repository.ClaimFilter) ([]*entity.Claim, int, error) {
	total, err := r.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var claims []*entity.Claim
	if filter.Status != nil {
		claims, err = r.selectClaims(ctx, `SELECT `+claimColumns+` FROM claims WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
			string(*filter.Status), filter.Limit, filter.Offset)
	} else {
		claims, err = r.selectClaims(ctx, `SELECT `+claimColumns+` FROM claims ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
			filter.Limit, filter.Offset)
	}
	if err != nil {
		return nil, 0, err
	}
	return claims, total, nil
}

func (r *ClaimRepository) Count(ctx context.Context, filter repository.ClaimFilter) (int, error) {
	var (
		total int
		err   error
	)
	if filter.Status != nil {
		err = r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM claims WHERE status = $1`, string(*filter.Status))
	} else {
		err = r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM claims`)
	}
	if err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать заявки на вещи")
	}
	return total, nil
}

func (r *ClaimRepository) selectClaims(ctx context.Context, query string, args ...interface{}) ([]*entity.Claim, error) {
	var rows []claimRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить заявки на вещи")
	}
	claims := make([]*entity.Claim, 0, len(rows))
	for _, row := range rows {
		claims = append(claims, row.toEntity())
	}
	return claims, nil
}
