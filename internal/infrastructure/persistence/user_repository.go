package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

const userColumns = `id, name, email, role, institutional_id, block, department, phone, alt_phone,
	email_notifications_enabled, notify_scope, is_approved, created_at, updated_at`

type userRow struct {
	ID                        uuid.UUID `db:"id"`
	Name                      string    `db:"name"`
	Email                     string    `db:"email"`
	Role                      string    `db:"role"`
	InstitutionalID           *string   `db:"institutional_id"`
	Block                     string    `db:"block"`
	Department                string    `db:"department"`
	Phone                     *string   `db:"phone"`
	AltPhone                  *string   `db:"alt_phone"`
	EmailNotificationsEnabled bool      `db:"email_notifications_enabled"`
	NotifyScope               string    `db:"notify_scope"`
	IsApproved                bool      `db:"is_approved"`
	CreatedAt                 time.Time `db:"created_at"`
	UpdatedAt                 time.Time `db:"updated_at"`
}

func (r userRow) toEntity() *entity.User {
	return &entity.User{
		ID:                        r.ID,
		Name:                      r.Name,
		Email:                     r.Email,
		Role:                      valueobject.Role(r.Role),
		InstitutionalID:           r.InstitutionalID,
		Block:                     r.Block,
		Department:                r.Department,
		Phone:                     r.Phone,
		AltPhone:                  r.AltPhone,
		EmailNotificationsEnabled: r.EmailNotificationsEnabled,
		NotifyScope:               valueobject.NotifyScope(r.NotifyScope),
		IsApproved:                r.IsApproved,
		CreatedAt:                 r.CreatedAt,
		UpdatedAt:                 r.UpdatedAt,
	}
}

// UserRepository читает справочник пользователей, который ведёт сервис учётных записей.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		string(user.Role),
		user.InstitutionalID,
		user.Block,
		user.Department,
		user.Phone,
		user.AltPhone,
		user.EmailNotificationsEnabled,
		string(user.NotifyScope),
		user.IsApproved,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.New(apperror.ErrCodeConflict, "пользователь с таким email уже существует")
		}
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать пользователя")
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE id = $1`, id); err != nil {
		return nil, notFoundOr(err, apperror.ErrUserNotFound, "не удалось получить пользователя")
	}
	return row.toEntity(), nil
}

func (r *UserRepository) FindByBlock(ctx context.Context, block string) ([]*entity.User, error) {
	return r.selectUsers(ctx, `SELECT `+userColumns+` FROM users WHERE block = $1`, block)
}

func (r *UserRepository) FindByRoles(ctx context.Context, roles ...valueobject.Role) ([]*entity.User, error) {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	return r.selectUsers(ctx, `SELECT `+userColumns+` FROM users WHERE role = ANY($1) ORDER BY created_at`, pq.Array(names))
}

func (r *UserRepository) selectUsers(ctx context.Context, query string, args ...interface{}) ([]*entity.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить пользователей")
	}
	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toEntity())
	}
	return users, nil
}
