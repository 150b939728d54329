package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

const commentColumns = `id, item_type, item_id, text, author_id, is_system_message, parent_id, created_at`

type commentRow struct {
	ID              uuid.UUID  `db:"id"`
	ItemType        string     `db:"item_type"`
	ItemID          uuid.UUID  `db:"item_id"`
	Text            string     `db:"text"`
	AuthorID        *uuid.UUID `db:"author_id"`
	IsSystemMessage bool       `db:"is_system_message"`
	ParentID        *uuid.UUID `db:"parent_id"`
	CreatedAt       time.Time  `db:"created_at"`
}

func (r commentRow) toEntity() *entity.Comment {
	return &entity.Comment{
		ID:              r.ID,
		Target:          valueobject.ItemRef{Type: valueobject.ItemType(r.ItemType), ID: r.ItemID},
		Text:            r.Text,
		AuthorID:        r.AuthorID,
		IsSystemMessage: r.IsSystemMessage,
		ParentID:        r.ParentID,
		CreatedAt:       r.CreatedAt,
	}
}

type CommentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (` + commentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID,
		string(comment.Target.Type),
		comment.Target.ID,
		comment.Text,
		comment.AuthorID,
		comment.IsSystemMessage,
		comment.ParentID,
		comment.CreatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить комментарий")
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var row commentRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id); err != nil {
		return nil, notFoundOr(err, apperror.ErrCommentNotFound, "не удалось получить комментарий")
	}
	return row.toEntity(), nil
}

func (r *CommentRepository) FindByTarget(ctx context.Context, target valueobject.ItemRef) ([]*entity.Comment, error) {
	var rows []commentRow
	query := `SELECT ` + commentColumns + ` FROM comments WHERE item_type = $1 AND item_id = $2 ORDER BY created_at ASC, id ASC`
	if err := r.db.SelectContext(ctx, &rows, query, string(target.Type), target.ID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить комментарии")
	}
	comments := make([]*entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toEntity())
	}
	return comments, nil
}

func (r *CommentRepository) DeleteByTarget(ctx context.Context, target valueobject.ItemRef) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE item_type = $1 AND item_id = $2`, string(target.Type), target.ID)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить комментарии")
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось проверить результат удаления")
	}
	return deleted, nil
}
