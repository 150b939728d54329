package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	// FindByTarget возвращает комментарии в порядке создания.
	FindByTarget(ctx context.Context, target valueobject.ItemRef) ([]*entity.Comment, error)
	DeleteByTarget(ctx context.Context, target valueobject.ItemRef) (int64, error)
}
