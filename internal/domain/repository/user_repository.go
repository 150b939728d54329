package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
)

// UserRepository - справочник пользователей. Регистрация и редактирование профиля живут вне ядра.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByBlock(ctx context.Context, block string) ([]*entity.User, error)
	FindByRoles(ctx context.Context, roles ...valueobject.Role) ([]*entity.User, error)
}
