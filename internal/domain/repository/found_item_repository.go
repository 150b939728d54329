package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
)

type FoundItemRepository interface {
	Create(ctx context.Context, item *entity.FoundItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoundItem, error)
	List(ctx context.Context, filter FoundItemFilter) ([]*entity.FoundItem, int, error)
	// FindCandidates возвращает вещи категории, найденные не раньше since.
	FindCandidates(ctx context.Context, category valueobject.Category, since time.Time) ([]*entity.FoundItem, error)
	Count(ctx context.Context) (int, error)
}

type FoundItemFilter struct {
	Search   string
	Category *valueobject.Category
	Location string
	Limit    int
	Offset   int
}
