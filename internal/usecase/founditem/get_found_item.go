package founditem

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/pagination"
)

const DefaultBrowseLimit = 12

type GetFoundItemUseCase struct {
	foundRepo repository.FoundItemRepository
}

func NewGetFoundItemUseCase(foundRepo repository.FoundItemRepository) *GetFoundItemUseCase {
	return &GetFoundItemUseCase{foundRepo: foundRepo}
}

func (uc *GetFoundItemUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.FoundItem, error) {
	return uc.foundRepo.FindByID(ctx, id)
}

type BrowseFoundItemsInput struct {
	Search     string
	Category   string
	Location   string
	Pagination pagination.Params
}

type BrowseFoundItemsUseCase struct {
	foundRepo repository.FoundItemRepository
}

func NewBrowseFoundItemsUseCase(foundRepo repository.FoundItemRepository) *BrowseFoundItemsUseCase {
	return &BrowseFoundItemsUseCase{foundRepo: foundRepo}
}

func (uc *BrowseFoundItemsUseCase) Execute(ctx context.Context, input BrowseFoundItemsInput) (pagination.Page[*entity.FoundItem], error) {
	params := input.Pagination.Normalize(DefaultBrowseLimit)
	filter := repository.FoundItemFilter{
		Search:   strings.TrimSpace(input.Search),
		Location: strings.TrimSpace(input.Location),
		Limit:    params.Limit,
		Offset:   params.Offset(),
	}

	if input.Category != "" {
		category, err := valueobject.NewCategory(input.Category)
		if err != nil {
			return pagination.Page[*entity.FoundItem]{}, err
		}
		filter.Category = &category
	}

	items, total, err := uc.foundRepo.List(ctx, filter)
	if err != nil {
		return pagination.Page[*entity.FoundItem]{}, err
	}
	return pagination.NewPage(items, total, params), nil
}
