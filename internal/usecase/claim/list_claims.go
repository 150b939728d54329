package claim

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/pagination"
)

const DefaultAdminLimit = 20

type ListMyClaimsUseCase struct {
	claimRepo repository.ClaimRepository
}

func NewListMyClaimsUseCase(claimRepo repository.ClaimRepository) *ListMyClaimsUseCase {
	return &ListMyClaimsUseCase{claimRepo: claimRepo}
}

func (uc *ListMyClaimsUseCase) Execute(ctx context.Context, requester entity.Requester) ([]*entity.Claim, error) {
	return uc.claimRepo.FindByClaimant(ctx, requester.UserID)
}

type ListFoundItemClaimsUseCase struct {
	claimRepo repository.ClaimRepository
	foundRepo repository.FoundItemRepository
}

func NewListFoundItemClaimsUseCase(claimRepo repository.ClaimRepository, foundRepo repository.FoundItemRepository) *ListFoundItemClaimsUseCase {
	return &ListFoundItemClaimsUseCase{
		claimRepo: claimRepo,
		foundRepo: foundRepo,
	}
}

func (uc *ListFoundItemClaimsUseCase) Execute(ctx context.Context, requester entity.Requester, foundItemID uuid.UUID) ([]*entity.Claim, error) {
	if !requester.IsModerator() {
		return nil, apperror.ErrForbidden
	}
	if _, err := uc.foundRepo.FindByID(ctx, foundItemID); err != nil {
		return nil, err
	}
	return uc.claimRepo.FindByFoundItem(ctx, foundItemID)
}

type ListClaimsInput struct {
	Status     string
	Pagination pagination.Params
}

type ListClaimsUseCase struct {
	claimRepo repository.ClaimRepository
}

func NewListClaimsUseCase(claimRepo repository.ClaimRepository) *ListClaimsUseCase {
	return &ListClaimsUseCase{claimRepo: claimRepo}
}

func (uc *ListClaimsUseCase) Execute(ctx context.Context, requester entity.Requester, input ListClaimsInput) (pagination.Page[*entity.Claim], error) {
	if !requester.IsModerator() {
		return pagination.Page[*entity.Claim]{}, apperror.ErrForbidden
	}

	params := input.Pagination.Normalize(DefaultAdminLimit)
	filter := repository.ClaimFilter{Limit: params.Limit, Offset: params.Offset()}
	if input.Status != "" {
		status, err := valueobject.NewClaimStatus(input.Status)
		if err != nil {
			return pagination.Page[*entity.Claim]{}, err
		}
		filter.Status = &status
	}

	claims, total, err := uc.claimRepo.List(ctx, filter)
	if err != nil {
		return pagination.Page[*entity.Claim]{}, err
	}
	return pagination.NewPage(claims, total, params), nil
}
