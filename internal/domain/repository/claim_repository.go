package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
)

type ClaimRepository interface {
	// Create возвращает apperror с кодом CONFLICT при нарушении уникальности (claimant, found_item).
	Create(ctx context.Context, claim *entity.Claim) error
	Update(ctx context.Context, claim *entity.Claim) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Claim, error)
	// FindByClaimantAndFoundItem возвращает nil, nil если заявки нет.
	FindByClaimantAndFoundItem(ctx context.Context, claimantID, foundItemID uuid.UUID) (*entity.Claim, error)
	FindByClaimant(ctx context.Context, claimantID uuid.UUID) ([]*entity.Claim, error)
	FindByFoundItem(ctx context.Context, foundItemID uuid.UUID) ([]*entity.Claim, error)
	List(ctx context.Context, filter ClaimFilter) ([]*entity.Claim, int, error)
	Count(ctx context.Context, filter ClaimFilter) (int, error)
}

type ClaimFilter struct {
	Status *valueobject.ClaimStatus
	Limit  int
	Offset int
}
