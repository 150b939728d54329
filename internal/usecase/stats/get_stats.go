package stats

import (
	"context"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type Stats struct {
	TotalLost          int `json:"total_lost"`
	TotalFound         int `json:"total_found"`
	TotalClaims        int `json:"total_claims"`
	PendingClaims      int `json:"pending_claims"`
	PendingLostReviews int `json:"pending_lost_reviews"`
}

type GetStatsUseCase struct {
	lostRepo  repository.LostReportRepository
	foundRepo repository.FoundItemRepository
	claimRepo repository.ClaimRepository
}

func NewGetStatsUseCase(
	lostRepo repository.LostReportRepository,
	foundRepo repository.FoundItemRepository,
	claimRepo repository.ClaimRepository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		lostRepo:  lostRepo,
		foundRepo: foundRepo,
		claimRepo: claimRepo,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context, requester entity.Requester) (*Stats, error) {
	if !requester.IsModerator() {
		return nil, apperror.ErrForbidden
	}

	var (
		s   Stats
		err error
	)

	if s.TotalLost, err = uc.lostRepo.Count(ctx, repository.LostReportFilter{}); err != nil {
		return nil, err
	}
	pendingReview := valueobject.ReviewStatusPending
	if s.PendingLostReviews, err = uc.lostRepo.Count(ctx, repository.LostReportFilter{ReviewStatus: &pendingReview}); err != nil {
		return nil, err
	}
	if s.TotalFound, err = uc.foundRepo.Count(ctx); err != nil {
		return nil, err
	}
	if s.TotalClaims, err = uc.claimRepo.Count(ctx, repository.ClaimFilter{}); err != nil {
		return nil, err
	}
	pendingClaim := valueobject.ClaimStatusPending
	if s.PendingClaims, err = uc.claimRepo.Count(ctx, repository.ClaimFilter{Status: &pendingClaim}); err != nil {
		return nil, err
	}

	return &s, nil
}
