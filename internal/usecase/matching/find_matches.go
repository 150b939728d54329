package matching

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type FindMatchesUseCase struct {
	lostRepo  repository.LostReportRepository
	foundRepo repository.FoundItemRepository
}

func NewFindMatchesUseCase(lostRepo repository.LostReportRepository, foundRepo repository.FoundItemRepository) *FindMatchesUseCase {
	return &FindMatchesUseCase{
		lostRepo:  lostRepo,
		foundRepo: foundRepo,
	}
}

func (uc *FindMatchesUseCase) Execute(ctx context.Context, reportID uuid.UUID, requester entity.Requester) ([]*entity.FoundItem, error) {
	report, err := uc.lostRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if !report.IsOwnedBy(requester.UserID) && !requester.IsAdmin() {
		return nil, apperror.New(apperror.ErrCodeForbidden, "смотреть совпадения может только владелец заявки")
	}

	now := time.Now()
	candidates, err := uc.foundRepo.FindCandidates(ctx, report.Category, now.Add(-Window))
	if err != nil {
		return nil, err
	}

	return Match(report, candidates, now), nil
}
