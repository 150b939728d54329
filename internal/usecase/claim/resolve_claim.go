package claim

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type ResolveClaimInput struct {
	Requester          entity.Requester
	ClaimID            uuid.UUID
	Status             string
	PickupInstructions string
}

type ResolveClaimOutput struct {
	Claim         *entity.Claim
	Notifications notify.Deliveries
}

// ResolveClaimUseCase не трогает найденную вещь и конкурирующие заявки:
// каждая заявка решается отдельно.
type ResolveClaimUseCase struct {
	claimRepo repository.ClaimRepository
	foundRepo repository.FoundItemRepository
	userRepo  repository.UserRepository
	sink      notify.Sink
}

func NewResolveClaimUseCase(
	claimRepo repository.ClaimRepository,
	foundRepo repository.FoundItemRepository,
	userRepo repository.UserRepository,
	sink notify.Sink,
) *ResolveClaimUseCase {
	return &ResolveClaimUseCase{
		claimRepo: claimRepo,
		foundRepo: foundRepo,
		userRepo:  userRepo,
		sink:      sink,
	}
}

func (uc *ResolveClaimUseCase) Execute(ctx context.Context, input ResolveClaimInput) (*ResolveClaimOutput, error) {
	if !input.Requester.IsModerator() {
		return nil, apperror.New(apperror.ErrCodeForbidden, "решать заявки могут только сотрудники")
	}

	status, err := valueobject.NewClaimStatus(input.Status)
	if err != nil {
		return nil, err
	}
	if !status.IsResolution() {
		return nil, apperror.Field("status", "статус должен быть APPROVED или REJECTED")
	}

	claim, err := uc.claimRepo.FindByID(ctx, input.ClaimID)
	if err != nil {
		return nil, err
	}

	found, err := uc.foundRepo.FindByID(ctx, claim.FoundItemID)
	if err != nil {
		return nil, err
	}

	if err := claim.Resolve(status, input.PickupInstructions, input.Requester.UserID, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.claimRepo.Update(ctx, claim); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить заявку на вещь")
	}

	result := notify.ToUser(ctx, uc.sink, uc.userRepo, claim.ClaimantID, func(claimant *entity.User) notify.Request {
		if status == valueobject.ClaimStatusApproved {
			return notify.ClaimApproved(claimant, found, claim)
		}
		return notify.ClaimRejected(claimant, found)
	})

	return &ResolveClaimOutput{
		Claim:         claim,
		Notifications: notify.Deliveries{result},
	}, nil
}
