package claim

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type CreateClaimInput struct {
	Requester   entity.Requester
	FoundItemID uuid.UUID
	Message     string
}

type CreateClaimOutput struct {
	Claim         *entity.Claim
	Notifications notify.Deliveries
}

type CreateClaimUseCase struct {
	claimRepo repository.ClaimRepository
	foundRepo repository.FoundItemRepository
	lostRepo  repository.LostReportRepository
	userRepo  repository.UserRepository
	sink      notify.Sink
}

func NewCreateClaimUseCase(
	claimRepo repository.ClaimRepository,
	foundRepo repository.FoundItemRepository,
	lostRepo repository.LostReportRepository,
	userRepo repository.UserRepository,
	sink notify.Sink,
) *CreateClaimUseCase {
	return &CreateClaimUseCase{
		claimRepo: claimRepo,
		foundRepo: foundRepo,
		lostRepo:  lostRepo,
		userRepo:  userRepo,
		sink:      sink,
	}
}

func (uc *CreateClaimUseCase) Execute(ctx context.Context, input CreateClaimInput) (*CreateClaimOutput, error) {
	claim, err := entity.NewClaim(input.Requester.UserID, input.FoundItemID, input.Message)
	if err != nil {
		return nil, err
	}

	found, err := uc.foundRepo.FindByID(ctx, input.FoundItemID)
	if err != nil {
		return nil, err
	}

	// Проверка и вставка не атомарны; уникальный индекс в хранилище закрывает гонку.
	existing, err := uc.claimRepo.FindByClaimantAndFoundItem(ctx, input.Requester.UserID, found.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateClaim
	}

	if err := uc.claimRepo.Create(ctx, claim); err != nil {
		if apperror.IsConflict(err) {
			return nil, apperror.ErrDuplicateClaim
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить заявку на вещь")
	}

	out := &CreateClaimOutput{Claim: claim, Notifications: notify.Deliveries{}}

	var claimant *entity.User
	out.Notifications = append(out.Notifications, notify.ToUser(ctx, uc.sink, uc.userRepo, input.Requester.UserID,
		func(recipient *entity.User) notify.Request {
			claimant = recipient
			return notify.ClaimRequested(recipient, found)
		}))

	if claimant == nil {
		return out, nil
	}
	if owner := uc.reportOwner(ctx, found); owner != nil && owner.ID != claimant.ID {
		out.Notifications = append(out.Notifications, uc.sink.Notify(ctx, notify.ClaimFiledForOwner(owner, claimant, found)))
	}

	return out, nil
}

// reportOwner - автор заявки о пропаже, с которой сопоставлена вещь.
func (uc *CreateClaimUseCase) reportOwner(ctx context.Context, found *entity.FoundItem) *entity.User {
	if !found.IsLinked() {
		return nil
	}
	report, err := uc.lostRepo.FindByID(ctx, *found.LinkedLostReportID)
	if err != nil {
		return nil
	}
	owner, err := uc.userRepo.FindByID(ctx, report.OwnerID)
	if err != nil {
		return nil
	}
	return owner
}
