package lostreport

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/pagination"
)

const (
	DefaultMineLimit  = 5
	DefaultFeedLimit  = 12
	DefaultAdminLimit = 20

	ScopeAll   = "all"
	ScopeBlock = "block"
)

type ListMyLostReportsUseCase struct {
	lostRepo repository.LostReportRepository
}

func NewListMyLostReportsUseCase(lostRepo repository.LostReportRepository) *ListMyLostReportsUseCase {
	return &ListMyLostReportsUseCase{lostRepo: lostRepo}
}

func (uc *ListMyLostReportsUseCase) Execute(ctx context.Context, requester entity.Requester, params pagination.Params) (pagination.Page[*entity.LostReport], error) {
	params = params.Normalize(DefaultMineLimit)
	reports, total, err := uc.lostRepo.FindByOwner(ctx, requester.UserID, params.Limit, params.Offset())
	if err != nil {
		return pagination.Page[*entity.LostReport]{}, err
	}
	return pagination.NewPage(reports, total, params), nil
}

type ListNearbyInput struct {
	Requester  entity.Requester
	Scope      string
	Category   string
	Pagination pagination.Params
}

type ListNearbyUseCase struct {
	lostRepo repository.LostReportRepository
	userRepo repository.UserRepository
}

func NewListNearbyUseCase(lostRepo repository.LostReportRepository, userRepo repository.UserRepository) *ListNearbyUseCase {
	return &ListNearbyUseCase{
		lostRepo: lostRepo,
		userRepo: userRepo,
	}
}

func (uc *ListNearbyUseCase) Execute(ctx context.Context, input ListNearbyInput) (pagination.Page[*entity.LostReport], error) {
	params := input.Pagination.Normalize(DefaultFeedLimit)

	filter := repository.FeedFilter{
		ClosedSince: time.Now().Add(-entity.FeedClosedRetention),
		Limit:       params.Limit,
		Offset:      params.Offset(),
	}

	if input.Category != "" && input.Category != "all" {
		category, err := valueobject.NewCategory(input.Category)
		if err != nil {
			return pagination.Page[*entity.LostReport]{}, err
		}
		filter.Category = &category
	}

	switch input.Scope {
	case "", ScopeAll:
	case ScopeBlock:
		owners, err := uc.blockOwners(ctx, input.Requester.UserID)
		if err != nil {
			return pagination.Page[*entity.LostReport]{}, err
		}
		filter.OwnerIDs = owners
	default:
		return pagination.Page[*entity.LostReport]{}, apperror.Field("scope", "scope должен быть all или block")
	}

	reports, total, err := uc.lostRepo.ListFeed(ctx, filter)
	if err != nil {
		return pagination.Page[*entity.LostReport]{}, err
	}
	return pagination.NewPage(reports, total, params), nil
}

// blockOwners возвращает владельцев из корпуса зрителя. Без корпуса лента общая (nil).
func (uc *ListNearbyUseCase) blockOwners(ctx context.Context, requesterID uuid.UUID) ([]uuid.UUID, error) {
	me, err := uc.userRepo.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if me.Block == "" {
		return nil, nil
	}

	neighbours, err := uc.userRepo.FindByBlock(ctx, me.Block)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(neighbours))
	for _, u := range neighbours {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

type ListLostReportsInput struct {
	Status       string
	Visibility   string
	ReviewStatus string
	Pagination   pagination.Params
}

// ListLostReportsUseCase - список для модераторов с фильтрами.
type ListLostReportsUseCase struct {
	lostRepo repository.LostReportRepository
}

func NewListLostReportsUseCase(lostRepo repository.LostReportRepository) *ListLostReportsUseCase {
	return &ListLostReportsUseCase{lostRepo: lostRepo}
}

func (uc *ListLostReportsUseCase) Execute(ctx context.Context, requester entity.Requester, input ListLostReportsInput) (pagination.Page[*entity.LostReport], error) {
	if !requester.IsModerator() {
		return pagination.Page[*entity.LostReport]{}, apperror.ErrForbidden
	}

	params := input.Pagination.Normalize(DefaultAdminLimit)
	filter := repository.LostReportFilter{Limit: params.Limit, Offset: params.Offset()}

	if input.Status != "" {
		status, err := valueobject.NewReportStatus(input.Status)
		if err != nil {
			return pagination.Page[*entity.LostReport]{}, err
		}
		filter.Status = &status
	}
	if input.Visibility != "" {
		visibility, err := valueobject.NewVisibility(input.Visibility)
		if err != nil {
			return pagination.Page[*entity.LostReport]{}, err
		}
		filter.Visibility = &visibility
	}
	if input.ReviewStatus != "" {
		review, err := valueobject.NewReviewStatus(input.ReviewStatus)
		if err != nil {
			return pagination.Page[*entity.LostReport]{}, err
		}
		filter.ReviewStatus = &review
	}

	reports, total, err := uc.lostRepo.List(ctx, filter)
	if err != nil {
		return pagination.Page[*entity.LostReport]{}, err
	}
	return pagination.NewPage(reports, total, params), nil
}
