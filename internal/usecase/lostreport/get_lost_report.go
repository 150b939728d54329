package lostreport

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

// OwnerInfo - публичная карточка владельца заявки.
type OwnerInfo struct {
	ID         uuid.UUID
	Name       string
	Block      string
	Department string
	Email      *string
	Phone      *string
	AltPhone   *string
}

// ReportView - заявка, отфильтрованная под конкретного зрителя.
type ReportView struct {
	Report       *entity.LostReport
	Owner        *OwnerInfo
	ShowContacts bool
}

type GetLostReportUseCase struct {
	lostRepo repository.LostReportRepository
	userRepo repository.UserRepository
}

func NewGetLostReportUseCase(lostRepo repository.LostReportRepository, userRepo repository.UserRepository) *GetLostReportUseCase {
	return &GetLostReportUseCase{
		lostRepo: lostRepo,
		userRepo: userRepo,
	}
}

func (uc *GetLostReportUseCase) Execute(ctx context.Context, reportID uuid.UUID, requester entity.Requester) (*ReportView, error) {
	report, err := uc.lostRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	// Неопубликованные заявки для посторонних не существуют.
	if !report.CanBeViewedBy(requester, time.Now()) {
		return nil, apperror.ErrLostReportNotFound
	}

	view := &ReportView{
		Report:       report,
		ShowContacts: report.CanSeeContacts(requester),
	}

	owner, err := uc.userRepo.FindByID(ctx, report.OwnerID)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}
	if owner != nil {
		view.Owner = &OwnerInfo{
			ID:         owner.ID,
			Name:       owner.Name,
			Block:      owner.Block,
			Department: owner.Department,
		}
	}

	if view.ShowContacts {
		if owner != nil {
			email := owner.Email
			view.Owner.Email = &email
			view.Owner.Phone = owner.Phone
			view.Owner.AltPhone = owner.AltPhone
		}
	} else {
		report.ContactPhone = nil
	}

	return view, nil
}
