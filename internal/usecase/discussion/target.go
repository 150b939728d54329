package discussion

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

// thread - объект, к которому привязано обсуждение.
type thread struct {
	itemName string
	// ownerID - кому сообщать о новых комментариях; nil, если владельца нет.
	ownerID *uuid.UUID
	closed  bool
}

type targetResolver struct {
	lostRepo  repository.LostReportRepository
	foundRepo repository.FoundItemRepository
}

// resolve проверяет, что объект существует и виден запрашивающему.
// Скрытые заявки о пропаже выглядят как несуществующие.
func (r *targetResolver) resolve(ctx context.Context, requester entity.Requester, target valueobject.ItemRef) (*thread, error) {
	switch target.Type {
	case valueobject.ItemTypeLostReport:
		report, err := r.lostRepo.FindByID(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		if !report.CanBeViewedBy(requester, time.Now()) {
			return nil, apperror.ErrLostReportNotFound
		}
		owner := report.OwnerID
		return &thread{
			itemName: report.ItemName,
			ownerID:  &owner,
			closed:   report.Status == valueobject.ReportStatusClosed,
		}, nil
	case valueobject.ItemTypeFoundItem:
		item, err := r.foundRepo.FindByID(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		return &thread{itemName: item.ItemName, ownerID: item.ReportedBy}, nil
	default:
		return nil, apperror.Field("item_type", "некорректный тип объекта")
	}
}
