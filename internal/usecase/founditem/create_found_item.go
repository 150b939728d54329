package founditem

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/logger"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type CreateFoundItemInput struct {
	Requester          entity.Requester
	ItemName           string
	Category           string
	Description        string
	Color              *string
	Brand              *string
	UniqueMark         *string
	DateFound          time.Time
	LocationFound      string
	ImageURL           *string
	LinkedLostReportID *uuid.UUID
}

type CreateFoundItemOutput struct {
	Item *entity.FoundItem
	// MatchedReport заполнен, если связанная заявка переведена в MATCHED.
	MatchedReport *entity.LostReport
	Notifications notify.Deliveries
}

type CreateFoundItemUseCase struct {
	foundRepo   repository.FoundItemRepository
	lostRepo    repository.LostReportRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	sink        notify.Sink
}

func NewCreateFoundItemUseCase(
	foundRepo repository.FoundItemRepository,
	lostRepo repository.LostReportRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	sink notify.Sink,
) *CreateFoundItemUseCase {
	return &CreateFoundItemUseCase{
		foundRepo:   foundRepo,
		lostRepo:    lostRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		sink:        sink,
	}
}

func (uc *CreateFoundItemUseCase) Execute(ctx context.Context, input CreateFoundItemInput) (*CreateFoundItemOutput, error) {
	category, err := valueobject.NewCategory(input.Category)
	if err != nil {
		return nil, err
	}

	var reportedBy *uuid.UUID
	if input.Requester.UserID != uuid.Nil {
		id := input.Requester.UserID
		reportedBy = &id
	}

	item, err := entity.NewFoundItem(reportedBy, entity.FoundItemDetails{
		ItemName:           input.ItemName,
		Category:           category,
		Description:        input.Description,
		Color:              input.Color,
		Brand:              input.Brand,
		UniqueMark:         input.UniqueMark,
		DateFound:          input.DateFound,
		LocationFound:      input.LocationFound,
		ImageURL:           input.ImageURL,
		LinkedLostReportID: input.LinkedLostReportID,
	})
	if err != nil {
		return nil, err
	}

	var report *entity.LostReport
	if item.IsLinked() {
		report, err = uc.lostRepo.FindByID(ctx, *item.LinkedLostReportID)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.foundRepo.Create(ctx, item); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить найденную вещь")
	}

	out := &CreateFoundItemOutput{Item: item, Notifications: notify.Deliveries{}}
	if report == nil {
		return out, nil
	}

	// Две отдельные записи без транзакции: при сбое здесь вещь сохранена, а заявка не сопоставлена.
	matched, err := uc.applyMatch(ctx, report, item)
	if err != nil {
		return nil, err
	}
	if !matched {
		return out, nil
	}
	out.MatchedReport = report

	out.Notifications = append(out.Notifications, notify.ToUser(ctx, uc.sink, uc.userRepo, report.OwnerID,
		func(owner *entity.User) notify.Request {
			return notify.MatchFound(owner, report, item)
		}))

	return out, nil
}

// applyMatch переводит заявку в MATCHED и оставляет в её обсуждении служебное сообщение.
// Закрытая заявка не переоткрывается.
func (uc *CreateFoundItemUseCase) applyMatch(ctx context.Context, report *entity.LostReport, item *entity.FoundItem) (bool, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"report_id":     report.ID,
		"found_item_id": item.ID,
	})

	if err := report.MarkMatched(time.Now()); err != nil {
		log.WithError(err).Info("founditem: заявка закрыта, сопоставление пропущено")
		return false, nil
	}

	if err := uc.lostRepo.Update(ctx, report); err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить статус заявки")
	}

	comment := entity.NewSystemComment(valueobject.LostReportRef(report.ID), notify.MatchSystemComment(item))
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		log.WithError(err).Error("founditem: не удалось добавить служебный комментарий")
	}

	return true, nil
}
