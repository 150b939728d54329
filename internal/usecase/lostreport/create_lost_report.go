package lostreport

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/logger"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type CreateLostReportInput struct {
	Requester       entity.Requester
	ItemName        string
	Category        string
	Description     string
	Color           *string
	Brand           *string
	UniqueMark      *string
	DateLost        time.Time
	LocationLost    string
	ContactPhone    *string
	Visibility      string
	NotifyRequested bool
}

type CreateLostReportOutput struct {
	Report        *entity.LostReport
	Notifications notify.Deliveries
}

type CreateLostReportUseCase struct {
	lostRepo repository.LostReportRepository
	userRepo repository.UserRepository
	sink     notify.Sink
}

func NewCreateLostReportUseCase(lostRepo repository.LostReportRepository, userRepo repository.UserRepository, sink notify.Sink) *CreateLostReportUseCase {
	return &CreateLostReportUseCase{
		lostRepo: lostRepo,
		userRepo: userRepo,
		sink:     sink,
	}
}

func (uc *CreateLostReportUseCase) Execute(ctx context.Context, input CreateLostReportInput) (*CreateLostReportOutput, error) {
	category, err := valueobject.NewCategory(input.Category)
	if err != nil {
		return nil, err
	}
	visibility, err := valueobject.NewVisibility(input.Visibility)
	if err != nil {
		return nil, err
	}

	report, err := entity.NewLostReport(input.Requester.UserID, entity.LostReportDetails{
		ItemName:        input.ItemName,
		Category:        category,
		Description:     input.Description,
		Color:           input.Color,
		Brand:           input.Brand,
		UniqueMark:      input.UniqueMark,
		DateLost:        input.DateLost,
		LocationLost:    input.LocationLost,
		ContactPhone:    input.ContactPhone,
		Visibility:      visibility,
		NotifyRequested: input.NotifyRequested,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.lostRepo.Create(ctx, report); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать заявку о пропаже")
	}

	out := &CreateLostReportOutput{Report: report, Notifications: notify.Deliveries{}}

	// Приватная заявка с запросом уведомления уходит модераторам.
	if report.Visibility == valueobject.VisibilityAdminOnly && report.NotifyRequested {
		out.Notifications = uc.notifyModerators(ctx, report)
	}

	return out, nil
}

func (uc *CreateLostReportUseCase) notifyModerators(ctx context.Context, report *entity.LostReport) notify.Deliveries {
	deliveries := notify.Deliveries{}

	owner, err := uc.userRepo.FindByID(ctx, report.OwnerID)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"report_id": report.ID,
			"owner_id":  report.OwnerID,
		}).WithError(err).Warn("lostreport: владелец не найден, модераторы не уведомлены")
		return deliveries
	}

	moderators, err := uc.userRepo.FindByRoles(ctx, valueobject.RoleAdmin, valueobject.RoleStaff)
	if err != nil {
		logger.Log.WithField("report_id", report.ID).WithError(err).Warn("lostreport: не удалось получить модераторов")
		return deliveries
	}

	for _, moderator := range moderators {
		deliveries = append(deliveries, uc.sink.Notify(ctx, notify.PrivateReportCreated(moderator, owner, report)))
	}
	return deliveries
}
