package lostreport

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

// ModerateLostReportInput - только поля, доступные модератору.
type ModerateLostReportInput struct {
	Requester     entity.Requester
	ReportID      uuid.UUID
	ReviewStatus  *string
	PublishStatus *string
	AdminNote     *string
	Status        *string
}

type ModerateLostReportOutput struct {
	Report         *entity.LostReport
	CommentsPurged int64
	Notifications  notify.Deliveries
}

type ModerateLostReportUseCase struct {
	lostRepo    repository.LostReportRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	sink        notify.Sink
}

func NewModerateLostReportUseCase(
	lostRepo repository.LostReportRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	sink notify.Sink,
) *ModerateLostReportUseCase {
	return &ModerateLostReportUseCase{
		lostRepo:    lostRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		sink:        sink,
	}
}

func (uc *ModerateLostReportUseCase) Execute(ctx context.Context, input ModerateLostReportInput) (*ModerateLostReportOutput, error) {
	if !input.Requester.IsModerator() {
		return nil, apperror.New(apperror.ErrCodeForbidden, "модерировать заявки могут только сотрудники")
	}

	change, err := parseModeration(input)
	if err != nil {
		return nil, err
	}

	report, err := uc.lostRepo.FindByID(ctx, input.ReportID)
	if err != nil {
		return nil, err
	}

	outcome, err := report.Moderate(change, time.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.lostRepo.Update(ctx, report); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить заявку о пропаже")
	}

	out := &ModerateLostReportOutput{Report: report, Notifications: notify.Deliveries{}}

	if outcome.Closed {
		out.CommentsPurged = purgeThread(ctx, uc.commentRepo, report.ID)
	}

	if outcome.Approved {
		out.Notifications = append(out.Notifications, notify.ToUser(ctx, uc.sink, uc.userRepo, report.OwnerID,
			func(owner *entity.User) notify.Request {
				return notify.ReportPublished(owner, report)
			}))
	}

	return out, nil
}

func parseModeration(input ModerateLostReportInput) (entity.Moderation, error) {
	var change entity.Moderation

	if input.ReviewStatus != nil {
		review, err := valueobject.NewReviewStatus(*input.ReviewStatus)
		if err != nil {
			return change, err
		}
		change.ReviewStatus = &review
	}
	if input.PublishStatus != nil {
		publish, err := valueobject.NewPublishStatus(*input.PublishStatus)
		if err != nil {
			return change, err
		}
		change.PublishStatus = &publish
	}
	if input.Status != nil {
		status, err := valueobject.NewReportStatus(*input.Status)
		if err != nil {
			return change, err
		}
		change.Status = &status
	}
	change.AdminNote = input.AdminNote

	if change.ReviewStatus == nil && change.PublishStatus == nil && change.Status == nil && change.AdminNote == nil {
		return change, apperror.New(apperror.ErrCodeValidation, "нет полей для изменения")
	}
	return change, nil
}
