package lostreport

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/logger"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type CloseLostReportOutput struct {
	Report         *entity.LostReport
	CommentsPurged int64
}

type CloseLostReportUseCase struct {
	lostRepo    repository.LostReportRepository
	commentRepo repository.CommentRepository
}

func NewCloseLostReportUseCase(lostRepo repository.LostReportRepository, commentRepo repository.CommentRepository) *CloseLostReportUseCase {
	return &CloseLostReportUseCase{
		lostRepo:    lostRepo,
		commentRepo: commentRepo,
	}
}

func (uc *CloseLostReportUseCase) Execute(ctx context.Context, reportID uuid.UUID, requester entity.Requester) (*CloseLostReportOutput, error) {
	report, err := uc.lostRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if !report.CanBeClosedBy(requester) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "закрыть заявку может только владелец или администратор")
	}

	report.Close(time.Now())

	if err := uc.lostRepo.Update(ctx, report); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось закрыть заявку")
	}

	return &CloseLostReportOutput{
		Report:         report,
		CommentsPurged: purgeThread(ctx, uc.commentRepo, report.ID),
	}, nil
}

// purgeThread удаляет обсуждение закрытой заявки. Ошибка только логируется:
// закрытие уже сохранено.
func purgeThread(ctx context.Context, comments repository.CommentRepository, reportID uuid.UUID) int64 {
	deleted, err := comments.DeleteByTarget(ctx, valueobject.LostReportRef(reportID))
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"report_id": reportID,
		}).WithError(err).Error("lostreport: не удалось удалить комментарии закрытой заявки")
		return 0
	}
	return deleted
}
