package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/pagination"
)

const DefaultListLimit = 20

type ListNotificationsInput struct {
	Requester  entity.Requester
	UnreadOnly bool
	Pagination pagination.Params
}

type ListNotificationsUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewListNotificationsUseCase(notificationRepo repository.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) ([]*entity.Notification, error) {
	params := input.Pagination.Normalize(DefaultListLimit)
	return uc.notificationRepo.ListByRecipient(ctx, input.Requester.UserID, input.UnreadOnly, params.Limit, params.Offset())
}

type CountUnreadUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewCountUnreadUseCase(notificationRepo repository.NotificationRepository) *CountUnreadUseCase {
	return &CountUnreadUseCase{notificationRepo: notificationRepo}
}

func (uc *CountUnreadUseCase) Execute(ctx context.Context, requester entity.Requester) (int, error) {
	return uc.notificationRepo.CountUnread(ctx, requester.UserID)
}

type MarkReadUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewMarkReadUseCase(notificationRepo repository.NotificationRepository) *MarkReadUseCase {
	return &MarkReadUseCase{notificationRepo: notificationRepo}
}

// Execute отмечает уведомление прочитанным. Чужие уведомления не видны.
func (uc *MarkReadUseCase) Execute(ctx context.Context, requester entity.Requester, id uuid.UUID) error {
	n, err := uc.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !n.IsOwnedBy(requester.UserID) {
		return apperror.ErrNotificationNotFound
	}
	if n.Read {
		return nil
	}
	return uc.notificationRepo.MarkRead(ctx, id)
}

type MarkAllReadUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewMarkAllReadUseCase(notificationRepo repository.NotificationRepository) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{notificationRepo: notificationRepo}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, requester entity.Requester) error {
	return uc.notificationRepo.MarkAllRead(ctx, requester.UserID)
}
