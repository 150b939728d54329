package notify

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/logger"
)

// Deliveries - вторичный статус операции, отдаётся рядом с основным результатом.
type Deliveries []Result

func (d Deliveries) Failed() bool {
	for _, r := range d {
		if r.Failed() {
			return true
		}
	}
	return false
}

// ToUser находит получателя в справочнике и отправляет ему уведомление.
// Ошибка поиска не прерывает операцию, а попадает в Result.
func ToUser(ctx context.Context, sink Sink, users repository.UserRepository, userID uuid.UUID, build func(recipient *entity.User) Request) Result {
	recipient, err := users.FindByID(ctx, userID)
	if err != nil || recipient == nil {
		logger.Log.WithFields(logrus.Fields{
			"recipient_id": userID,
			"error":        err,
		}).Warn("notify: получатель не найден")
		return Result{
			RecipientID: userID,
			InApp:       StatusFailed,
			Email:       StatusFailed,
			Reason:      "recipient not found",
		}
	}
	return sink.Notify(ctx, build(recipient))
}
