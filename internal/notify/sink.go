// Package notify - единая точка доставки уведомлений: запись в приложении,
// push через WebSocket и письмо с учётом настроек получателя.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/logger"
)

// ErrMailerNotConfigured возвращается почтовым каналом без учётных данных.
var ErrMailerNotConfigured = errors.New("mail credentials missing")

type Status string

const (
	StatusSent     Status = "sent"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
	StatusDisabled Status = "disabled"
)

type Email struct {
	Subject string
	Text    string
	HTML    string
}

type Request struct {
	Recipient *entity.User
	Type      valueobject.NotificationType
	Message   string
	RelatedID *uuid.UUID
	// IsMatch - высокий приоритет, проходит фильтр matches-only.
	IsMatch bool
	Email   *Email
}

// Result - итог доставки по каналам. Ошибки каналов сюда попадают вместо error.
type Result struct {
	RecipientID uuid.UUID                    `json:"recipient_id"`
	Type        valueobject.NotificationType `json:"type"`
	InApp       Status                       `json:"in_app"`
	Email       Status                       `json:"email"`
	Reason      string                       `json:"reason,omitempty"`
}

func (r Result) Failed() bool {
	return r.InApp == StatusFailed || r.Email == StatusFailed
}

// Sink принимает уведомления и никогда не возвращает ошибку вызывающему.
type Sink interface {
	Notify(ctx context.Context, req Request) Result
}

type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}

// Pusher доставляет событие подключённым клиентам пользователя.
type Pusher interface {
	BroadcastToUser(userID uuid.UUID, event string, data any) error
}

const pushEvent = "notification"

type Dispatcher struct {
	mode          valueobject.NotificationMode
	notifications repository.NotificationRepository
	mailer        Mailer
	pusher        Pusher
}

func NewDispatcher(mode valueobject.NotificationMode, notifications repository.NotificationRepository, mailer Mailer) *Dispatcher {
	return &Dispatcher{
		mode:          mode,
		notifications: notifications,
		mailer:        mailer,
	}
}

// SetPusher подключает WebSocket хаб. Без него уведомления только сохраняются.
func (d *Dispatcher) SetPusher(pusher Pusher) {
	d.pusher = pusher
}

func (d *Dispatcher) Notify(ctx context.Context, req Request) Result {
	res := Result{
		Type:  req.Type,
		InApp: StatusDisabled,
		Email: StatusDisabled,
	}
	if req.Recipient == nil {
		res.InApp = StatusFailed
		res.Email = StatusFailed
		res.Reason = "recipient not found"
		return res
	}
	res.RecipientID = req.Recipient.ID

	log := logger.Log.WithFields(logrus.Fields{
		"recipient_id": req.Recipient.ID,
		"type":         req.Type,
	})

	var reasons []string

	if d.mode.InAppEnabled() {
		n := entity.NewNotification(req.Recipient.ID, req.Type, req.Message, req.RelatedID)
		if err := d.notifications.Create(ctx, n); err != nil {
			log.WithError(err).Error("notify: не удалось сохранить уведомление")
			res.InApp = StatusFailed
			reasons = append(reasons, "in-app: "+err.Error())
		} else {
			res.InApp = StatusSent
			d.push(n, log)
		}
	}

	if d.mode.EmailEnabled() {
		status, reason := d.sendEmail(ctx, req)
		res.Email = status
		if reason != "" {
			reasons = append(reasons, reason)
		}
		if status == StatusFailed {
			log.WithField("reason", reason).Error("notify: письмо не отправлено")
		}
	}

	res.Reason = strings.Join(reasons, "; ")
	return res
}

func (d *Dispatcher) sendEmail(ctx context.Context, req Request) (Status, string) {
	u := req.Recipient
	switch {
	case !u.HasEmail():
		return StatusSkipped, "recipient has no email"
	case !u.EmailNotificationsEnabled:
		return StatusSkipped, "email notifications disabled by user"
	case !u.NotifyScope.AllowsEmail(req.IsMatch):
		return StatusSkipped, fmt.Sprintf("Filtered by user scope: %s", u.NotifyScope)
	case req.Email == nil || d.mailer == nil:
		return StatusSkipped, "no email channel"
	}

	err := d.mailer.Send(ctx, MailMessage{
		To:      u.Email,
		Subject: req.Email.Subject,
		Text:    req.Email.Text,
		HTML:    req.Email.HTML,
	})
	if errors.Is(err, ErrMailerNotConfigured) {
		return StatusSkipped, err.Error()
	}
	if err != nil {
		return StatusFailed, "email: " + err.Error()
	}
	return StatusSent, ""
}

func (d *Dispatcher) push(n *entity.Notification, log *logrus.Entry) {
	if d.pusher == nil {
		return
	}
	payload := map[string]any{
		"id":         n.ID,
		"type":       n.Type,
		"message":    n.Message,
		"related_id": n.RelatedID,
		"created_at": n.CreatedAt,
	}
	if err := d.pusher.BroadcastToUser(n.RecipientID, pushEvent, payload); err != nil {
		log.WithError(err).Warn("notify: не удалось отправить push")
	}
}
