package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
)

type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	Type        valueobject.NotificationType
	Message     string
	RelatedID   *uuid.UUID
	Read        bool
	CreatedAt   time.Time
}

func NewNotification(recipientID uuid.UUID, notificationType valueobject.NotificationType, message string, relatedID *uuid.UUID) *Notification {
	return &Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Type:        notificationType,
		Message:     message,
		RelatedID:   relatedID,
		CreatedAt:   time.Now(),
	}
}

func (n *Notification) MarkRead() {
	n.Read = true
}

func (n *Notification) IsOwnedBy(userID uuid.UUID) bool {
	return n.RecipientID == userID
}
