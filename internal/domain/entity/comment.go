package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type Comment struct {
	ID              uuid.UUID
	Target          valueobject.ItemRef
	Text            string
	AuthorID        *uuid.UUID
	IsSystemMessage bool
	ParentID        *uuid.UUID
	CreatedAt       time.Time
}

func NewComment(target valueobject.ItemRef, authorID uuid.UUID, text string, parentID *uuid.UUID) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.Field("text", "текст комментария обязателен")
	}
	if !target.Type.IsValid() {
		return nil, apperror.Field("item_type", "некорректный тип объекта")
	}

	author := authorID
	return &Comment{
		ID:        uuid.New(),
		Target:    target,
		Text:      text,
		AuthorID:  &author,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}, nil
}

// NewSystemComment создаёт служебное сообщение без автора.
func NewSystemComment(target valueobject.ItemRef, text string) *Comment {
	return &Comment{
		ID:              uuid.New(),
		Target:          target,
		Text:            text,
		IsSystemMessage: true,
		CreatedAt:       time.Now(),
	}
}

func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

func (c *Comment) IsAuthoredBy(userID uuid.UUID) bool {
	return c.AuthorID != nil && *c.AuthorID == userID
}
