package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/usecase/discussion"
)

type PostCommentRequest struct {
	Text     string  `json:"text" validate:"required,max=1000"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
}

type CommentAuthorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

type CommentResponse struct {
	ID              uuid.UUID              `json:"id"`
	ItemType        string                 `json:"item_type"`
	ItemID          uuid.UUID              `json:"item_id"`
	Text            string                 `json:"text"`
	Author          *CommentAuthorResponse `json:"author"`
	IsSystemMessage bool                   `json:"is_system_message"`
	ParentID        *uuid.UUID             `json:"parent_id"`
	CreatedAt       time.Time              `json:"created_at"`
}

type PostCommentResponse struct {
	Comment            CommentResponse    `json:"comment"`
	NotificationStatus NotificationStatus `json:"notification_status"`
}

func ToCommentResponse(v discussion.CommentView) CommentResponse {
	resp := CommentResponse{
		ID:              v.Comment.ID,
		ItemType:        string(v.Comment.Target.Type),
		ItemID:          v.Comment.Target.ID,
		Text:            v.Comment.Text,
		IsSystemMessage: v.Comment.IsSystemMessage,
		ParentID:        v.Comment.ParentID,
		CreatedAt:       v.Comment.CreatedAt,
	}
	if v.Author != nil {
		resp.Author = &CommentAuthorResponse{
			ID:   v.Author.ID,
			Name: v.Author.Name,
			Role: string(v.Author.Role),
		}
	}
	return resp
}

func ToCommentResponses(views []discussion.CommentView) []CommentResponse {
	out := make([]CommentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToCommentResponse(v))
	}
	return out
}
