package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/dto"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/response"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/discussion"
)

type CommentHandler struct {
	listUC *discussion.ListCommentsUseCase
	postUC *discussion.PostCommentUseCase
}

func NewCommentHandler(listUC *discussion.ListCommentsUseCase, postUC *discussion.PostCommentUseCase) *CommentHandler {
	return &CommentHandler{
		listUC: listUC,
		postUC: postUC,
	}
}

func targetParam(c *gin.Context) (valueobject.ItemRef, bool) {
	id, ok := uuidParam(c, "itemId")
	if !ok {
		return valueobject.ItemRef{}, false
	}
	target, err := valueobject.NewItemRef(c.Param("itemType"), id)
	if err != nil {
		response.Error(c, err)
		return valueobject.ItemRef{}, false
	}
	return target, true
}

// ListComments обрабатывает GET /api/comments/:itemType/:itemId.
func (h *CommentHandler) ListComments(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	target, ok := targetParam(c)
	if !ok {
		return
	}

	views, err := h.listUC.Execute(c.Request.Context(), req, target)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCommentResponses(views))
}

// PostComment обрабатывает POST /api/comments/:itemType/:itemId.
func (h *CommentHandler) PostComment(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	target, ok := targetParam(c)
	if !ok {
		return
	}

	var body dto.PostCommentRequest
	if !bindJSON(c, &body) {
		return
	}
	parentID, err := dto.ParseOptionalUUID("parent_id", body.ParentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.postUC.Execute(c.Request.Context(), discussion.PostCommentInput{
		Requester: req,
		Target:    target,
		Text:      body.Text,
		ParentID:  parentID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.PostCommentResponse{
		Comment:            dto.ToCommentResponse(out.Comment),
		NotificationStatus: dto.ToNotificationStatus(out.Notifications),
	})
}
