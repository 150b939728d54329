package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/campus-lostfound/internal/interface/http/dto"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/response"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/notification"
)

type NotificationHandler struct {
	listUC    *notification.ListNotificationsUseCase
	countUC   *notification.CountUnreadUseCase
	markUC    *notification.MarkReadUseCase
	markAllUC *notification.MarkAllReadUseCase
}

func NewNotificationHandler(
	listUC *notification.ListNotificationsUseCase,
	countUC *notification.CountUnreadUseCase,
	markUC *notification.MarkReadUseCase,
	markAllUC *notification.MarkAllReadUseCase,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:    listUC,
		countUC:   countUC,
		markUC:    markUC,
		markAllUC: markAllUC,
	}
}

// ListNotifications обрабатывает GET /api/notifications?unread=true
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	items, err := h.listUC.Execute(c.Request.Context(), notification.ListNotificationsInput{
		Requester:  req,
		UnreadOnly: c.Query("unread") == "true",
		Pagination: pageParams(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToNotificationResponses(items))
}

// CountUnread обрабатывает GET /api/notifications/unread/count.
func (h *NotificationHandler) CountUnread(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	count, err := h.countUC.Execute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"count": count})
}

// MarkAsRead обрабатывает PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.markUC.Execute(c.Request.Context(), req, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"id": id, "read": true})
}

// MarkAllAsRead обрабатывает PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	if err := h.markAllUC.Execute(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"read": true})
}
