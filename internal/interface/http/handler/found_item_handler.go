package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/campus-lostfound/internal/interface/http/dto"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/response"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/founditem"
)

type FoundItemHandler struct {
	createUC *founditem.CreateFoundItemUseCase
	getUC    *founditem.GetFoundItemUseCase
	browseUC *founditem.BrowseFoundItemsUseCase
}

func NewFoundItemHandler(
	createUC *founditem.CreateFoundItemUseCase,
	getUC *founditem.GetFoundItemUseCase,
	browseUC *founditem.BrowseFoundItemsUseCase,
) *FoundItemHandler {
	return &FoundItemHandler{
		createUC: createUC,
		getUC:    getUC,
		browseUC: browseUC,
	}
}

// Browse обрабатывает GET /api/found?search=&category=&location=&page=&limit=
func (h *FoundItemHandler) Browse(c *gin.Context) {
	page, err := h.browseUC.Execute(c.Request.Context(), founditem.BrowseFoundItemsInput{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		Location:   c.Query("location"),
		Pagination: pageParams(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	paginated(c, page, dto.ToFoundItemResponses)
}

// GetFoundItem обрабатывает GET /api/found/:id.
func (h *FoundItemHandler) GetFoundItem(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	item, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToFoundItemResponse(item))
}

// CreateFoundItem обрабатывает POST /api/found.
func (h *FoundItemHandler) CreateFoundItem(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	var body dto.CreateFoundItemRequest
	if !bindJSON(c, &body) {
		return
	}

	dateFound, err := dto.ParseDate("date_found", body.DateFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	linkedID, err := dto.ParseOptionalUUID("linked_lost_report_id", body.LinkedLostReportID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), founditem.CreateFoundItemInput{
		Requester:          req,
		ItemName:           body.ItemName,
		Category:           body.Category,
		Description:        body.Description,
		Color:              body.Color,
		Brand:              body.Brand,
		UniqueMark:         body.UniqueMark,
		DateFound:          dateFound,
		LocationFound:      body.LocationFound,
		ImageURL:           body.ImageURL,
		LinkedLostReportID: linkedID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.CreateFoundItemResponse{
		Item:               dto.ToFoundItemResponse(out.Item),
		NotificationStatus: dto.ToNotificationStatus(out.Notifications),
	}
	if out.MatchedReport != nil {
		matched := dto.ToLostReportResponse(out.MatchedReport)
		matched.ContactPhone = nil
		matched.AdminNote = nil
		resp.MatchedReport = &matched
	}
	response.Created(c, resp)
}
