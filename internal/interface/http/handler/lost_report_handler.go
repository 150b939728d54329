package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/campus-lostfound/internal/interface/http/dto"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/response"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/lostreport"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/matching"
)

type LostReportHandler struct {
	createUC  *lostreport.CreateLostReportUseCase
	getUC     *lostreport.GetLostReportUseCase
	listMine  *lostreport.ListMyLostReportsUseCase
	nearbyUC  *lostreport.ListNearbyUseCase
	closeUC   *lostreport.CloseLostReportUseCase
	matchesUC *matching.FindMatchesUseCase
}

func NewLostReportHandler(
	createUC *lostreport.CreateLostReportUseCase,
	getUC *lostreport.GetLostReportUseCase,
	listMine *lostreport.ListMyLostReportsUseCase,
	nearbyUC *lostreport.ListNearbyUseCase,
	closeUC *lostreport.CloseLostReportUseCase,
	matchesUC *matching.FindMatchesUseCase,
) *LostReportHandler {
	return &LostReportHandler{
		createUC:  createUC,
		getUC:     getUC,
		listMine:  listMine,
		nearbyUC:  nearbyUC,
		closeUC:   closeUC,
		matchesUC: matchesUC,
	}
}

// CreateLostReport обрабатывает POST /api/lost.
func (h *LostReportHandler) CreateLostReport(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	var body dto.CreateLostReportRequest
	if !bindJSON(c, &body) {
		return
	}

	dateLost, err := dto.ParseDate("date_lost", body.DateLost)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), lostreport.CreateLostReportInput{
		Requester:       req,
		ItemName:        body.ItemName,
		Category:        body.Category,
		Description:     body.Description,
		Color:           body.Color,
		Brand:           body.Brand,
		UniqueMark:      body.UniqueMark,
		DateLost:        dateLost,
		LocationLost:    body.LocationLost,
		ContactPhone:    body.ContactPhone,
		Visibility:      body.Visibility,
		NotifyRequested: body.NotifyRequested,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.LostReportMutationResponse{
		Report:             dto.ToLostReportResponse(out.Report),
		NotificationStatus: dto.ToNotificationStatus(out.Notifications),
	})
}

// GetLostReport обрабатывает GET /api/lost/:id.
func (h *LostReportHandler) GetLostReport(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.getUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToLostReportDetailsResponse(view))
}

// ListMine обрабатывает GET /api/lost/mine.
func (h *LostReportHandler) ListMine(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	page, err := h.listMine.Execute(c.Request.Context(), req, pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	paginated(c, page, dto.ToLostReportResponses)
}

// ListNearby обрабатывает GET /api/lost/nearby?scope=all|block&category=...
func (h *LostReportHandler) ListNearby(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	page, err := h.nearbyUC.Execute(c.Request.Context(), lostreport.ListNearbyInput{
		Requester:  req,
		Scope:      c.Query("scope"),
		Category:   c.Query("category"),
		Pagination: pageParams(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	paginated(c, page, dto.ToPublicLostReportResponses)
}

// CloseLostReport обрабатывает POST /api/lost/:id/close.
func (h *LostReportHandler) CloseLostReport(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	out, err := h.closeUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.LostReportMutationResponse{
		Report:             dto.ToLostReportResponse(out.Report),
		CommentsPurged:     out.CommentsPurged,
		NotificationStatus: dto.ToNotificationStatus(nil),
	})
}

// GetMatches обрабатывает GET /api/lost/:id/matches.
func (h *LostReportHandler) GetMatches(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	matches, err := h.matchesUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"matches":     dto.ToFoundItemResponses(matches),
		"window_days": int(matching.Window.Hours() / 24),
		"max_results": matching.MaxResults,
	})
}
