package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/campus-lostfound/internal/interface/http/dto"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/response"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/lostreport"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/stats"
)

// AdminHandler - модерация заявок о пропаже и сводка для сотрудников.
type AdminHandler struct {
	statsUC    *stats.GetStatsUseCase
	listLostUC *lostreport.ListLostReportsUseCase
	moderateUC *lostreport.ModerateLostReportUseCase
}

func NewAdminHandler(
	statsUC *stats.GetStatsUseCase,
	listLostUC *lostreport.ListLostReportsUseCase,
	moderateUC *lostreport.ModerateLostReportUseCase,
) *AdminHandler {
	return &AdminHandler{
		statsUC:    statsUC,
		listLostUC: listLostUC,
		moderateUC: moderateUC,
	}
}

// Stats обрабатывает GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	s, err := h.statsUC.Execute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, s)
}

// ListLostReports обрабатывает GET /api/admin/lost?status=&visibility=&review_status=
func (h *AdminHandler) ListLostReports(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	page, err := h.listLostUC.Execute(c.Request.Context(), req, lostreport.ListLostReportsInput{
		Status:       c.Query("status"),
		Visibility:   c.Query("visibility"),
		ReviewStatus: c.Query("review_status"),
		Pagination:   pageParams(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	paginated(c, page, dto.ToLostReportResponses)
}

// ModerateLostReport обрабатывает PATCH /api/admin/lost/:id.
func (h *AdminHandler) ModerateLostReport(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var body dto.ModerateLostReportRequest
	if !bindJSON(c, &body) {
		return
	}

	out, err := h.moderateUC.Execute(c.Request.Context(), lostreport.ModerateLostReportInput{
		Requester:     req,
		ReportID:      id,
		ReviewStatus:  body.ReviewStatus,
		PublishStatus: body.PublishStatus,
		AdminNote:     body.AdminNote,
		Status:        body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.LostReportMutationResponse{
		Report:             dto.ToLostReportResponse(out.Report),
		CommentsPurged:     out.CommentsPurged,
		NotificationStatus: dto.ToNotificationStatus(out.Notifications),
	})
}
