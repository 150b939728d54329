package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/interface/http/dto"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/response"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/claim"
)

type ClaimHandler struct {
	createUC     *claim.CreateClaimUseCase
	resolveUC    *claim.ResolveClaimUseCase
	listMineUC   *claim.ListMyClaimsUseCase
	listByItemUC *claim.ListFoundItemClaimsUseCase
	listUC       *claim.ListClaimsUseCase
}

func NewClaimHandler(
	createUC *claim.CreateClaimUseCase,
	resolveUC *claim.ResolveClaimUseCase,
	listMineUC *claim.ListMyClaimsUseCase,
	listByItemUC *claim.ListFoundItemClaimsUseCase,
	listUC *claim.ListClaimsUseCase,
) *ClaimHandler {
	return &ClaimHandler{
		createUC:     createUC,
		resolveUC:    resolveUC,
		listMineUC:   listMineUC,
		listByItemUC: listByItemUC,
		listUC:       listUC,
	}
}

// CreateClaim обрабатывает POST /api/claims.
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	var body dto.CreateClaimRequest
	if !bindJSON(c, &body) {
		return
	}

	foundItemID, err := uuid.Parse(body.FoundItemID)
	if err != nil {
		response.BadRequest(c, "некорректный ID найденной вещи")
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), claim.CreateClaimInput{
		Requester:   req,
		FoundItemID: foundItemID,
		Message:     body.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ClaimMutationResponse{
		Claim:              dto.ToClaimResponse(out.Claim),
		NotificationStatus: dto.ToNotificationStatus(out.Notifications),
	})
}

// ListMine обрабатывает GET /api/claims/mine.
func (h *ClaimHandler) ListMine(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	claims, err := h.listMineUC.Execute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToClaimResponses(claims))
}

// ResolveClaim обрабатывает PATCH /api/admin/claims/:id.
func (h *ClaimHandler) ResolveClaim(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var body dto.ResolveClaimRequest
	if !bindJSON(c, &body) {
		return
	}

	out, err := h.resolveUC.Execute(c.Request.Context(), claim.ResolveClaimInput{
		Requester:          req,
		ClaimID:            id,
		Status:             body.Status,
		PickupInstructions: body.PickupInstructions,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ClaimMutationResponse{
		Claim:              dto.ToClaimResponse(out.Claim),
		NotificationStatus: dto.ToNotificationStatus(out.Notifications),
	})
}

// ListByFoundItem обрабатывает GET /api/admin/claims/found/:foundItemId.
func (h *ClaimHandler) ListByFoundItem(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "foundItemId")
	if !ok {
		return
	}

	claims, err := h.listByItemUC.Execute(c.Request.Context(), req, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToClaimResponses(claims))
}

// List обрабатывает GET /api/admin/claims?status=
func (h *ClaimHandler) List(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	page, err := h.listUC.Execute(c.Request.Context(), req, claim.ListClaimsInput{
		Status:     c.Query("status"),
		Pagination: pageParams(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	paginated(c, page, dto.ToClaimResponses)
}
