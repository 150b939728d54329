package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
)

type CreateClaimRequest struct {
	FoundItemID string `json:"found_item_id" validate:"required,uuid"`
	Message     string `json:"message" validate:"required,max=2000"`
}

type ResolveClaimRequest struct {
	Status             string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	PickupInstructions string `json:"pickup_instructions" validate:"max=500"`
}

type ClaimResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ClaimantID         uuid.UUID  `json:"claimant_id"`
	FoundItemID        uuid.UUID  `json:"found_item_id"`
	Message            string     `json:"message"`
	Status             string     `json:"status"`
	PickupInstructions *string    `json:"pickup_instructions"`
	ResolvedBy         *uuid.UUID `json:"resolved_by,omitempty"`
	ResolvedAt         *time.Time `json:"resolved_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type ClaimMutationResponse struct {
	Claim              ClaimResponse      `json:"claim"`
	NotificationStatus NotificationStatus `json:"notification_status"`
}

func ToClaimResponse(c *entity.Claim) ClaimResponse {
	return ClaimResponse{
		ID:                 c.ID,
		ClaimantID:         c.ClaimantID,
		FoundItemID:        c.FoundItemID,
		Message:            c.Message,
		Status:             string(c.Status),
		PickupInstructions: c.PickupInstructions,
		ResolvedBy:         c.ResolvedBy,
		ResolvedAt:         c.ResolvedAt,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func ToClaimResponses(claims []*entity.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, ToClaimResponse(c))
	}
	return out
}
