package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

const DefaultPickupInstructions = "Please visit the Main Office."

type Claim struct {
	ID                 uuid.UUID
	ClaimantID         uuid.UUID
	FoundItemID        uuid.UUID
	Message            string
	Status             valueobject.ClaimStatus
	PickupInstructions *string
	ResolvedBy         *uuid.UUID
	ResolvedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewClaim(claimantID, foundItemID uuid.UUID, message string) (*Claim, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperror.Field("message", "сообщение обязательно")
	}
	if foundItemID == uuid.Nil {
		return nil, apperror.Field("found_item_id", "идентификатор найденной вещи обязателен")
	}

	now := time.Now()
	return &Claim{
		ID:          uuid.New(),
		ClaimantID:  claimantID,
		FoundItemID: foundItemID,
		Message:     message,
		Status:      valueobject.ClaimStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Resolve выставляет итоговый статус. Повторное решение перезаписывает предыдущее.
func (c *Claim) Resolve(status valueobject.ClaimStatus, pickupInstructions string, resolvedBy uuid.UUID, now time.Time) error {
	if !status.IsResolution() {
		return apperror.Field("status", "статус должен быть APPROVED или REJECTED")
	}

	c.Status = status
	c.PickupInstructions = nil
	if status == valueobject.ClaimStatusApproved {
		instructions := strings.TrimSpace(pickupInstructions)
		if instructions == "" {
			instructions = DefaultPickupInstructions
		}
		c.PickupInstructions = &instructions
	}

	by := resolvedBy
	at := now
	c.ResolvedBy = &by
	c.ResolvedAt = &at
	c.UpdatedAt = now
	return nil
}

func (c *Claim) IsOwnedBy(userID uuid.UUID) bool {
	return c.ClaimantID == userID
}

func (c *Claim) IsPending() bool {
	return c.Status == valueobject.ClaimStatusPending
}
