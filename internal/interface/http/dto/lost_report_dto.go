package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/lostreport"
)

type CreateLostReportRequest struct {
	ItemName        string  `json:"item_name" validate:"required,max=120"`
	Category        string  `json:"category" validate:"required,category"`
	Description     string  `json:"description" validate:"required,min=10,max=2000"`
	Color           *string `json:"color" validate:"omitempty,max=60"`
	Brand           *string `json:"brand" validate:"omitempty,max=60"`
	UniqueMark      *string `json:"unique_mark" validate:"omitempty,max=200"`
	DateLost        string  `json:"date_lost" validate:"required"`
	LocationLost    string  `json:"location_lost" validate:"required,max=200"`
	ContactPhone    *string `json:"contact_phone" validate:"omitempty,max=30"`
	Visibility      string  `json:"visibility" validate:"omitempty,oneof=CAMPUS ADMIN_ONLY"`
	NotifyRequested bool    `json:"notify_requested"`
}

// ModerateLostReportRequest - только поля модерации; остальные поля заявки игнорируются.
type ModerateLostReportRequest struct {
	ReviewStatus  *string `json:"review_status" validate:"omitempty,oneof=PENDING_REVIEW APPROVED REJECTED"`
	PublishStatus *string `json:"publish_status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
	AdminNote     *string `json:"admin_note" validate:"omitempty,max=1000"`
	Status        *string `json:"status" validate:"omitempty,oneof=OPEN MATCHED CLOSED"`
}

type LostReportResponse struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	ItemName        string     `json:"item_name"`
	Category        string     `json:"category"`
	Description     string     `json:"description"`
	Color           *string    `json:"color"`
	Brand           *string    `json:"brand"`
	UniqueMark      *string    `json:"unique_mark"`
	DateLost        time.Time  `json:"date_lost"`
	LocationLost    string     `json:"location_lost"`
	ContactPhone    *string    `json:"contact_phone,omitempty"`
	Visibility      string     `json:"visibility"`
	ReviewStatus    string     `json:"review_status"`
	PublishStatus   string     `json:"publish_status"`
	Status          string     `json:"status"`
	NotifyRequested bool       `json:"notify_requested"`
	AdminNote       *string    `json:"admin_note,omitempty"`
	ClosedAt        *time.Time `json:"closed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type OwnerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Block      string    `json:"block"`
	Department string    `json:"department"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	AltPhone   *string   `json:"alt_phone,omitempty"`
}

type LostReportDetailsResponse struct {
	LostReportResponse
	Owner        *OwnerResponse `json:"owner"`
	ShowContacts bool           `json:"show_contacts"`
}

type LostReportMutationResponse struct {
	Report             LostReportResponse `json:"report"`
	CommentsPurged     int64              `json:"comments_purged"`
	NotificationStatus NotificationStatus `json:"notification_status"`
}

func ToLostReportResponse(r *entity.LostReport) LostReportResponse {
	return LostReportResponse{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		ItemName:        r.ItemName,
		Category:        string(r.Category),
		Description:     r.Description,
		Color:           r.Color,
		Brand:           r.Brand,
		UniqueMark:      r.UniqueMark,
		DateLost:        r.DateLost,
		LocationLost:    r.LocationLost,
		ContactPhone:    r.ContactPhone,
		Visibility:      string(r.Visibility),
		ReviewStatus:    string(r.ReviewStatus),
		PublishStatus:   string(r.PublishStatus),
		Status:          string(r.Status),
		NotifyRequested: r.NotifyRequested,
		AdminNote:       r.AdminNote,
		ClosedAt:        r.ClosedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func ToLostReportResponses(reports []*entity.LostReport) []LostReportResponse {
	out := make([]LostReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, ToLostReportResponse(r))
	}
	return out
}

// ToPublicLostReportResponses убирает контакты и заметки модератора для ленты.
func ToPublicLostReportResponses(reports []*entity.LostReport) []LostReportResponse {
	out := ToLostReportResponses(reports)
	for i := range out {
		out[i].ContactPhone = nil
		out[i].AdminNote = nil
	}
	return out
}

func ToLostReportDetailsResponse(view *lostreport.ReportView) LostReportDetailsResponse {
	resp := LostReportDetailsResponse{
		LostReportResponse: ToLostReportResponse(view.Report),
		ShowContacts:       view.ShowContacts,
	}
	if !view.ShowContacts {
		resp.AdminNote = nil
	}
	if view.Owner != nil {
		resp.Owner = &OwnerResponse{
			ID:         view.Owner.ID,
			Name:       view.Owner.Name,
			Block:      view.Owner.Block,
			Department: view.Owner.Department,
			Email:      view.Owner.Email,
			Phone:      view.Owner.Phone,
			AltPhone:   view.Owner.AltPhone,
		}
	}
	return resp
}
