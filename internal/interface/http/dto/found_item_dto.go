package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
)

type CreateFoundItemRequest struct {
	ItemName           string  `json:"item_name" validate:"required,max=120"`
	Category           string  `json:"category" validate:"required,category"`
	Description        string  `json:"description" validate:"required,min=10,max=2000"`
	Color              *string `json:"color" validate:"omitempty,max=60"`
	Brand              *string `json:"brand" validate:"omitempty,max=60"`
	UniqueMark         *string `json:"unique_mark" validate:"omitempty,max=200"`
	DateFound          string  `json:"date_found" validate:"required"`
	LocationFound      string  `json:"location_found" validate:"required,max=200"`
	ImageURL           *string `json:"image_url" validate:"omitempty,url,max=500"`
	LinkedLostReportID *string `json:"linked_lost_report_id" validate:"omitempty,uuid"`
}

type FoundItemResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ItemName           string     `json:"item_name"`
	Category           string     `json:"category"`
	Description        string     `json:"description"`
	Color              *string    `json:"color"`
	Brand              *string    `json:"brand"`
	UniqueMark         *string    `json:"unique_mark"`
	DateFound          time.Time  `json:"date_found"`
	LocationFound      string     `json:"location_found"`
	ImageURL           *string    `json:"image_url"`
	ReportedBy         *uuid.UUID `json:"reported_by"`
	LinkedLostReportID *uuid.UUID `json:"linked_lost_report_id"`
	CreatedAt          time.Time  `json:"created_at"`
}

type CreateFoundItemResponse struct {
	Item               FoundItemResponse   `json:"item"`
	MatchedReport      *LostReportResponse `json:"matched_report,omitempty"`
	NotificationStatus NotificationStatus  `json:"notification_status"`
}

func ToFoundItemResponse(item *entity.FoundItem) FoundItemResponse {
	return FoundItemResponse{
		ID:                 item.ID,
		ItemName:           item.ItemName,
		Category:           string(item.Category),
		Description:        item.Description,
		Color:              item.Color,
		Brand:              item.Brand,
		UniqueMark:         item.UniqueMark,
		DateFound:          item.DateFound,
		LocationFound:      item.LocationFound,
		ImageURL:           item.ImageURL,
		ReportedBy:         item.ReportedBy,
		LinkedLostReportID: item.LinkedLostReportID,
		CreatedAt:          item.CreatedAt,
	}
}

func ToFoundItemResponses(items []*entity.FoundItem) []FoundItemResponse {
	out := make([]FoundItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToFoundItemResponse(item))
	}
	return out
}
