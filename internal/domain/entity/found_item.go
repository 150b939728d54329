package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
)

type FoundItem struct {
	ID                 uuid.UUID
	ItemName           string
	Category           valueobject.Category
	Description        string
	Color              *string
	Brand              *string
	UniqueMark         *string
	DateFound          time.Time
	LocationFound      string
	ImageURL           *string
	ReportedBy         *uuid.UUID
	LinkedLostReportID *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type FoundItemDetails struct {
	ItemName           string
	Category           valueobject.Category
	Description        string
	Color              *string
	Brand              *string
	UniqueMark         *string
	DateFound          time.Time
	LocationFound      string
	ImageURL           *string
	LinkedLostReportID *uuid.UUID
}

// NewFoundItem создаёт запись о находке. reportedBy может быть nil.
func NewFoundItem(reportedBy *uuid.UUID, d FoundItemDetails) (*FoundItem, error) {
	if err := validateItemDescriptors(d.ItemName, d.Category, d.Description, d.LocationFound, "location_found", d.DateFound, "date_found"); err != nil {
		return nil, err
	}

	now := time.Now()
	return &FoundItem{
		ID:                 uuid.New(),
		ItemName:           strings.TrimSpace(d.ItemName),
		Category:           d.Category,
		Description:        strings.TrimSpace(d.Description),
		Color:              d.Color,
		Brand:              d.Brand,
		UniqueMark:         d.UniqueMark,
		DateFound:          d.DateFound,
		LocationFound:      strings.TrimSpace(d.LocationFound),
		ImageURL:           d.ImageURL,
		ReportedBy:         reportedBy,
		LinkedLostReportID: d.LinkedLostReportID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

func (f *FoundItem) IsLinked() bool {
	return f.LinkedLostReportID != nil && *f.LinkedLostReportID != uuid.Nil
}
