package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
)

type LostReportRepository interface {
	Create(ctx context.Context, report *entity.LostReport) error
	Update(ctx context.Context, report *entity.LostReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LostReport, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.LostReport, int, error)
	ListFeed(ctx context.Context, filter FeedFilter) ([]*entity.LostReport, int, error)
	List(ctx context.Context, filter LostReportFilter) ([]*entity.LostReport, int, error)
	Count(ctx context.Context, filter LostReportFilter) (int, error)
}

// FeedFilter описывает ленту: опубликованные CAMPUS/APPROVED заявки,
// закрытые - только если closed_at >= ClosedSince.
type FeedFilter struct {
	Category    *valueobject.Category
	// OwnerIDs ограничивает ленту владельцами; nil - без ограничения.
	OwnerIDs    []uuid.UUID
	ClosedSince time.Time
	Limit       int
	Offset      int
}

type LostReportFilter struct {
	Status       *valueobject.ReportStatus
	Visibility   *valueobject.Visibility
	ReviewStatus *valueobject.ReviewStatus
	Limit        int
	Offset       int
}
