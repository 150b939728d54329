package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

const (
	MinDescriptionLength = 10
	// FeedClosedRetention - сколько закрытая заявка остаётся в ленте.
	FeedClosedRetention = 7 * 24 * time.Hour
)

type LostReport struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	ItemName        string
	Category        valueobject.Category
	Description     string
	Color           *string
	Brand           *string
	UniqueMark      *string
	DateLost        time.Time
	LocationLost    string
	ContactPhone    *string
	Visibility      valueobject.Visibility
	ReviewStatus    valueobject.ReviewStatus
	PublishStatus   valueobject.PublishStatus
	Status          valueobject.ReportStatus
	NotifyRequested bool
	AdminNote       *string
	ClosedAt        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type LostReportDetails struct {
	ItemName        string
	Category        valueobject.Category
	Description     string
	Color           *string
	Brand           *string
	UniqueMark      *string
	DateLost        time.Time
	LocationLost    string
	ContactPhone    *string
	Visibility      valueobject.Visibility
	NotifyRequested bool
}

func NewLostReport(ownerID uuid.UUID, d LostReportDetails) (*LostReport, error) {
	if ownerID == uuid.Nil {
		return nil, apperror.ErrUnauthorized
	}
	if err := validateItemDescriptors(d.ItemName, d.Category, d.Description, d.LocationLost, "location_lost", d.DateLost, "date_lost"); err != nil {
		return nil, err
	}
	if !d.Visibility.IsValid() {
		return nil, apperror.Field("visibility", "некорректная область видимости")
	}

	now := time.Now()
	r := &LostReport{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		ItemName:        strings.TrimSpace(d.ItemName),
		Category:        d.Category,
		Description:     strings.TrimSpace(d.Description),
		Color:           d.Color,
		Brand:           d.Brand,
		UniqueMark:      d.UniqueMark,
		DateLost:        d.DateLost,
		LocationLost:    strings.TrimSpace(d.LocationLost),
		ContactPhone:    d.ContactPhone,
		Visibility:      d.Visibility,
		NotifyRequested: d.NotifyRequested,
		ReviewStatus:    valueobject.ReviewStatusPending,
		PublishStatus:   valueobject.PublishStatusDraft,
		Status:          valueobject.ReportStatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Приватная заявка без запроса уведомления не требует модерации.
	if r.Visibility == valueobject.VisibilityAdminOnly && !r.NotifyRequested {
		r.ReviewStatus = valueobject.ReviewStatusApproved
	}
	r.syncPublication(false)

	return r, nil
}

// Moderation перечисляет ровно те поля, которые может менять модератор.
type Moderation struct {
	ReviewStatus  *valueobject.ReviewStatus
	PublishStatus *valueobject.PublishStatus
	AdminNote     *string
	Status        *valueobject.ReportStatus
}

type ModerationOutcome struct {
	// Approved - заявка перешла в APPROVED в рамках этого изменения.
	Approved bool
	// Closed - заявка закрыта в рамках этого изменения.
	Closed bool
}

func (r *LostReport) Moderate(m Moderation, now time.Time) (ModerationOutcome, error) {
	var outcome ModerationOutcome

	if m.ReviewStatus != nil && !m.ReviewStatus.IsValid() {
		return outcome, apperror.Field("review_status", "некорректный статус модерации")
	}
	if m.PublishStatus != nil && !m.PublishStatus.IsValid() {
		return outcome, apperror.Field("publish_status", "некорректный статус публикации")
	}
	if m.Status != nil {
		if !m.Status.IsValid() {
			return outcome, apperror.Field("status", "некорректный статус заявки")
		}
		if !r.Status.CanTransitionTo(*m.Status) {
			return outcome, apperror.Field("status", "закрытую заявку нельзя открыть повторно")
		}
	}

	if m.ReviewStatus != nil {
		outcome.Approved = *m.ReviewStatus == valueobject.ReviewStatusApproved &&
			r.ReviewStatus != valueobject.ReviewStatusApproved
		r.ReviewStatus = *m.ReviewStatus
	}
	if m.PublishStatus != nil {
		r.PublishStatus = *m.PublishStatus
	}
	if m.AdminNote != nil {
		note := strings.TrimSpace(*m.AdminNote)
		if note == "" {
			r.AdminNote = nil
		} else {
			r.AdminNote = &note
		}
	}

	if m.Status != nil {
		if *m.Status == valueobject.ReportStatusClosed {
			r.Close(now)
			outcome.Closed = true
		} else {
			r.Status = *m.Status
		}
	}

	// Закрытая заявка не публикуется заново и не считается одобренной.
	closed := r.Status == valueobject.ReportStatusClosed
	if closed {
		outcome.Approved = false
	}

	// Явно переданный DRAFT имеет приоритет над автопубликацией.
	autoPublish := !closed && m.ReviewStatus != nil && *m.ReviewStatus == valueobject.ReviewStatusApproved && m.PublishStatus == nil
	r.syncPublication(autoPublish)
	r.UpdatedAt = now

	return outcome, nil
}

// MarkMatched переводит заявку в MATCHED независимо от модерации.
func (r *LostReport) MarkMatched(now time.Time) error {
	if r.Status == valueobject.ReportStatusClosed {
		return apperror.New(apperror.ErrCodeBadRequest, "заявка уже закрыта")
	}
	r.Status = valueobject.ReportStatusMatched
	r.syncPublication(false)
	r.UpdatedAt = now
	return nil
}

// Close терминален. Повторный вызов только обновляет closedAt.
func (r *LostReport) Close(now time.Time) {
	r.Status = valueobject.ReportStatusClosed
	closedAt := now
	r.ClosedAt = &closedAt
	r.syncPublication(false)
	r.UpdatedAt = now
}

// syncPublication - единственное место, где выводится publishStatus.
// PUBLISHED допустим только при APPROVED и CAMPUS.
func (r *LostReport) syncPublication(autoPublish bool) {
	eligible := r.ReviewStatus == valueobject.ReviewStatusApproved && r.Visibility == valueobject.VisibilityCampus
	if !eligible {
		r.PublishStatus = valueobject.PublishStatusDraft
		return
	}
	if autoPublish {
		r.PublishStatus = valueobject.PublishStatusPublished
	}
}

func (r *LostReport) IsPublicationConsistent() bool {
	if r.PublishStatus != valueobject.PublishStatusPublished {
		return true
	}
	return r.ReviewStatus == valueobject.ReviewStatusApproved && r.Visibility == valueobject.VisibilityCampus
}

func (r *LostReport) IsPublished() bool {
	return r.PublishStatus == valueobject.PublishStatusPublished
}

func (r *LostReport) IsOwnedBy(userID uuid.UUID) bool {
	return r.OwnerID == userID
}

// IsVisibleInFeed: опубликованные открытые и сопоставленные заявки,
// а также закрытые не раньше FeedClosedRetention назад.
func (r *LostReport) IsVisibleInFeed(now time.Time) bool {
	if r.PublishStatus != valueobject.PublishStatusPublished ||
		r.Visibility != valueobject.VisibilityCampus ||
		r.ReviewStatus != valueobject.ReviewStatusApproved {
		return false
	}
	switch r.Status {
	case valueobject.ReportStatusOpen, valueobject.ReportStatusMatched:
		return true
	case valueobject.ReportStatusClosed:
		return r.ClosedAt != nil && !r.ClosedAt.Before(now.Add(-FeedClosedRetention))
	}
	return false
}

func (r *LostReport) CanBeViewedBy(req Requester, now time.Time) bool {
	return r.IsOwnedBy(req.UserID) || req.IsModerator() || r.IsVisibleInFeed(now)
}

// CanSeeContacts - контакты видят только владелец и администратор.
func (r *LostReport) CanSeeContacts(req Requester) bool {
	return r.IsOwnedBy(req.UserID) || req.IsAdmin()
}

func (r *LostReport) CanBeClosedBy(req Requester) bool {
	return r.IsOwnedBy(req.UserID) || req.IsAdmin()
}

func validateItemDescriptors(name string, category valueobject.Category, description, location, locationField string, date time.Time, dateField string) error {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["item_name"] = "название вещи обязательно"
	}
	if !category.IsValid() {
		fields["category"] = "некорректная категория"
	}
	if utf8.RuneCountInString(strings.TrimSpace(description)) < MinDescriptionLength {
		fields["description"] = "описание должно быть не короче 10 символов"
	}
	if strings.TrimSpace(location) == "" {
		fields[locationField] = "место обязательно"
	}
	if date.IsZero() {
		fields[dateField] = "дата обязательна"
	}
	if len(fields) > 0 {
		return apperror.Validation(fields)
	}
	return nil
}
