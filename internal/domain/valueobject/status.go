package valueobject

import "github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"

type Visibility string

const (
	VisibilityCampus    Visibility = "CAMPUS"
	VisibilityAdminOnly Visibility = "ADMIN_ONLY"
)

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityCampus, VisibilityAdminOnly:
		return true
	}
	return false
}

func NewVisibility(v string) (Visibility, error) {
	if v == "" {
		return VisibilityCampus, nil
	}
	vis := Visibility(v)
	if !vis.IsValid() {
		return "", apperror.Field("visibility", "некорректная область видимости")
	}
	return vis, nil
}

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING_REVIEW"
	ReviewStatusApproved ReviewStatus = "APPROVED"
	ReviewStatusRejected ReviewStatus = "REJECTED"
)

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

func NewReviewStatus(status string) (ReviewStatus, error) {
	s := ReviewStatus(status)
	if !s.IsValid() {
		return "", apperror.Field("review_status", "некорректный статус модерации")
	}
	return s, nil
}

type PublishStatus string

const (
	PublishStatusDraft     PublishStatus = "DRAFT"
	PublishStatusPublished PublishStatus = "PUBLISHED"
)

func (s PublishStatus) IsValid() bool {
	switch s {
	case PublishStatusDraft, PublishStatusPublished:
		return true
	}
	return false
}

func NewPublishStatus(status string) (PublishStatus, error) {
	s := PublishStatus(status)
	if !s.IsValid() {
		return "", apperror.Field("publish_status", "некорректный статус публикации")
	}
	return s, nil
}

type ReportStatus string

const (
	ReportStatusOpen    ReportStatus = "OPEN"
	ReportStatusMatched ReportStatus = "MATCHED"
	ReportStatusClosed  ReportStatus = "CLOSED"
)

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusOpen, ReportStatusMatched, ReportStatusClosed:
		return true
	}
	return false
}

// CanTransitionTo: CLOSED терминален, остальные переходы разрешены модератору.
func (s ReportStatus) CanTransitionTo(newStatus ReportStatus) bool {
	transitions := map[ReportStatus][]ReportStatus{
		ReportStatusOpen:    {ReportStatusOpen, ReportStatusMatched, ReportStatusClosed},
		ReportStatusMatched: {ReportStatusOpen, ReportStatusMatched, ReportStatusClosed},
		ReportStatusClosed:  {ReportStatusClosed},
	}

	for _, status := range transitions[s] {
		if status == newStatus {
			return true
		}
	}
	return false
}

func NewReportStatus(status string) (ReportStatus, error) {
	s := ReportStatus(status)
	if !s.IsValid() {
		return "", apperror.Field("status", "некорректный статус заявки")
	}
	return s, nil
}

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusApproved ClaimStatus = "APPROVED"
	ClaimStatusRejected ClaimStatus = "REJECTED"
)

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected:
		return true
	}
	return false
}

// IsResolution сообщает, может ли модератор выставить этот статус.
func (s ClaimStatus) IsResolution() bool {
	return s == ClaimStatusApproved || s == ClaimStatusRejected
}

func NewClaimStatus(status string) (ClaimStatus, error) {
	s := ClaimStatus(status)
	if !s.IsValid() {
		return "", apperror.Field("status", "некорректный статус заявки на вещь")
	}
	return s, nil
}
