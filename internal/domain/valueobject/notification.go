package valueobject

type NotificationType string

const (
	NotificationReportCreated   NotificationType = "REPORT_CREATED"
	NotificationReportPublished NotificationType = "REPORT_PUBLISHED"
	NotificationClaimRequested  NotificationType = "CLAIM_REQUESTED"
	NotificationClaimApproved   NotificationType = "CLAIM_APPROVED"
	NotificationClaimRejected   NotificationType = "CLAIM_REJECTED"
	NotificationMatchFound      NotificationType = "MATCH_FOUND"
	NotificationNewComment      NotificationType = "NEW_COMMENT"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationReportCreated, NotificationReportPublished, NotificationClaimRequested,
		NotificationClaimApproved, NotificationClaimRejected, NotificationMatchFound, NotificationNewComment:
		return true
	}
	return false
}

// NotificationMode - каналы доставки, включённые на уровне приложения.
type NotificationMode string

const (
	NotificationModeEmail NotificationMode = "email"
	NotificationModeInApp NotificationMode = "inapp"
	NotificationModeBoth  NotificationMode = "both"
)

func (m NotificationMode) InAppEnabled() bool {
	return m == NotificationModeInApp || m == NotificationModeBoth
}

func (m NotificationMode) EmailEnabled() bool {
	return m == NotificationModeEmail || m == NotificationModeBoth
}

// ParseNotificationMode возвращает both для пустого или неизвестного значения.
func ParseNotificationMode(mode string) NotificationMode {
	switch m := NotificationMode(mode); m {
	case NotificationModeEmail, NotificationModeInApp, NotificationModeBoth:
		return m
	}
	return NotificationModeBoth
}
