package valueobject

import "github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleStaff   Role = "STAFF"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// IsModerator - STAFF и ADMIN могут модерировать заявки и решать заявки на вещи.
func (r Role) IsModerator() bool {
	return r == RoleStaff || r == RoleAdmin
}

func NewRole(role string) (Role, error) {
	r := Role(role)
	if !r.IsValid() {
		return "", apperror.Field("role", "некорректная роль")
	}
	return r, nil
}

// NotifyScope определяет, какие письма пользователь согласен получать.
type NotifyScope string

const (
	NotifyScopeAll         NotifyScope = "all"
	NotifyScopeMatchesOnly NotifyScope = "matches-only"
	NotifyScopeNone        NotifyScope = "none"
)

func (s NotifyScope) IsValid() bool {
	switch s {
	case NotifyScopeAll, NotifyScopeMatchesOnly, NotifyScopeNone:
		return true
	}
	return false
}

// AllowsEmail проверяет, пропускает ли область письмо с данным приоритетом.
func (s NotifyScope) AllowsEmail(isMatch bool) bool {
	switch s {
	case NotifyScopeNone:
		return false
	case NotifyScopeMatchesOnly:
		return isMatch
	default:
		return true
	}
}

// NewNotifyScope принимает и старые написания "block" и "admin-only".
func NewNotifyScope(scope string) (NotifyScope, error) {
	switch scope {
	case "":
		return NotifyScopeAll, nil
	case "block", "block-only", "admin-only":
		return NotifyScopeMatchesOnly, nil
	}
	s := NotifyScope(scope)
	if !s.IsValid() {
		return "", apperror.Field("notify_scope", "некорректная область уведомлений")
	}
	return s, nil
}
