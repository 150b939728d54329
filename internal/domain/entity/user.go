package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type User struct {
	ID                        uuid.UUID
	Name                      string
	Email                     string
	Role                      valueobject.Role
	InstitutionalID           *string
	Block                     string
	Department                string
	Phone                     *string
	AltPhone                  *string
	EmailNotificationsEnabled bool
	NotifyScope               valueobject.NotifyScope
	IsApproved                bool
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// NewUser создаёт запись справочника. Студенту обязательны корпус и кафедра.
func NewUser(name, email string, role valueobject.Role, block, department string) (*User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "имя обязательно"
	}
	if strings.TrimSpace(email) == "" {
		fields["email"] = "email обязателен"
	}
	if !role.IsValid() {
		fields["role"] = "некорректная роль"
	}
	if role == valueobject.RoleStudent {
		if strings.TrimSpace(block) == "" {
			fields["block"] = "корпус обязателен для студента"
		}
		if strings.TrimSpace(department) == "" {
			fields["department"] = "кафедра обязательна для студента"
		}
	}
	if len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}

	now := time.Now()
	return &User{
		ID:                        uuid.New(),
		Name:                      strings.TrimSpace(name),
		Email:                     strings.ToLower(strings.TrimSpace(email)),
		Role:                      role,
		Block:                     strings.TrimSpace(block),
		Department:                strings.TrimSpace(department),
		EmailNotificationsEnabled: true,
		NotifyScope:               valueobject.NotifyScopeAll,
		IsApproved:                role == valueobject.RoleStudent,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}, nil
}

func (u *User) HasEmail() bool {
	return strings.TrimSpace(u.Email) != ""
}

// WantsEmail проверяет пользовательские настройки для письма с данным приоритетом.
func (u *User) WantsEmail(isMatch bool) bool {
	return u.HasEmail() && u.EmailNotificationsEnabled && u.NotifyScope.AllowsEmail(isMatch)
}

// Requester - контекст аутентифицированного пользователя, передаётся в каждый сценарий явно.
type Requester struct {
	UserID uuid.UUID
	Role   valueobject.Role
}

func (r Requester) IsAdmin() bool {
	return r.Role == valueobject.RoleAdmin
}

func (r Requester) IsModerator() bool {
	return r.Role.IsModerator()
}
