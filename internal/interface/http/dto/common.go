package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/notify"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

// dateLayouts - допустимые форматы дат: полный RFC3339 или только дата.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate разбирает дату из запроса; field попадает в ошибку валидации.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.Field(field, "дата должна быть в формате YYYY-MM-DD или RFC3339")
}

// ParseOptionalUUID возвращает nil для пустой строки.
func ParseOptionalUUID(field string, value *string) (*uuid.UUID, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*value))
	if err != nil {
		return nil, apperror.Field(field, "поле должно быть валидным UUID")
	}
	return &id, nil
}

// NotificationStatus - вторичный результат операции: что стало с уведомлениями.
type NotificationStatus struct {
	Failed     bool            `json:"failed"`
	Deliveries []notify.Result `json:"deliveries"`
}

func ToNotificationStatus(d notify.Deliveries) NotificationStatus {
	if d == nil {
		d = notify.Deliveries{}
	}
	return NotificationStatus{Failed: d.Failed(), Deliveries: d}
}
