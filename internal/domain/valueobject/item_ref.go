package valueobject

import (
	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

// ItemType - дискриминатор цели комментария.
type ItemType string

const (
	ItemTypeLostReport ItemType = "LostReport"
	ItemTypeFoundItem  ItemType = "FoundItem"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeLostReport, ItemTypeFoundItem:
		return true
	}
	return false
}

// NewItemType принимает и старое имя "LostItem".
func NewItemType(itemType string) (ItemType, error) {
	if itemType == "LostItem" {
		return ItemTypeLostReport, nil
	}
	t := ItemType(itemType)
	if !t.IsValid() {
		return "", apperror.Field("item_type", "тип объекта должен быть LostReport или FoundItem")
	}
	return t, nil
}

// ItemRef - ссылка на заявку о пропаже или на найденную вещь.
type ItemRef struct {
	Type ItemType
	ID   uuid.UUID
}

func LostReportRef(id uuid.UUID) ItemRef {
	return ItemRef{Type: ItemTypeLostReport, ID: id}
}

func FoundItemRef(id uuid.UUID) ItemRef {
	return ItemRef{Type: ItemTypeFoundItem, ID: id}
}

func NewItemRef(itemType string, id uuid.UUID) (ItemRef, error) {
	t, err := NewItemType(itemType)
	if err != nil {
		return ItemRef{}, err
	}
	if id == uuid.Nil {
		return ItemRef{}, apperror.Field("item_id", "идентификатор объекта обязателен")
	}
	return ItemRef{Type: t, ID: id}, nil
}
