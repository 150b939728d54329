package valueobject

import "github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"

// Category - фиксированный справочник типов вещей.
type Category string

const (
	CategoryIDCard      Category = "ID Card"
	CategoryPhone       Category = "Phone"
	CategoryWallet      Category = "Wallet"
	CategoryBag         Category = "Bag"
	CategoryKeys        Category = "Keys"
	CategoryBook        Category = "Book"
	CategoryElectronics Category = "Electronics"
	CategoryOther       Category = "Other"
)

func Categories() []Category {
	return []Category{
		CategoryIDCard, CategoryPhone, CategoryWallet, CategoryBag,
		CategoryKeys, CategoryBook, CategoryElectronics, CategoryOther,
	}
}

func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func NewCategory(category string) (Category, error) {
	c := Category(category)
	if !c.IsValid() {
		return "", apperror.Field("category", "некорректная категория")
	}
	return c, nil
}
