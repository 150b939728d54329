package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

// Константы валидации
const (
	MaxItemNameLength    = 120
	MaxDescriptionLength = 2000
	MaxLocationLength    = 200
	MaxClaimMessage      = 2000
	MaxCommentLength     = 1000
	MaxAdminNoteLength   = 1000
	MaxPickupLength      = 500
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// В ошибках используем имя поля из json тега.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return valueobject.Category(fl.Field().String()).IsValid()
	})

	return v
}

// Struct проверяет структуру по тегам validate и возвращает
// VALIDATION_ERROR с ошибками по полям.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return apperror.Wrap(err, apperror.ErrCodeValidation, "некорректные данные запроса")
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = message(fe)
	}
	return apperror.Validation(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("поле %s обязательно", fe.Field())
	case "min":
		return fmt.Sprintf("поле %s должно быть не короче %s символов", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("поле %s должно быть не длиннее %s символов", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("поле %s должно быть одним из: %s", fe.Field(), fe.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("поле %s должно быть валидным UUID", fe.Field())
	case "category":
		return fmt.Sprintf("поле %s содержит неизвестную категорию", fe.Field())
	default:
		return fmt.Sprintf("поле %s некорректно", fe.Field())
	}
}
