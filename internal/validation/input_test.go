package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type sampleRequest struct {
	ItemName string `json:"item_name" validate:"required,max=10"`
	Category string `json:"category" validate:"required,category"`
	Status   string `json:"status" validate:"omitempty,oneof=OPEN CLOSED"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(sampleRequest{ItemName: "Wallet", Category: "ID Card"})
	assert.NoError(t, err)
}

func TestStruct_FieldErrorsUseJSONNames(t *testing.T) {
	err := Struct(sampleRequest{ItemName: "Very long item name", Category: "Umbrella", Status: "LOST"})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.ErrCodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "item_name")
	assert.Contains(t, appErr.Fields, "category")
	assert.Contains(t, appErr.Fields, "status")
	assert.Equal(t, "поле category содержит неизвестную категорию", appErr.Fields["category"])
}

func TestStruct_Required(t *testing.T) {
	err := Struct(sampleRequest{})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "поле category обязательно", appErr.Message)
}
