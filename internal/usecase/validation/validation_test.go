package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
}

type cmd struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Severity string `json:"severity" validate:"oneof=low medium high"`
	Items    []line `json:"items" validate:"min=1,dive"`
}

func TestStruct_OK(t *testing.T) {
	err := Struct(cmd{Name: "a", Severity: "low", Items: []line{{Description: "x", Quantity: 1}}})
	assert.NoError(t, err)
}

func TestStruct_FieldMessages(t *testing.T) {
	err := Struct(cmd{Email: "nope", Severity: "urgent", Items: []line{{Quantity: 0}}})

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "is required", verr.Fields["name"])
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	assert.Equal(t, "must be one of: low, medium, high", verr.Fields["severity"])
	assert.Equal(t, "is required", verr.Fields["items[0].description"])
	assert.Equal(t, "must be greater than 0", verr.Fields["items[0].quantity"])
}

func TestStruct_EmptySlice(t *testing.T) {
	err := Struct(cmd{Name: "a", Severity: "high"})

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must contain at least 1 item(s)", verr.Fields["items"])
}

func TestError_MessageIsSorted(t *testing.T) {
	err := &Error{Fields: map[string]string{"b": "is required", "a": "is invalid"}}
	assert.Equal(t, "invalid input: a is invalid; b is required", err.Error())
	assert.Equal(t, "is required", Field("rate", "is required").Fields["rate"])
}

func TestStruct_NotBlank(t *testing.T) {
	type prompt struct {
		Text string `json:"text" validate:"required,notblank"`
	}

	var verr *Error
	require.True(t, errors.As(Struct(prompt{Text: " \t\n"}), &verr))
	assert.Equal(t, "is required", verr.Fields["text"])
	assert.NoError(t, Struct(prompt{Text: " ok "}))
}
