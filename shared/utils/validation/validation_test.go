package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	EventType string `json:"eventType" validate:"required,oneof=wedding corporate social other"`
	Rating    int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

func fieldMessages(errs []FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestFormatBindingErrorFieldErrors(t *testing.T) {
	v := validator.New()
	RegisterTagNames(v)
	err := v.Struct(sampleForm{
		Name:      "J",
		Email:     "not-an-email",
		EventType: "birthday",
		Rating:    9,
	})
	require.Error(t, err)

	formatted := FormatBindingError(err)
	require.Len(t, formatted, 4)

	messages := fieldMessages(formatted)
	assert.Contains(t, messages, "name")
	assert.Contains(t, messages, "email")
	assert.Contains(t, messages, "eventType")
	assert.Contains(t, messages, "rating")
	assert.Contains(t, messages["email"], "valid email")
}

func TestFormatBindingErrorMissingFields(t *testing.T) {
	v := validator.New()
	RegisterTagNames(v)
	err := v.Struct(sampleForm{})
	require.Error(t, err)

	messages := fieldMessages(FormatBindingError(err))
	assert.Contains(t, messages["name"], "required")
	assert.Contains(t, messages["email"], "required")
}

func TestFormatBindingErrorUsesJSONTagNames(t *testing.T) {
	type imageForm struct {
		URL      string `json:"url" validate:"required"`
		SEOTitle string `json:"seoTitle" validate:"required"`
	}

	v := validator.New()
	RegisterTagNames(v)
	err := v.Struct(imageForm{})
	require.Error(t, err)

	messages := fieldMessages(FormatBindingError(err))
	assert.Contains(t, messages, "url")
	assert.Contains(t, messages, "seoTitle")
	assert.NotContains(t, messages, "uRL")
}

func TestFormatBindingErrorNonValidator(t *testing.T) {
	formatted := FormatBindingError(errors.New("unexpected EOF"))
	require.Len(t, formatted, 1)
	assert.Equal(t, "body", formatted[0].Field)
}
