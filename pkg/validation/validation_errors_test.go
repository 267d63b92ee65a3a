package validation_test

import (
	"errors"
	"testing"

	"go-contact-relay/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// mirrors the contact form struct shape bound by the handler
type contactForm struct {
	FromName  string `binding:"required"`
	FromEmail string `binding:"required"`
	Title     string `binding:"required"`
	Body      string `binding:"required"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	t.Run("Should name missing fields by their wire names", func(t *testing.T) {
		err := v.Struct(contactForm{FromName: "Jane"})

		messages := validation.FormatValidationErrors(err)

		assert.Equal(t, []string{
			"from_email is required",
			"title is required",
			"body is required",
		}, messages)
	})

	t.Run("Should pass non-validator errors through", func(t *testing.T) {
		messages := validation.FormatValidationErrors(errors.New("unexpected EOF"))

		assert.Equal(t, []string{"unexpected EOF"}, messages)
	})
}
