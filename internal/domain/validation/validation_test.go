package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	for _, ok := range []string{"a@b.co", "john.doe+x@techflow.ca", " jane@example.org "} {
		assert.True(t, IsEmail(ok), ok)
	}
	for _, bad := range []string{"", "a@b", "a b@c.d", "@b.co", "a@.co", "a@@b.co"} {
		assert.False(t, IsEmail(bad), bad)
	}
}

func TestIsPhone(t *testing.T) {
	for _, ok := range []string{"6475728321", "(647) 572-8321", "+1 647-572-8321", "647.572.8321"} {
		assert.True(t, IsPhone(ok), ok)
	}
	for _, bad := range []string{"", "0647", "phone", "+0123", "12345678901234567"} {
		assert.False(t, IsPhone(bad), bad)
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(647) 572-8321", FormatPhone("647-572-8321"))
	assert.Equal(t, "+1 (647) 572-8321", FormatPhone("16475728321"))
	assert.Equal(t, "+44 20 7946", FormatPhone(" +44 20 7946 "))
}

type contactForm struct {
	FirstName string `json:"first_name" validate:"required" label:"First name"`
	Email     string `json:"email" validate:"required,contact_email"`
	Phone     string `json:"phone" validate:"omitempty,contact_phone"`
}

func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := Struct(contactForm{FirstName: "Ada", Email: "ada@example.com", Phone: "(647) 572-8321"})
		assert.Empty(t, errs)
	})

	t.Run("accumulates every failure", func(t *testing.T) {
		errs := Struct(&contactForm{Email: "nope", Phone: "abc"})
		require.Len(t, errs, 3)
		assert.Equal(t, Error{Field: "first_name", Code: CodeRequired, Message: "First name is required"}, errs[0])
		assert.Equal(t, CodeInvalidEmail, errs[1].Code)
		assert.Equal(t, "email", errs[1].Field)
		assert.Equal(t, CodeInvalidPhone, errs[2].Code)
	})

	t.Run("label falls back to field name", func(t *testing.T) {
		errs := Struct(contactForm{FirstName: "Ada"})
		require.Len(t, errs, 1)
		assert.Equal(t, "Email is required", errs[0].Message)
	})
}

func TestAsErrors(t *testing.T) {
	wrapped := fmt.Errorf("draft: %w", Errors{{Field: "x", Code: CodeRequired, Message: "X is required"}})
	es, ok := AsErrors(wrapped)
	require.True(t, ok)
	assert.Len(t, es, 1)
	assert.Equal(t, "X is required", es.Error())

	_, ok = AsErrors(fmt.Errorf("plain"))
	assert.False(t, ok)
}
