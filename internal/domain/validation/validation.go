// Package validation is the one field-validation rule set shared by invoices,
// customers and the booking flow.
//
// Contact rules:
//   - email: ^[^\s@]+@[^\s@]+\.[^\s@]+$
//   - phone: ^\+?[1-9]\d{0,15}$ after removing spaces, dashes, dots and parentheses
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	CodeRequired      = "required"
	CodeInvalidEmail  = "invalid_email"
	CodeInvalidPhone  = "invalid_phone"
	CodeNotPositive   = "not_positive"
	CodeNothingToBill = "nothing_to_bill"
	CodePastDate      = "past_date"
	CodeInvalid       = "invalid"
)

const (
	TagEmail = "contact_email"
	TagPhone = "contact_phone"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneNoise   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// Error is one user-correctable problem with an input field.
type Error struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e Error) Error() string { return e.Message }

// Errors is an accumulated list; it is returned as an error only when non-empty.
type Errors []Error

func (es Errors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// AsErrors extracts a validation list from err, if it carries one.
func AsErrors(err error) (Errors, bool) {
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}

func NormalizePhone(s string) string {
	return phoneNoise.Replace(strings.TrimSpace(s))
}

func IsEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

func IsPhone(s string) bool {
	return phonePattern.MatchString(NormalizePhone(s))
}

// FormatPhone renders North American numbers as (XXX) XXX-XXXX and leaves others as typed.
func FormatPhone(s string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:])
	}
	return strings.TrimSpace(s)
}

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func validate() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation(TagEmail, func(fl validator.FieldLevel) bool {
			return IsEmail(fl.Field().String())
		})
		_ = v.RegisterValidation(TagPhone, func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		})
		engine = v
	})
	return engine
}

// Struct validates s using its `validate` tags. Field names come from `json` tags and
// messages use the `label` tag when present.
func Struct(s any) Errors {
	err := validate().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "", Code: CodeInvalid, Message: err.Error()}}
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		label := labelFor(t, fe)
		e := Error{Field: fe.Field()}
		switch fe.Tag() {
		case "required":
			e.Code, e.Message = CodeRequired, label+" is required"
		case TagEmail:
			e.Code, e.Message = CodeInvalidEmail, "Please enter a valid email address"
		case TagPhone:
			e.Code, e.Message = CodeInvalidPhone, "Please enter a valid phone number"
		default:
			e.Code, e.Message = CodeInvalid, label+" is invalid"
		}
		out = append(out, e)
	}
	return out
}

func labelFor(t reflect.Type, fe validator.FieldError) string {
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if l := f.Tag.Get("label"); l != "" {
				return l
			}
		}
	}
	return humanize(fe.Field())
}

func humanize(field string) string {
	s := strings.ReplaceAll(field, "_", " ")
	if s == "" {
		return "Field"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
