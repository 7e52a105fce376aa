package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding so that error
// messages carry JSON field names instead of Go struct field names.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FieldError is a single-entry mapping from a field name to the message of
// its first violated constraint.
type FieldError map[string]string

// ToFieldErrors converts binding/validation failures into one entry per
// violated field. Malformed payloads collapse into a single "payload" entry.
func ToFieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return []FieldError{{"payload": "Invalid JSON payload"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{fe.Field(): messageFor(fe)})
		}
		return out
	}

	return []FieldError{{"payload": "Invalid request payload"}}
}

// Sanitize trims surrounding whitespace and escapes HTML special characters
// so stored values are inert when echoed back into markup.
func Sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

func messageFor(fe validator.FieldError) string {
	label := labelFor(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " format is invalid"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", label, fe.Param())
	case "isdefault":
		return label + " must not be provided"
	case "oneof":
		return label + " must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "url":
		return label + " must be a valid URL"
	default:
		return label + " is invalid"
	}
}

func labelFor(field string) string {
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
