package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens a gin binding error into a field -> message map
// matching the error envelope of validation responses.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fields["body"] = "Request body is malformed."
		return fields
	}

	for _, fieldErr := range validationErrors {
		fields[snakeCase(fieldErr.Field())] = message(fieldErr)
	}

	return fields
}

func message(err validator.FieldError) string {
	field := snakeCase(err.Field())
	switch err.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + err.Param()
	case "max":
		return field + " must be at most " + err.Param()
	case "gte":
		return field + " must be greater than or equal to " + err.Param()
	case "lte":
		return field + " must be less than or equal to " + err.Param()
	default:
		return field + " is invalid"
	}
}

// snakeCase maps Go struct field names to their JSON form.
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
