package helper

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidatorErrors menerjemahkan validator.ValidationErrors → map field → pesan,
// bentuk yang sama dengan JsonValidationError. Semua pelanggaran ikut, bukan cuma yang pertama.
func ValidatorErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = []string{"Invalid input"}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], messageForTag(fe))
	}
	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "oneof":
		return "Value is not in the allowed set"
	default:
		return "Invalid value"
	}
}
