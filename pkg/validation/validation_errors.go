package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels used in user-facing
// validation messages
var FieldLabels = map[string]string{
	"FirstName": "First name",
	"LastName":  "Last name",
	"Email":     "Email",
	"Subject":   "Subject",
	"Message":   "Message",
}

// FormatValidationErrors converts validator.ValidationErrors to the ordered
// list of human-readable messages returned to the caller
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("%s is required", label)

	case "max":
		return fmt.Sprintf("%s is too long", label)

	case "contact_email":
		return "Invalid email format"

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid", label)
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
