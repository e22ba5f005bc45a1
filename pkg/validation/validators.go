package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxStringLength caps every sanitized field as defense-in-depth
	MaxStringLength = 1000
	// MaxEmailLength is the RFC 5321 practical ceiling
	MaxEmailLength = 254
)

// Simple shape check: local part, "@", domain, ".", tld. Deliverability is
// the transport's problem, not ours.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// NotBlank validates that a string is non-empty after trimming whitespace
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ContactEmail validates the contact-form email shape. Empty values pass;
// presence is enforced separately by notblank.
func ContactEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if strings.TrimSpace(val) == "" {
		return true
	}
	return emailRegex.MatchString(val) && len(val) <= MaxEmailLength
}

// SanitizeInput trims the value, strips angle brackets so no markup survives
// into the rendered email, and truncates to the configured ceiling.
func SanitizeInput(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	if len(s) > MaxStringLength {
		s = s[:MaxStringLength]
	}
	return s
}

// SanitizeEmail lower-cases in addition to the standard sanitization
func SanitizeEmail(input string) string {
	return SanitizeInput(strings.ToLower(input))
}
