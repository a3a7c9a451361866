package validation

import (
	"regexp"
)

// Regex patterns
var (
	// Same pattern the contact form has always shipped with: one @, no
	// whitespace, and a dotted domain part
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Lenient phone check: optional +, digits with common separators
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ().-]{7,20}$`)
)

// ValidEmail reports whether a string looks like an email address
func ValidEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// ValidPhone validates a phone number structure
func ValidPhone(value string) bool {
	if value == "" {
		return true // Optional field
	}
	return phoneRegex.MatchString(value)
}
