package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"first.last@example.co.uk",
		"user+tag@sub.domain.io",
	}
	invalid := []string{
		"",
		"plain",
		"a@b",         // no dot in the domain part
		"a b@c.com",   // whitespace before the @
		"a@b c.com",   // whitespace in the domain
		"a@@b.com",    // second @ lands in the domain segment pattern
		"@b.com",      // empty local part
		"a@.com\nx",   // trailing content past the anchor
	}

	for _, email := range valid {
		assert.True(t, ValidEmail(email), "expected valid: %q", email)
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), "expected invalid: %q", email)
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone(""), "phone is optional")
	assert.True(t, ValidPhone("5551234"))
	assert.True(t, ValidPhone("+1 (555) 123-4567"))
	assert.False(t, ValidPhone("call me"))
	assert.False(t, ValidPhone("555"))
}
