// Package validation checks user-supplied credentials before they leave the
// client. The server validates again; this layer only exists to fail fast
// with readable messages.
package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern is deliberately loose: local part, @, domain with a dot. The
// server is the authority on deliverability.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MaxEmailLen caps the address length per RFC 3696 erratum.
	MaxEmailLen = 254

	// MinPasswordLen is the minimum accepted password length.
	MinPasswordLen = 8
	// MaxPasswordLen bounds passwords so a pasted file cannot be one.
	MaxPasswordLen = 128
)

// ValidateEmail checks that email looks like an address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email is not a valid address")
	}
	return nil
}

// ValidatePassword checks the password length bounds.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLen)
	}
	return nil
}
