package contact

import (
	"errors"
	"regexp"
)

var (
	// ErrMissingFields indicates name, email or message is empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidEmail indicates the email failed the format check.
	ErrInvalidEmail = errors.New("invalid email format")
)

// emailPattern is local@domain.tld where no part contains "@" or whitespace.
// Whitespace also covers the vertical tab, Unicode space separators,
// U+2028, U+2029 and U+FEFF, none of which RE2's \s matches.
// It does not verify that the address exists.
var emailPattern = regexp.MustCompile(
	`^[^@\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+` +
		`@[^@\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+` +
		`\.[^@\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+$`,
)

// Submission is one contact form payload. It is never stored.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks presence first, then the email format.
func (s Submission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return ErrMissingFields
	}
	if !ValidEmail(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidEmail reports whether email passes the shallow format check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
