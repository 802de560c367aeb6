package store

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10,11}$`)
)

func validEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// validPhone accepts 10-11 digits, ignoring spaces and dashes.
func validPhone(phone string) bool {
	stripped := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return phoneRegex.MatchString(stripped)
}
