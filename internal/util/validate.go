package util

import "regexp"

// emailPattern mirrors the client-side check so both ends reject the same
// addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether the address looks like an email.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
