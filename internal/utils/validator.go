package utils

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
	passwordCharset = regexp.MustCompile(`^[a-zA-Z0-9[:punct:]]+$`)
	hasLetter       = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
)

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	if len(username) < 3 || len(username) > 32 {
		return false, "username must be 3 to 32 characters"
	}
	if !usernamePattern.MatchString(username) {
		return false, "username may only contain letters, digits and underscores"
	}
	if digitsPattern.MatchString(username) {
		return false, "username cannot be all digits"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "password must be at least 8 characters"
	}
	if !passwordCharset.MatchString(password) {
		return false, "password may only contain letters, digits and symbols"
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return false, "password must contain at least one letter and one digit"
	}
	return true, ""
}

func ValidateEmail(email string) (bool, string) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false, "invalid email address"
	}
	return true, ""
}
