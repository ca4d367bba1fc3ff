package validation

import "regexp"

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-_.]{1,30}$`)
	passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()_+=-]{8,64}$`)
	deckNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\s\-_.!']{0,99}$`)
)

func ValidateEmail(email string) bool {
	return len(email) <= 255 && emailPattern.MatchString(email)
}

func ValidateUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

func ValidatePassword(password string) bool {
	return passwordPattern.MatchString(password)
}

func ValidateDeckName(name string) bool {
	return deckNamePattern.MatchString(name)
}
