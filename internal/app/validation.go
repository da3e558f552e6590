package app

import "regexp"

// The password floor applies at every entry point that writes a password:
// signup, profile edit and reset.
const minPasswordLength = 6

// Deliberately simple local@domain.tld check, matching what the frontend
// validates against.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
