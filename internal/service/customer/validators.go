package customer

import "strings"

const minPasswordLength = 8

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLength
}
