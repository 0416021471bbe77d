package usecase

import "unicode"

// ValidPassword enforces the account password policy: 6 to 16 characters
// with at least one digit and one special character.
func ValidPassword(pw string) bool {
	n := len([]rune(pw))
	if n < 6 || n > 16 {
		return false
	}

	var digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsSpace(r):
			special = true
		}
	}
	return digit && special
}
