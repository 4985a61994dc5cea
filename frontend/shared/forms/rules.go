package forms

import (
	"errors"
	"time"
	"unicode"
)

// passwordSymbols is the fixed set a password must draw its symbol from.
const passwordSymbols = "@$!%*?&#"

// DateLayout is the wire format for dates of birth.
const DateLayout = "2006-01-02"

// Adult reports whether dob is at least 18 years before today, computed by
// calendar-year subtraction with a same-day adjustment rather than a strict
// day count.
func Adult(dob, today time.Time) bool {
	age := today.Year() - dob.Year()
	if age > 18 {
		return true
	}
	return age == 18 && !today.Before(dob.AddDate(18, 0, 0))
}

// ValidatePassword enforces the password complexity policy and returns the
// first violated rule as a user-facing message.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters long")
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			for _, s := range passwordSymbols {
				if r == s {
					hasSymbol = true
					break
				}
			}
		}
	}
	if !hasUpper {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if !hasDigit {
		return errors.New("Password must contain at least one number")
	}
	if !hasSymbol {
		return errors.New("Password must contain at least one special character")
	}
	return nil
}
