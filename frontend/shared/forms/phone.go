package forms

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// CleanPhoneDigits strips everything but digits and caps the result at ten,
// matching the as-you-type behaviour of the phone inputs.
func CleanPhoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == 10 {
			break
		}
	}
	return b.String()
}

// FormatPhoneNational parses s as a US number and returns the national
// display form "(XXX) XXX-XXXX". Unparseable input is returned unchanged so
// the server-side validation can reject it with a useful message.
func FormatPhoneNational(s string) string {
	num, err := phonenumbers.Parse(s, "US")
	if err != nil {
		return s
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}

// ValidUSPhone reports whether s parses as a valid US number.
func ValidUSPhone(s string) bool {
	num, err := phonenumbers.Parse(s, "US")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}
