// Package validate holds the pure input validators used at the API and
// payment boundaries. No side effects, no I/O.
package validate

import (
	"regexp"
	"strings"
	"time"
)

const MinPasswordLength = 6

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	uuidRe    = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	upiRe     = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z]{2,64}$`)
	airportRe = regexp.MustCompile(`^[A-Z]{3}$`)
	digitsRe  = regexp.MustCompile(`^[0-9]{12,19}$`)

	visaRe       = regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)
	mastercardRe = regexp.MustCompile(`^(5[1-5][0-9]{14}|2(2[2-9][0-9]{12}|[3-6][0-9]{13}|7[01][0-9]{12}|720[0-9]{12}))$`)
	amexRe       = regexp.MustCompile(`^3[47][0-9]{13}$`)
	discoverRe   = regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)

	wsRe = regexp.MustCompile(`\s+`)
)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func IsStrongPassword(password string) bool {
	return len(password) >= MinPasswordLength
}

// IsValidUUID accepts UUID versions 1 through 5, case-insensitive.
func IsValidUUID(id string) bool {
	return uuidRe.MatchString(strings.ToLower(id))
}

func IsValidUPI(upiID string) bool {
	return upiRe.MatchString(NormalizeUPI(upiID))
}

func NormalizeUPI(upiID string) string {
	return strings.TrimSpace(upiID)
}

func IsValidAirportCode(code string) bool {
	return airportRe.MatchString(strings.ToUpper(code))
}

func IsValidISODate(date string) bool {
	if _, err := time.Parse("2006-01-02", date); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, date)
	return err == nil
}

// NormalizeCardNumber strips all whitespace from a card number.
func NormalizeCardNumber(num string) string {
	return wsRe.ReplaceAllString(num, "")
}

// LuhnCheck validates a 12-19 digit card number (whitespace stripped)
// against the Luhn checksum.
func LuhnCheck(num string) bool {
	n := NormalizeCardNumber(num)
	if !digitsRe.MatchString(n) {
		return false
	}
	sum := 0
	alt := false
	for i := len(n) - 1; i >= 0; i-- {
		d := int(n[i] - '0')
		if alt {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		alt = !alt
	}
	return sum%10 == 0
}

// CardBrand classifies a card number by prefix/length pattern.
func CardBrand(num string) string {
	n := NormalizeCardNumber(num)
	switch {
	case visaRe.MatchString(n):
		return "VISA"
	case mastercardRe.MatchString(n):
		return "MASTERCARD"
	case amexRe.MatchString(n):
		return "AMEX"
	case discoverRe.MatchString(n):
		return "DISCOVER"
	default:
		return "UNKNOWN"
	}
}
