package validation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrIDNumberFormat  = errors.New("id number must be 1 letter followed by 9 digits, e.g. A123456789")
	ErrPhoneFormat     = errors.New("phone number must be 10 digits, e.g. 0912345678")
	ErrEmailFormat     = errors.New("email format is invalid, e.g. user@example.com")
	ErrPasswordLength  = errors.New("password must be between 6 and 100 characters")
	ErrFullNameLength  = errors.New("full name is required and must not exceed 100 characters")
	ErrGenderValue     = errors.New("gender must be 'M', 'F' or 'Other'")
	ErrBirthDateFormat = errors.New("birth date must be in YYYY-MM-DD format")
)

// IsValidationError reports whether err is one of the format sentinels, so
// the HTTP layer can map every malformed-input case to a 400 in one place.
func IsValidationError(err error) bool {
	for _, sentinel := range []error{
		ErrIDNumberFormat, ErrPhoneFormat, ErrEmailFormat, ErrPasswordLength,
		ErrFullNameLength, ErrGenderValue, ErrBirthDateFormat,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// IDNumber reports whether s is a valid personal identifier:
// exactly 10 characters, one leading letter and 9 digits.
func IDNumber(s string) bool {
	if len(s) != 10 {
		return false
	}
	if !isAlpha(s[0]) {
		return false
	}
	return allDigits(s[1:])
}

func Phone(s string) bool {
	return len(s) == 10 && allDigits(s)
}

// Email is intentionally permissive; full RFC validation is out of scope.
func Email(s string) bool {
	return strings.Contains(s, "@") && strings.Contains(s, ".") && len(s) <= 100
}

func Password(s string) bool {
	return len(s) >= 6 && len(s) <= 100
}

func FullName(s string) bool {
	return s != "" && len(s) <= 100
}

func Gender(s string) bool {
	return s == "M" || s == "F" || s == "Other"
}

func BirthDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
