package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrBlankName     = errors.New("name cannot be blank")
	ErrNameHasDigits = errors.New("name cannot contain numbers")
	ErrInvalidPhone  = errors.New("invalid phone number, expected 9 digits")
	ErrInvalidEmail  = errors.New("invalid email address")
)

var (
	digitsRe   = regexp.MustCompile(`\d`)
	hireDateRe = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/\d{4}$`)
	phoneRe    = regexp.MustCompile(`^[0-9]{9}$`)
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	if digitsRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrNameHasDigits, name)
	}
	return nil
}

// ValidateHireDate checks the strict two-digit form accepted from input
// fields and that the day exists in that month.
func ValidateHireDate(date string) error {
	if !hireDateRe.MatchString(date) {
		return fmt.Errorf("%w: %q", ErrMalformedDate, date)
	}
	_, err := ParseHireDate(date)
	return err
}

func ValidatePhone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}
