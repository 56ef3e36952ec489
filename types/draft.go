package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidNumber = errors.New("employee number must be a valid integer")

// Draft is employee input as typed into a form: every field is text and
// empty optional fields stay unset.
type Draft struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	HireDate string `json:"hireDate,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (d Draft) Trimmed() Draft {
	return Draft{
		Name:     strings.TrimSpace(d.Name),
		Number:   strings.TrimSpace(d.Number),
		HireDate: strings.TrimSpace(d.HireDate),
		Phone:    strings.TrimSpace(d.Phone),
		Email:    strings.TrimSpace(d.Email),
	}
}

// Complete reports whether all optional fields were filled in.
func (d Draft) Complete() bool {
	return d.HireDate != "" && d.Phone != "" && d.Email != ""
}

// Employee validates the draft and builds a new record from it.
func (d Draft) Employee() (*Employee, error) {
	d = d.Trimmed()

	if err := ValidateName(d.Name); err != nil {
		return nil, err
	}
	if d.Number == "" {
		return nil, fmt.Errorf("%w: number is blank", ErrInvalidNumber)
	}
	number, err := strconv.Atoi(d.Number)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, d.Number)
	}

	employee := NewEmployee(d.Name, number)
	if d.HireDate != "" {
		if err := ValidateHireDate(d.HireDate); err != nil {
			return nil, err
		}
		hired, _ := ParseHireDate(d.HireDate)
		employee.HireDate = &hired
	}
	if d.Phone != "" {
		if err := ValidatePhone(d.Phone); err != nil {
			return nil, err
		}
		employee.Phone = d.Phone
	}
	if d.Email != "" {
		if err := ValidateEmail(d.Email); err != nil {
			return nil, err
		}
		employee.Email = d.Email
	}

	return employee, nil
}

// DraftOf renders an employee back into form fields.
func DraftOf(e *Employee) Draft {
	return Draft{
		Name:     e.Name,
		Number:   strconv.Itoa(e.Number),
		HireDate: e.FormatHireDate(),
		Phone:    e.Phone,
		Email:    e.Email,
	}
}
