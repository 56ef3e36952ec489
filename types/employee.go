package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const HireDateLayout = "02/01/2006"

var ErrMalformedDate = errors.New("malformed hire date, expected DD/MM/YYYY")

// Employee is the record kept by the directory. Phone and Email are empty
// when not specified, HireDate is nil.
type Employee struct {
	Number   int
	Name     string
	HireDate *time.Time
	Phone    string
	Email    string
}

func NewEmployee(name string, number int) *Employee {
	return &Employee{Name: name, Number: number}
}

// NewEmployeeDetails builds a fully specified employee. The date is parsed
// before anything is constructed.
func NewEmployeeDetails(name string, number int, date, phone, email string) (*Employee, error) {
	hired, err := ParseHireDate(date)
	if err != nil {
		return nil, err
	}

	return &Employee{
		Number:   number,
		Name:     name,
		HireDate: &hired,
		Phone:    phone,
		Email:    email,
	}, nil
}

// ParseHireDate parses "DD/MM/YYYY". Day and month may omit the leading zero.
func ParseHireDate(text string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q has %d parts", ErrMalformedDate, text, len(parts))
	}

	var fields [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %s", ErrMalformedDate, text, err)
		}
		fields[i] = v
	}
	day, month, year := fields[0], fields[1], fields[2]

	if month < 1 || month > 12 || day < 1 || year < 1 {
		return time.Time{}, fmt.Errorf("%w: %q out of range", ErrMalformedDate, text)
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q has no such day", ErrMalformedDate, text)
	}

	return date, nil
}

// HiredIn reports whether the employee has a hire date in year.
func (e *Employee) HiredIn(year int) bool {
	return e != nil && e.HireDate != nil && e.HireDate.Year() == year
}

// Equal compares employees field by field. Hire dates match on calendar day.
func (e *Employee) Equal(other *Employee) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Number != other.Number || e.Name != other.Name || e.Phone != other.Phone || e.Email != other.Email {
		return false
	}
	if e.HireDate == nil || other.HireDate == nil {
		return e.HireDate == other.HireDate
	}

	y1, m1, d1 := e.HireDate.Date()
	y2, m2, d2 := other.HireDate.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (e *Employee) FormatHireDate() string {
	if e.HireDate == nil {
		return ""
	}
	return e.HireDate.Format(HireDateLayout)
}

func (e *Employee) String() string {
	return fmt.Sprintf("Employee(number: %d, name: %s, hired: %s, phone: %s, email: %s)",
		e.Number, e.Name, e.FormatHireDate(), e.Phone, e.Email)
}
