// Package session drives a directory the way the employee form does: a
// browse mode with a cursor, and create/modify modes that edit a draft
// before committing it.
package session

import (
	"errors"
	"fmt"

	"employeedir/directory"
	"employeedir/types"
)

type Mode int

const (
	Browse Mode = iota
	Create
	Modify
)

func (m Mode) String() string {
	switch m {
	case Browse:
		return "Browse"
	case Create:
		return "Create"
	case Modify:
		return "Modify"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

var (
	ErrNotBrowsing     = errors.New("not in browse mode")
	ErrNotEditing      = errors.New("not in create or modify mode")
	ErrNoCurrent       = errors.New("no current employee")
	ErrDuplicateNumber = errors.New("an employee with the same employee number already exists")
)

type Session struct {
	dir    *directory.Directory
	cursor *directory.Cursor
	mode   Mode

	// employee being modified, nil while creating
	editing *types.Employee
}

func New(dir *directory.Directory) *Session {
	return &Session{
		dir:    dir,
		cursor: directory.NewCursor(dir),
		mode:   Browse,
	}
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Directory() *directory.Directory {
	return s.dir
}

func (s *Session) BeginCreate() error {
	if s.mode != Browse {
		return fmt.Errorf("%w: in %s", ErrNotBrowsing, s.mode)
	}
	s.mode = Create
	s.editing = nil
	return nil
}

// BeginModify starts editing the current employee and returns its fields.
func (s *Session) BeginModify() (types.Draft, error) {
	if s.mode != Browse {
		return types.Draft{}, fmt.Errorf("%w: in %s", ErrNotBrowsing, s.mode)
	}
	current := s.cursor.Employee()
	if current == nil {
		return types.Draft{}, ErrNoCurrent
	}
	s.mode = Modify
	s.editing = current
	return types.DraftOf(current), nil
}

// Accept validates draft and commits it. On a validation error the session
// stays in its edit mode.
func (s *Session) Accept(draft types.Draft) (*types.Employee, error) {
	if s.mode != Create && s.mode != Modify {
		return nil, ErrNotEditing
	}

	draft = draft.Trimmed()
	employee, err := draft.Employee()
	if err != nil {
		return nil, err
	}
	if s.dir.NumberExists(employee.Number, s.editing) {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateNumber, employee.Number)
	}

	if s.mode == Create {
		s.dir.Append(employee)
		s.cursor.Appended()
	} else {
		employee = s.apply(draft, employee)
	}

	s.mode = Browse
	s.editing = nil
	return employee, nil
}

// apply updates the record under edit in place. Optional fields are only
// replaced when the draft carries all of them.
func (s *Session) apply(draft types.Draft, parsed *types.Employee) *types.Employee {
	target := s.editing
	target.Name = parsed.Name
	target.Number = parsed.Number
	if draft.Complete() {
		target.HireDate = parsed.HireDate
		target.Phone = parsed.Phone
		target.Email = parsed.Email
	}
	return target
}

func (s *Session) Cancel() {
	s.mode = Browse
	s.editing = nil
}

func (s *Session) Current() *types.Employee {
	return s.cursor.Employee()
}

// Position returns the 1-based position of the current employee and the
// directory size. Position is 0 when there is no current employee.
func (s *Session) Position() (position, total int) {
	total = s.dir.Count()
	if current := s.cursor.Employee(); current != nil {
		position = s.dir.PositionOf(current) + 1
	}
	return
}

func (s *Session) Next() (bool, error) {
	if s.mode != Browse {
		return false, fmt.Errorf("%w: in %s", ErrNotBrowsing, s.mode)
	}
	return s.cursor.Next(), nil
}

func (s *Session) Back() (bool, error) {
	if s.mode != Browse {
		return false, fmt.Errorf("%w: in %s", ErrNotBrowsing, s.mode)
	}
	return s.cursor.Back(), nil
}

func (s *Session) HasNext() bool {
	return s.mode == Browse && s.cursor.HasNext()
}

func (s *Session) HasBack() bool {
	return s.mode == Browse && s.cursor.HasBack()
}

func (s *Session) DeleteCurrent() (*types.Employee, error) {
	if s.mode != Browse {
		return nil, fmt.Errorf("%w: in %s", ErrNotBrowsing, s.mode)
	}
	removed, ok := s.cursor.Delete()
	if !ok {
		return nil, ErrNoCurrent
	}
	return removed, nil
}

// ApplyFilter shows only employees hired in year. It reports whether any
// employee matches.
func (s *Session) ApplyFilter(year int) (bool, error) {
	if s.mode != Browse {
		return false, fmt.Errorf("%w: in %s", ErrNotBrowsing, s.mode)
	}
	return s.cursor.ApplyYear(year), nil
}

func (s *Session) ClearFilter() error {
	if s.mode != Browse {
		return fmt.Errorf("%w: in %s", ErrNotBrowsing, s.mode)
	}
	s.cursor.ClearYear()
	return nil
}

// ToggleFilter switches between the year filter and the full directory.
func (s *Session) ToggleFilter(year int) (filtering bool, err error) {
	if _, active := s.dir.Filter(); active {
		return false, s.ClearFilter()
	}
	_, err = s.ApplyFilter(year)
	return err == nil, err
}
