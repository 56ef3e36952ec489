package server

import (
	"errors"
	"fmt"
	"strings"

	"employeedir/types"
)

func (s *Server) processItem(item *types.Item) (logMessage string) {
	s.dataMux.Lock()
	defer s.dataMux.Unlock()
	switch item.Action {
	case types.AddEmployee:
		if item.Employee == nil {
			return "AddEmployee() failed. No employee given"
		}
		if err := s.session.BeginCreate(); err != nil {
			return fmt.Sprintf("AddEmployee() failed. %s", err)
		}
		employee, err := s.session.Accept(*item.Employee)
		if err != nil {
			s.session.Cancel()
			return fmt.Sprintf("AddEmployee() failed. %s", err)
		}
		return fmt.Sprintf("AddEmployee() done. %s added, total: %d", employee, s.session.Directory().Count())
	case types.ModifyEmployee:
		if item.Employee == nil {
			return "ModifyEmployee() failed. No employee given"
		}
		if _, err := s.session.BeginModify(); err != nil {
			return fmt.Sprintf("ModifyEmployee() failed. %s", err)
		}
		employee, err := s.session.Accept(*item.Employee)
		if err != nil {
			s.session.Cancel()
			return fmt.Sprintf("ModifyEmployee() failed. %s", err)
		}
		return fmt.Sprintf("ModifyEmployee() done. %s", employee)
	case types.RemoveEmployee:
		employee, err := employeeOf(item)
		if err != nil {
			return fmt.Sprintf("RemoveEmployee() failed. %s", err)
		}
		ok := s.session.Directory().Remove(employee)
		return fmt.Sprintf("RemoveEmployee() done. %s removed: %t", employee, ok)
	case types.GetPosition:
		employee, err := employeeOf(item)
		if err != nil {
			return fmt.Sprintf("GetPosition() failed. %s", err)
		}
		return fmt.Sprintf("GetPosition() done. %s position: %d", employee, s.session.Directory().PositionOf(employee))
	case types.ListEmployees:
		return fmt.Sprintf("ListEmployees() done.%s", s.listEmployees())
	case types.Next:
		moved, err := s.session.Next()
		if err != nil {
			return fmt.Sprintf("Next() failed. %s", err)
		}
		return fmt.Sprintf("Next() done. moved: %t, %s", moved, s.describeCurrent())
	case types.Back:
		moved, err := s.session.Back()
		if err != nil {
			return fmt.Sprintf("Back() failed. %s", err)
		}
		return fmt.Sprintf("Back() done. moved: %t, %s", moved, s.describeCurrent())
	case types.Current:
		return fmt.Sprintf("Current() done. %s", s.describeCurrent())
	case types.DeleteCurrent:
		removed, err := s.session.DeleteCurrent()
		if err != nil {
			return fmt.Sprintf("DeleteCurrent() failed. %s", err)
		}
		return fmt.Sprintf("DeleteCurrent() done. %s removed, %s", removed, s.describeCurrent())
	case types.ApplyFilter:
		year := item.Year
		if year == 0 {
			year = s.filterYear
		}
		found, err := s.session.ApplyFilter(year)
		if err != nil {
			return fmt.Sprintf("ApplyFilter() failed. %s", err)
		}
		if !found {
			return fmt.Sprintf("ApplyFilter() done. No employees hired in %d to display", year)
		}
		return fmt.Sprintf("ApplyFilter() done. year: %d, matches: %d, %s", year, s.session.Directory().View().Len(), s.describeCurrent())
	case types.ClearFilter:
		if err := s.session.ClearFilter(); err != nil {
			return fmt.Sprintf("ClearFilter() failed. %s", err)
		}
		return fmt.Sprintf("ClearFilter() done. %s", s.describeCurrent())
	default:
		return "Unknown action!"
	}
}

func employeeOf(item *types.Item) (*types.Employee, error) {
	if item.Employee == nil {
		return nil, errors.New("no employee given")
	}
	return item.Employee.Employee()
}

func (s *Server) describeCurrent() string {
	current := s.session.Current()
	if current == nil {
		return "no employee to display"
	}
	position, total := s.session.Position()
	return fmt.Sprintf("Employee #%d of %d: %s", position, total, current)
}

func (s *Server) listEmployees() string {
	var resp strings.Builder
	for n := s.session.Directory().Head(); n != nil; n = n.Next() {
		fmt.Fprintf(&resp, " %s", n.Value())
	}
	return resp.String()
}
