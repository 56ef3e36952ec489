package directory

import "employeedir/types"

// BuildYearFilter walks employees once and returns a new list with the
// employees hired in year, in their original order. The records themselves
// are shared with employees.
func BuildYearFilter(employees *List, year int) *List {
	return employees.Filter(func(e *types.Employee) bool {
		return e.HiredIn(year)
	})
}

// BuildYearFilter replaces the current view with a fresh one for year. The
// view is a snapshot and ignores later changes until rebuilt.
func (d *Directory) BuildYearFilter(year int) (head, tail *Node) {
	d.view = BuildYearFilter(d.employees, year)
	d.filterYear = year
	d.filtering = true

	return d.view.First(), d.view.Last()
}

func (d *Directory) ClearFilter() {
	d.view = nil
	d.filterYear = 0
	d.filtering = false
}

func (d *Directory) Filter() (year int, active bool) {
	return d.filterYear, d.filtering
}

// View returns the filtered snapshot, nil when no filter is active.
func (d *Directory) View() *List {
	return d.view
}

// Matches evaluates the active filter against the current contents of e.
func (d *Directory) Matches(e *types.Employee) bool {
	return !d.filtering || e.HiredIn(d.filterYear)
}
