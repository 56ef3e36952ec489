// Package directory keeps the ordered collection of employees together with
// the year filter view and the cursor used to browse it.
package directory

import "employeedir/types"

type (
	List = types.List[*types.Employee]
	Node = types.Node[*types.Employee]
)

// Directory is single threaded. Hosts running it from several goroutines
// must serialize every call themselves.
type Directory struct {
	employees *List

	view       *List
	filterYear int
	filtering  bool
}

func New() *Directory {
	return &Directory{employees: types.NewList[*types.Employee]()}
}

func (d *Directory) Append(e *types.Employee) *Node {
	return d.employees.Push(e)
}

// Remove deletes the first employee equal to e.
func (d *Directory) Remove(e *types.Employee) bool {
	return d.employees.Remove(e)
}

func (d *Directory) PositionOf(e *types.Employee) int {
	return d.employees.Position(e)
}

func (d *Directory) Count() int {
	return d.employees.Len()
}

func (d *Directory) IsEmpty() bool {
	return d.employees.IsEmpty()
}

func (d *Directory) Head() *Node {
	return d.employees.First()
}

func (d *Directory) Tail() *Node {
	return d.employees.Last()
}

func (d *Directory) Employees() []*types.Employee {
	return d.employees.Values()
}

// NumberExists reports whether any employee other than exclude already uses
// number. exclude is compared by identity.
func (d *Directory) NumberExists(number int, exclude *types.Employee) bool {
	return d.employees.Find(func(e *types.Employee) bool {
		return e.Number == number && e != exclude
	}) != nil
}

// RemoveNode deletes exactly the employee behind n.
func (d *Directory) RemoveNode(n *Node) bool {
	return d.employees.RemoveNode(n)
}
