package directory

import "employeedir/types"

// Cursor is the current position while browsing a Directory. It always points
// into the full collection. With a filter active, movement skips employees
// that do not match, checked against their current hire date rather than the
// filter snapshot.
type Cursor struct {
	dir     *Directory
	current *Node
}

func NewCursor(dir *Directory) *Cursor {
	c := &Cursor{dir: dir}
	c.Reset()
	return c
}

// Current returns the node under the cursor. A cursor left empty or pointing
// at a removed employee falls back to the head of the directory.
func (c *Cursor) Current() *Node {
	if !c.current.Valid() {
		c.Reset()
	}
	return c.current
}

func (c *Cursor) Employee() *types.Employee {
	return c.Current().Value()
}

func (c *Cursor) Reset() {
	c.current = c.settle(c.dir.Head())
}

// Appended repositions an empty cursor after the directory gained an
// employee.
func (c *Cursor) Appended() {
	if !c.current.Valid() {
		c.Reset()
	}
}

func (c *Cursor) Next() bool {
	n := c.seek(c.Current(), (*Node).Next)
	if n == nil {
		return false
	}
	c.current = n
	return true
}

func (c *Cursor) Back() bool {
	n := c.seek(c.Current(), (*Node).Prev)
	if n == nil {
		return false
	}
	c.current = n
	return true
}

func (c *Cursor) HasNext() bool {
	return c.seek(c.Current(), (*Node).Next) != nil
}

func (c *Cursor) HasBack() bool {
	return c.seek(c.Current(), (*Node).Prev) != nil
}

// Delete removes the employee under the cursor and moves to the one that
// followed it, or to the head when it was the last.
func (c *Cursor) Delete() (*types.Employee, bool) {
	cur := c.Current()
	if cur == nil {
		return nil, false
	}

	employee := cur.Value()
	next := cur.Next()
	c.dir.RemoveNode(cur)

	if next == nil {
		next = c.dir.Head()
	}
	c.current = c.settle(next)

	return employee, true
}

// ApplyYear builds the year filter and positions the cursor on a matching
// employee: the current one, the next match after it, or the first entry of
// the filter view. It returns false when nobody matches.
func (c *Cursor) ApplyYear(year int) bool {
	head, _ := c.dir.BuildYearFilter(year)
	if head == nil {
		c.current = nil
		return false
	}

	cur := c.current
	if !cur.Valid() {
		cur = nil
	}
	if cur != nil && c.dir.Matches(cur.Value()) {
		return true
	}
	if n := c.seek(cur, (*Node).Next); n != nil {
		c.current = n
		return true
	}

	first := head.Value()
	c.current = c.dir.employees.Find(func(e *types.Employee) bool { return e == first })
	return c.current != nil
}

func (c *Cursor) ClearYear() {
	c.dir.ClearFilter()
	if !c.current.Valid() {
		c.Reset()
	}
}

func (c *Cursor) seek(from *Node, step func(*Node) *Node) *Node {
	if from == nil {
		return nil
	}
	for n := step(from); n != nil; n = step(n) {
		if c.dir.Matches(n.Value()) {
			return n
		}
	}
	return nil
}

// settle returns n when it matches the filter, otherwise the next match
// after it, otherwise the first match from the head.
func (c *Cursor) settle(n *Node) *Node {
	if n == nil {
		return nil
	}
	if c.dir.Matches(n.Value()) {
		return n
	}
	if m := c.seek(n, (*Node).Next); m != nil {
		return m
	}
	return c.dir.employees.Find(c.dir.Matches)
}
