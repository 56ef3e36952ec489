package types

const none = -1

// Equaler is implemented by values stored in a List. Lookup and removal
// compare by content through Equal, never by identity.
type Equaler[T any] interface {
	Equal(other T) bool
}

type slot[T any] struct {
	next int
	prev int
	gen  uint32
	used bool

	value T
}

// Node is a handle to one element of a List. Handles stay safe after the
// element is removed: they become invalid instead of dangling.
type Node[T Equaler[T]] struct {
	list  *List[T]
	index int
	gen   uint32
}

// Valid reports whether the element behind the handle is still in its list.
func (n *Node[T]) Valid() bool {
	if n == nil || n.list == nil || n.index < 0 || n.index >= len(n.list.slots) {
		return false
	}
	s := &n.list.slots[n.index]
	return s.used && s.gen == n.gen
}

func (n *Node[T]) Value() (value T) {
	if n.Valid() {
		value = n.list.slots[n.index].value
	}

	return
}

func (n *Node[T]) Next() *Node[T] {
	if !n.Valid() {
		return nil
	}
	return n.list.node(n.list.slots[n.index].next)
}

func (n *Node[T]) Prev() *Node[T] {
	if !n.Valid() {
		return nil
	}
	return n.list.node(n.list.slots[n.index].prev)
}

// List is a doubly linked list kept in a slice of slots. Links are slot
// indices, removed slots go to a free list and are reused by Push.
// The zero value is not ready for use, call NewList.
type List[T Equaler[T]] struct {
	slots []slot[T]
	free  []int
	head  int
	tail  int
	count int
}

func NewList[T Equaler[T]]() *List[T] {
	return &List[T]{head: none, tail: none}
}

func (l *List[T]) node(index int) *Node[T] {
	if index == none {
		return nil
	}
	return &Node[T]{list: l, index: index, gen: l.slots[index].gen}
}

func (l *List[T]) IsEmpty() bool {
	return l.head == none
}

func (l *List[T]) Len() int {
	return l.count
}

func (l *List[T]) First() *Node[T] {
	return l.node(l.head)
}

func (l *List[T]) Last() *Node[T] {
	return l.node(l.tail)
}

func (l *List[T]) Push(value T) *Node[T] {
	index := len(l.slots)
	if n := len(l.free); n > 0 {
		index = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.slots = append(l.slots, slot[T]{})
	}

	s := &l.slots[index]
	s.used = true
	s.value = value
	s.next = none
	s.prev = l.tail

	if l.tail == none {
		// If first element
		l.head = index
	} else {
		l.slots[l.tail].next = index
	}
	l.tail = index
	l.count++

	return l.node(index)
}

// Remove unlinks the first element equal to value.
func (l *List[T]) Remove(value T) bool {
	for i := l.head; i != none; i = l.slots[i].next {
		if l.slots[i].value.Equal(value) {
			l.unlink(i)
			return true
		}
	}

	return false
}

// RemoveNode unlinks exactly the element behind n. It returns false for
// invalid handles and for handles of another list.
func (l *List[T]) RemoveNode(n *Node[T]) bool {
	if !n.Valid() || n.list != l {
		return false
	}
	l.unlink(n.index)
	return true
}

func (l *List[T]) unlink(index int) {
	s := &l.slots[index]

	if s.prev == none {
		l.head = s.next
	} else {
		l.slots[s.prev].next = s.next
	}

	if s.next == none {
		l.tail = s.prev
	} else {
		l.slots[s.next].prev = s.prev
	}

	var zero T
	s.value = zero
	s.next = none
	s.prev = none
	s.used = false
	s.gen++

	l.free = append(l.free, index)
	l.count--
}

// Position returns the zero-based index of the first element equal to value,
// or -1.
func (l *List[T]) Position(value T) int {
	position := 0
	for i := l.head; i != none; i = l.slots[i].next {
		if l.slots[i].value.Equal(value) {
			return position
		}
		position++
	}

	return -1
}

func (l *List[T]) Find(match func(T) bool) *Node[T] {
	for i := l.head; i != none; i = l.slots[i].next {
		if match(l.slots[i].value) {
			return l.node(i)
		}
	}

	return nil
}

// Filter builds a new list holding, in order, the values that satisfy match.
// Values are shared with l, the nodes are not.
func (l *List[T]) Filter(match func(T) bool) *List[T] {
	filtered := NewList[T]()
	for i := l.head; i != none; i = l.slots[i].next {
		if match(l.slots[i].value) {
			filtered.Push(l.slots[i].value)
		}
	}

	return filtered
}

func (l *List[T]) Values() (values []T) {
	values = make([]T, 0, l.count)
	for i := l.head; i != none; i = l.slots[i].next {
		values = append(values, l.slots[i].value)
	}

	return
}
