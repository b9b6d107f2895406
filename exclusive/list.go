package exclusive

import (
	"github.com/bradenaw/juniper/iterator"
)

// List is a singly-linked LIFO list. The zero value is an empty list ready to use.
type List[T any] struct {
	head   *node[T]
	length int
}

type node[T any] struct {
	value T
	next  *node[T]
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty is true for a list without any values.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Push inserts value at the front of the list.
func (l *List[T]) Push(value T) {
	l.head = &node[T]{value: value, next: l.head}
	l.length++
}

// Pop removes the front value from the list and returns it.
// If the list is empty, Pop returns the zero value of T and false.
func (l *List[T]) Pop() (T, bool) {
	if l.head == nil {
		var none T
		return none, false
	}
	n := l.head
	l.head, n.next = n.next, nil
	l.length--
	return n.value, true
}

// Peek returns the front value without removing it.
func (l *List[T]) Peek() (T, bool) {
	if l.head == nil {
		var none T
		return none, false
	}
	return l.head.value, true
}

// PeekMut returns a pointer to the front value, allowing in-place modification.
func (l *List[T]) PeekMut() (*T, bool) {
	if l.head == nil {
		return nil, false
	}
	return &l.head.value, true
}

// Get returns the value at position i, counting from the front. The list is scanned
// forward from the head, thus Get is O(i). For i out of range, Get returns false.
func (l *List[T]) Get(i int) (T, bool) {
	if n := l.at(i); n != nil {
		return n.value, true
	}
	var none T
	return none, false
}

// GetMut returns a pointer to the value at position i, or false if i is out of range.
func (l *List[T]) GetMut(i int) (*T, bool) {
	if n := l.at(i); n != nil {
		return &n.value, true
	}
	return nil, false
}

func (l *List[T]) at(i int) *node[T] {
	if i < 0 {
		return nil
	}
	n := l.head
	for ; n != nil && i > 0; i-- {
		n = n.next
	}
	return n
}

// Clear removes all values from the list. Nodes are unlinked one by one, head to tail.
func (l *List[T]) Clear() {
	cnt := 0
	for n := l.head; n != nil; cnt++ {
		next := n.next
		n.next = nil
		n = next
	}
	l.head = nil
	l.length = 0
	tracer().Debugf("cleared list, unlinked %d nodes", cnt)
}

// --- Iteration -------------------------------------------------------------

// Iter returns an iterator over the values of the list, front to back.
// Every call to Iter starts a fresh iteration from the current head; the list is
// not modified.
//
//	it := lst.Iter()
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//	    fmt.Println(v)
//	}
func (l *List[T]) Iter() iterator.Iterator[T] {
	return &iter[T]{next: l.head}
}

// IterMut returns an iterator yielding a pointer to each value of the list, front to back,
// exactly once per position. Values may be modified through these pointers.
func (l *List[T]) IterMut() iterator.Iterator[*T] {
	return &iterMut[T]{next: l.head}
}

// Drain returns an iterator which pops values off the front of the list as it
// advances. After the iteration is exhausted, the list is empty.
func (l *List[T]) Drain() iterator.Iterator[T] {
	return &drain[T]{l: l}
}

type iter[T any] struct {
	next *node[T]
}

func (it *iter[T]) Next() (T, bool) {
	if it.next == nil {
		var none T
		return none, false
	}
	n := it.next
	it.next = n.next
	return n.value, true
}

type iterMut[T any] struct {
	next *node[T]
}

func (it *iterMut[T]) Next() (*T, bool) {
	if it.next == nil {
		return nil, false
	}
	n := it.next
	it.next = n.next
	return &n.value, true
}

type drain[T any] struct {
	l *List[T]
}

func (d *drain[T]) Next() (T, bool) {
	return d.l.Pop()
}
