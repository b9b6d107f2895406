package list

import (
	"fmt"
	"strings"

	"github.com/bradenaw/juniper/iterator"
	"github.com/npillmayer/lists/maybe"
)

// List is a version of an immutable list. The zero value is the empty list.
//
// Copying a List value does not register a new owner of its nodes; use Clone to
// create a version which may be released independently.
type List[T any] struct {
	head *node[T]
}

type node[T any] struct {
	value  T
	next   *node[T]
	owners int
}

// share registers an additional owner of n.
func (n *node[T]) share() *node[T] {
	if n != nil {
		n.owners++
	}
	return n
}

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// From creates a list of values, with values[0] at the front.
func From[T any](values ...T) List[T] {
	var l List[T]
	for i := len(values) - 1; i >= 0; i-- {
		l.Push(values[i])
	}
	return l
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len walks the list and counts its values.
func (l List[T]) Len() int {
	cnt := 0
	for n := l.head; n != nil; n = n.next {
		cnt++
	}
	return cnt
}

// Prepend returns a new version of the list with value in front.
// The receiver is not modified; both versions share the receiver's nodes.
func (l List[T]) Prepend(value T) List[T] {
	return List[T]{head: &node[T]{value: value, next: l.head.share(), owners: 1}}
}

// Push prepends value in place. Other than Prepend, ownership of the previous
// front node moves to the new node, i.e. the previous version of l is consumed.
func (l *List[T]) Push(value T) {
	l.head = &node[T]{value: value, next: l.head, owners: 1}
}

// Tail returns a new version of the list without its front value.
// The tail of the empty list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next.share()}
}

// Replace releases the version held by l and makes l hold next instead.
// Use it in place of plain re-assignment, which leaves the old version registered
// as an owner:
//
//	l.Replace(l.Prepend(x))   // rather than l = l.Prepend(x)
//	l.Replace(l.Tail())       // rather than l = l.Tail()
func (l *List[T]) Replace(next List[T]) {
	old := *l
	*l = next
	old.Release()
}

// Head returns the front value of the list, or Nothing for the empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Get returns the value at position i, counting from the front, or Nothing if
// i is out of range. Get is O(i).
func (l List[T]) Get(i int) maybe.Maybe[T] {
	if i < 0 {
		return maybe.Nothing[T]()
	}
	n := l.head
	for ; n != nil && i > 0; i-- {
		n = n.next
	}
	if n == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(n.value)
}

// Iter returns an iterator over the values of the list, front to back.
// Iterating does not modify the list and may be repeated any number of times.
func (l List[T]) Iter() iterator.Iterator[T] {
	return &iter[T]{next: l.head}
}

// Clone returns a copy of l which is registered as an additional owner of l's nodes.
func (l List[T]) Clone() List[T] {
	return List[T]{head: l.head.share()}
}

// Owners returns the number of owners of the front node, or 0 for the empty list.
func (l List[T]) Owners() int {
	if l.head == nil {
		return 0
	}
	return l.head.owners
}

// Release drops this version of the list, leaving l empty.
// Walking from the front, every node loses one owner. Nodes without remaining owners
// are cleared; the walk stops at the first node still owned by another version.
func (l *List[T]) Release() {
	n := l.head
	l.head = nil
	cnt := 0
	for n != nil {
		n.owners--
		assertThat(n.owners >= 0, "node %v released more often than shared", n.value)
		if n.owners > 0 {
			break
		}
		next := n.next
		var zero T
		n.value, n.next = zero, nil
		n = next
		cnt++
	}
	tracer().Debugf("released list version, cleared %d nodes", cnt)
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.value))
	}
	b.WriteByte(')')
	return b.String()
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
