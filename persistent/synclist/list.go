package synclist

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/bradenaw/juniper/iterator"
	"github.com/npillmayer/lists/maybe"
)

// List is a version of an immutable list which may be shared between goroutines.
// The zero value is the empty list.
//
// Copying a List value does not register a new owner of its nodes. Goroutines should
// receive a Clone of a version and Release it when done.
type List[T any] struct {
	head *node[T]
}

// Nodes are never modified after construction, except for their owner count
// and for being cleared after the last owner is gone.
type node[T any] struct {
	value  T
	next   *node[T]
	owners int32 // accessed atomically
}

func newNode[T any](value T, next *node[T]) *node[T] {
	return &node[T]{value: value, next: next, owners: 1}
}

func (n *node[T]) share() *node[T] {
	if n != nil {
		atomic.AddInt32(&n.owners, 1)
	}
	return n
}

// drop removes an owner from n and returns the number of remaining owners.
func (n *node[T]) drop() int32 {
	return atomic.AddInt32(&n.owners, -1)
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
//
// Prepend is safe to call concurrently on the same version.
func (l List[T]) Prepend(value T) List[T] {
	return List[T]{head: newNode(value, l.head.share())}
}

// Push prepends value in place, consuming the previous version of l.
// Push modifies l and therefore must not race with other uses of the same variable.
func (l *List[T]) Push(value T) {
	l.head = newNode(value, l.head)
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
//
// Replace modifies l and must not race with other uses of the same variable.
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
// i is out of range.
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
// Any number of goroutines may iterate over the same version at the same time.
func (l List[T]) Iter() iterator.Iterator[T] {
	return &iter[T]{next: l.head}
}

// Clone returns a copy of l which is registered as an additional owner of l's nodes.
// Hand out clones to goroutines, not plain copies.
func (l List[T]) Clone() List[T] {
	return List[T]{head: l.head.share()}
}

// Owners returns the number of owners of the front node, or 0 for the empty list.
// With concurrent clients the result is a snapshot only.
func (l List[T]) Owners() int {
	if l.head == nil {
		return 0
	}
	return int(atomic.LoadInt32(&l.head.owners))
}

// Release drops this version of the list, leaving l empty.
// Walking from the front, every node loses one owner. Nodes without remaining owners
// are cleared; the walk stops at the first node still owned by another version.
// Exactly one releaser observes a node losing its last owner.
func (l *List[T]) Release() {
	n := l.head
	l.head = nil
	for n != nil {
		remaining := n.drop()
		assertThat(remaining >= 0, "node released more often than shared")
		if remaining > 0 {
			break
		}
		next := n.next
		var zero T
		n.value, n.next = zero, nil
		n = next
	}
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
