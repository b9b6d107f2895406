package doubly

import (
	"github.com/bradenaw/juniper/iterator"
)

// List is a doubly-linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	slots  []slot[T]
	free   ref // head of the chain of free slots, linked via slot.next
	head   ref
	tail   ref
	length int
}

// New creates an empty list.
func New[T any](opts ...Option) *List[T] {
	var p props
	for _, option := range opts {
		p = option.config(p)
	}
	l := &List[T]{}
	if p.reserve > 0 {
		l.slots = make([]slot[T], 0, p.reserve)
	}
	return l
}

// --- API -------------------------------------------------------------------

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty is true for a list without any values.
func (l *List[T]) IsEmpty() bool {
	return l.head == nilRef
}

// PushFront inserts value at the front of the list.
func (l *List[T]) PushFront(value T) {
	r := l.alloc(value)
	oldHead := l.head
	if oldHead == nilRef {
		l.tail = l.own(r)
		l.head = l.own(r)
		l.length++
		return
	}
	// ownership of oldHead moves from the head slot to the new node's next link
	l.slot(r).next = oldHead
	l.slot(oldHead).prev = l.own(r)
	l.head = l.own(r)
	l.length++
}

// PushBack inserts value at the back of the list.
func (l *List[T]) PushBack(value T) {
	r := l.alloc(value)
	oldTail := l.tail
	if oldTail == nilRef {
		l.head = l.own(r)
		l.tail = l.own(r)
		l.length++
		return
	}
	// ownership of oldTail moves from the tail slot to the new node's prev link
	l.slot(r).prev = oldTail
	l.slot(oldTail).next = l.own(r)
	l.tail = l.own(r)
	l.length++
}

// PopFront removes the front value from the list and returns it.
// If the list is empty, PopFront returns the zero value of T and false.
func (l *List[T]) PopFront() (T, bool) {
	oldHead := l.head
	if oldHead == nilRef {
		var none T
		return none, false
	}
	l.head = nilRef
	l.disown(oldHead)
	s := l.slot(oldHead)
	if newHead := s.next; newHead != nilRef {
		// ownership of newHead moves from the old head's next link to the head slot
		s.next = nilRef
		l.slot(newHead).prev = nilRef
		l.disown(oldHead)
		l.head = newHead
	} else { // oldHead was the only node
		l.tail = nilRef
		l.disown(oldHead)
	}
	l.length--
	return l.release(oldHead), true
}

// PopBack removes the back value from the list and returns it.
// If the list is empty, PopBack returns the zero value of T and false.
func (l *List[T]) PopBack() (T, bool) {
	oldTail := l.tail
	if oldTail == nilRef {
		var none T
		return none, false
	}
	l.tail = nilRef
	l.disown(oldTail)
	s := l.slot(oldTail)
	if newTail := s.prev; newTail != nilRef {
		// ownership of newTail moves from the old tail's prev link to the tail slot
		s.prev = nilRef
		l.slot(newTail).next = nilRef
		l.disown(oldTail)
		l.tail = newTail
	} else { // oldTail was the only node, the head slot references it as well
		l.head = nilRef
		l.disown(oldTail)
	}
	l.length--
	return l.release(oldTail), true
}

// PeekFront returns the front value without removing it.
func (l *List[T]) PeekFront() (T, bool) {
	if l.head == nilRef {
		var none T
		return none, false
	}
	return l.slot(l.head).value, true
}

// PeekBack returns the back value without removing it.
func (l *List[T]) PeekBack() (T, bool) {
	if l.tail == nilRef {
		var none T
		return none, false
	}
	return l.slot(l.tail).value, true
}

// Clear removes all values from the list, front to back, and frees the arena.
func (l *List[T]) Clear() {
	cnt := 0
	for _, ok := l.PopFront(); ok; _, ok = l.PopFront() {
		cnt++
	}
	l.slots = nil
	l.free = nilRef
	tracer().Debugf("cleared list, popped %d values", cnt)
}

// --- Draining --------------------------------------------------------------

// Drain is a consuming iterator over the values of a list. Values may be taken
// from either end.
type Drain[T any] struct {
	l List[T]
}

// Drain moves the contents of the list into a consuming iterator.
// The list is empty afterwards.
func (l *List[T]) Drain() *Drain[T] {
	d := &Drain[T]{l: *l}
	*l = List[T]{}
	return d
}

// Next removes and returns the front value, or false if the iterator is exhausted.
func (d *Drain[T]) Next() (T, bool) {
	return d.l.PopFront()
}

// NextBack removes and returns the back value, or false if the iterator is exhausted.
func (d *Drain[T]) NextBack() (T, bool) {
	return d.l.PopBack()
}

// Len returns the number of values not yet drained.
func (d *Drain[T]) Len() int {
	return d.l.Len()
}

// Forward adapts d to an iterator taking values from the front.
func (d *Drain[T]) Forward() iterator.Iterator[T] {
	return d
}

// Backward adapts d to an iterator taking values from the back.
func (d *Drain[T]) Backward() iterator.Iterator[T] {
	return backward[T]{d: d}
}

type backward[T any] struct {
	d *Drain[T]
}

func (b backward[T]) Next() (T, bool) {
	return b.d.NextBack()
}
