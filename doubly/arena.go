package doubly

// ref is a link to a slot in the arena. Slot i is referenced by ref(i+1); the zero ref
// is the nil link, which makes the zero value of List usable.
type ref int

const nilRef ref = 0

type slot[T any] struct {
	value  T
	next   ref
	prev   ref // for free slots: unused
	owners int // number of owning references currently pointing to this slot
}

// props are the construction-time settings of a list.
type props struct {
	reserve int
}

// Option is a type to help initializing lists at creation time.
type Option struct {
	config func(props) props
}

// Reserve is an option to pre-allocate arena space for n nodes.
// It does not limit the length of the list.
//
//	lst := doubly.New[int](doubly.Reserve(1024))
func Reserve(n int) Option {
	return Option{config: func(p props) props {
		if n > 0 {
			p.reserve = n
		}
		return p
	}}
}

func (l *List[T]) slot(r ref) *slot[T] {
	return &l.slots[r-1]
}

// alloc places value in a fresh node, re-using a free slot if possible.
// The new node is not yet owned by anything.
func (l *List[T]) alloc(value T) ref {
	if r := l.free; r != nilRef {
		s := l.slot(r)
		assertThat(s.owners == 0, "free slot %d is still owned %d times", r, s.owners)
		l.free = s.next
		*s = slot[T]{value: value}
		return r
	}
	l.slots = append(l.slots, slot[T]{value: value})
	return ref(len(l.slots))
}

// release extracts the value of an unlinked node and puts its slot onto the free list.
// At this point every owning reference must have been detached.
func (l *List[T]) release(r ref) T {
	s := l.slot(r)
	assertThat(s.owners == 0, "node in slot %d is still owned %d times after unlinking", r, s.owners)
	value := s.value
	*s = slot[T]{next: l.free}
	l.free = r
	return value
}

// own registers an additional owning reference to r and returns r.
func (l *List[T]) own(r ref) ref {
	if r != nilRef {
		l.slot(r).owners++
	}
	return r
}

// disown removes an owning reference to r.
func (l *List[T]) disown(r ref) {
	if r == nilRef {
		return
	}
	s := l.slot(r)
	s.owners--
	assertThat(s.owners >= 0, "node in slot %d lost more owners than it had", r)
}
