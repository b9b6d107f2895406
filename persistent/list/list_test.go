package list

import (
	"fmt"
	"testing"

	"github.com/bradenaw/juniper/iterator"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tp "github.com/xlab/treeprint"
)

var _ iterator.Iterator[int] = &iter[int]{} // code contract

func TestListPrependAndTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.persistent")
	defer teardown()
	//
	l := Empty[int]()
	assert.True(t, l.Head().IsNothing(), "empty list should not have a head")

	l = l.Prepend(1).Prepend(2).Prepend(3)
	assertHead(t, l, 3)
	l = l.Tail()
	assertHead(t, l, 2)
	l = l.Tail()
	assertHead(t, l, 1)
	l = l.Tail()
	assert.True(t, l.Head().IsNothing())
	l = l.Tail()
	assert.True(t, l.Head().IsNothing())
}

func TestListEmptyTailIsIdempotent(t *testing.T) {
	var l List[string]
	for i := 0; i < 5; i++ {
		l = l.Tail()
		if !l.IsEmpty() {
			t.Fatalf("expected tail of empty list to be empty, is %v", l)
		}
	}
}

func TestListIter(t *testing.T) {
	l := Empty[string]().Prepend("one").Prepend("two").Prepend("three")
	it := l.Iter()
	for _, expected := range []string{"three", "two", "one"} {
		v, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, expected, v)
	}
	v, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, "", v, "exhausted iterator should yield the zero value")
	assert.Equal(t, []string{"three", "two", "one"}, iterator.Collect(l.Iter()),
		"iteration should be restartable")
}

func TestListStructuralSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.persistent")
	defer teardown()
	//
	l0 := Empty[string]()
	l1 := l0.Prepend("a")
	l2 := l1.Prepend("b")
	l2tail := l2.Tail()
	assert.Same(t, l1.head, l2tail.head, "tail should share nodes with previous version")
	assert.Equal(t, iterator.Collect(l1.Iter()), iterator.Collect(l2tail.Iter()))

	l3 := l1.Prepend("c")
	t.Logf("versions =\n%s", printVersions(map[string]List[string]{
		"l1": l1, "l2": l2, "l3": l3, "l2.tail": l2tail,
	}))
	assert.Equal(t, []string{"b", "a"}, iterator.Collect(l2.Iter()))
	assert.Equal(t, []string{"a"}, iterator.Collect(l2tail.Iter()))
	assert.Equal(t, []string{"c", "a"}, iterator.Collect(l3.Iter()))
	assert.True(t, l0.IsEmpty(), "prepend must not modify the receiver")
	// l1 is owned by l1, l2's node, l2tail and l3's node
	assert.Equal(t, 4, l1.Owners())
}

func TestListGet(t *testing.T) {
	l := From(1, 2, 3, 4)
	assert.Equal(t, 4, l.Len())
	for i := 0; i < 4; i++ {
		v, ok := l.Get(i).Get()
		assert.True(t, ok, "index %d should be in range", i)
		assert.Equal(t, i+1, v)
	}
	for _, i := range []int{-1, 4, 10} {
		assert.True(t, l.Get(i).IsNothing(), "index %d should be out of range", i)
	}
	assert.Equal(t, "(1 2 3 4)", l.String())
}

func TestListReleaseStopsAtSharedNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.persistent")
	defer teardown()
	//
	base := From(1, 2, 3)
	require.Equal(t, 1, base.Owners())
	ext := base.Prepend(0)
	require.Equal(t, 2, base.Owners())
	ext.Release()
	assert.True(t, ext.IsEmpty(), "released version should be empty")
	assert.Equal(t, 1, base.Owners())
	assert.Equal(t, []int{1, 2, 3}, iterator.Collect(base.Iter()))

	tail := base.Tail()
	clone := base.Clone()
	assert.Equal(t, 2, base.Owners())
	assert.Equal(t, 2, tail.Owners())
	base.Release()
	assert.Equal(t, []int{1, 2, 3}, iterator.Collect(clone.Iter()))
	clone.Release()
	assert.Equal(t, []int{2, 3}, iterator.Collect(tail.Iter()))
	assert.Equal(t, 1, tail.Owners())
}

func TestListReleaseClearsUnsharedNodes(t *testing.T) {
	l := From(1, 2, 3)
	n := l.head
	l.Release()
	if n.next != nil || n.value != 0 || n.owners != 0 {
		t.Errorf("expected released node to be cleared, is %#v", *n)
	}
}

func TestListReleaseTwicePanics(t *testing.T) {
	l := From(1)
	dup := l // plain copy, not registered as owner
	l.Release()
	assert.Panics(t, func() { dup.Release() })
}

func TestListReleaseLongChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.persistent")
	defer teardown()
	//
	var l List[int]
	for i := 0; i < 100000; i++ {
		l.Push(i)
	}
	assert.Equal(t, 100000, l.Len())
	l.Release()
	assert.True(t, l.IsEmpty())
}

func TestListReplace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.persistent")
	defer teardown()
	//
	var l List[int]
	for i := 1; i <= 3; i++ {
		l.Replace(l.Prepend(i))
	}
	for n := l.head; n != nil; n = n.next {
		assert.Equal(t, 1, n.owners, "node %v should be owned once", n.value)
	}
	first := l.head
	l.Replace(l.Tail())
	assert.Equal(t, []int{2, 1}, iterator.Collect(l.Iter()))
	assert.Equal(t, 1, l.Owners())
	assert.Nil(t, first.next, "replaced front node should have been released")
	l.Replace(l.Tail())
	l.Replace(l.Tail())
	assert.True(t, l.IsEmpty())
	l.Replace(l.Tail())
	assert.True(t, l.IsEmpty())
}

func TestListReassignKeepsOwners(t *testing.T) {
	l := From(1, 2)
	second := l.head.next
	l = l.Tail() // the overwritten version is never released
	assert.Equal(t, 2, second.owners)
	l.Release()
	assert.Equal(t, 1, second.owners, "release should stop at the still registered node")
	assert.Equal(t, 2, second.value)
}

// --- Helpers ---------------------------------------------------------------

func assertHead[T any](t *testing.T, l List[T], expected T) {
	t.Helper()
	v, ok := l.Head().Get()
	require.True(t, ok, "expected head %v, list is empty", expected)
	assert.Equal(t, expected, v)
}

// printVersions prints the nodes of list versions, showing shared nodes only once.
func printVersions[T any](versions map[string]List[T]) string {
	printer := tp.New()
	seen := make(map[*node[T]]bool)
	for name, l := range versions {
		branch := printer.AddBranch(name)
		for n := l.head; n != nil; n = n.next {
			if seen[n] {
				branch.AddNode(fmt.Sprintf("↪ %v (shared, owners=%d)", n.value, n.owners))
				break
			}
			seen[n] = true
			branch.AddNode(fmt.Sprintf("%v (owners=%d)", n.value, n.owners))
		}
	}
	return printer.String()
}
