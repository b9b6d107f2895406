/*
Package doubly implements a doubly-linked list supporting insertion and removal at
both ends.

Nodes live in an arena (a slice of slots) and refer to their neighbours by slot index.
Slots of removed nodes are put on a free list and re-used by subsequent insertions.

Ownership

Every node in the list is kept alive by exactly two owning references. For an interior node
these are the `next` link of its predecessor and the `prev` link of its successor. The
front node is owned by the list's head slot and by its successor's `prev` link; the back
node symmetrically. A list with a single node references that node from both the head
and the tail slot. The list book-keeps these owner counts and checks, whenever a node is
unlinked, that no owning reference to it survived. A failing check means the linkage
is corrupted and results in a panic.

Indexed access is deliberately not supported; values may only be pushed and popped at
the ends.

Lists are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package doubly

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.doubly'.
func tracer() tracing.Trace {
	return tracing.Select("lists.doubly")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("doubly: "+msg, msgargs...)
		tracer().Errorf("%s", msg)
		panic(msg)
	}
}
