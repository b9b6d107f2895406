/*
Package list implements an immutable persistent singly-linked list.

Prepending a value or taking the tail of a list results in a new list version, leaving
the original unchanged:

	l1 := list.Empty[int]().Prepend(1)
	l2 := l1.Prepend(2)      // l2 = (2 1), l1 = (1)
	l3 := l2.Tail()          // l3 shares its only node with l1

Nodes are shared between versions and carry an owner count. Every version created by
Prepend, Tail or Clone counts as an owner until it is released. Re-assigning a variable,
as in `l = l.Prepend(x)`, does not release the overwritten version; use
`l.Replace(l.Prepend(x))` or `l.Push(x)` if owner counts should stay accurate.

Updates to owner counts are not synchronized: list versions must not be shared between
goroutines. Use package synclist for this.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.persistent'.
func tracer() tracing.Trace {
	return tracing.Select("lists.persistent")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.list: "+msg, msgargs...)
		panic(msg)
	}
}
