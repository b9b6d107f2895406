/*
Package exclusive implements a singly-linked list whose nodes are exclusively owned.

Every node is referenced from exactly one place: either the head slot of the list or the
`next` link of its predecessor. Nothing is ever shared, so a node becomes garbage the
instant it is unlinked. The list works as a LIFO stack with additional linear-time
indexed access:

	lst := exclusive.New[string]()
	lst.Push("first")
	lst.Push("second")
	s, _ := lst.Pop()   // "second"

Lists are not safe for concurrent use; clients must synchronize access themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exclusive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.exclusive'.
func tracer() tracing.Trace {
	return tracing.Select("lists.exclusive")
}
