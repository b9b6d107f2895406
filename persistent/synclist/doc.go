/*
Package synclist implements an immutable persistent singly-linked list which is safe
for concurrent use.

The API mirrors package list. Nodes are immutable after construction; the only
shared mutable state is each node's owner count, which is updated atomically.
Goroutines may therefore hold, read and extend the same list version at the same
time without any locking. As with package list, re-assigning a variable does not release
the overwritten version; use Replace for this.

	base := synclist.From(3, 2, 1)
	for i := 0; i < 4; i++ {
	    mine := base.Clone()
	    go func(i int) {
	        defer mine.Release()
	        ext := mine.Prepend(i)   // ext = (i 3 2 1), base unchanged
	        …
	    }(i)
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package synclist

import (
	"fmt"
)

// This package does not trace: tracer output is not synchronized between goroutines.

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.synclist: "+msg, msgargs...)
		panic(msg)
	}
}
