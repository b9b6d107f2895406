/*
Package persistent is the home of list types whose values never change after
construction. Operations which would modify a list in place, like adding or
removing a value at the front, instead return a new version of the list.
Versions share all nodes they have in common, so deriving a version costs a
single node at most, and older versions stay valid and unchanged.

There are two persistent singly-linked lists:

  - list.List is meant for use within a single goroutine.
  - synclist.List offers the same API and may be shared between goroutines freely.

Prepending creates one node linked to the unmodified front node of the receiver, thus any
number of versions may share a common suffix of nodes.

Owners

Nodes count the list versions (and predecessor nodes) referencing them. Go's garbage collector
will reclaim unreachable nodes in any case; owner counts let a version be released
explicitly, clearing payloads of nodes no other version refers to and making sharing
observable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
