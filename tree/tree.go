/*
Package tree implements a general purpose tree of mutable nodes.

Nodes carry a payload of a client-provided type parameter and maintain an
ordered, compact list of children. Other packages of this module build
document trees on top of this one by embedding a tree node into their
own node types.

All operations are synchronous and complete in time proportional to the
number of children involved. The tree performs no synchronization of its
own; clients are expected to funnel all mutation through a single writer.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'tdom.tree'.
func tracer() tracing.Trace {
	return tracing.Select("tdom.tree")
}

// ErrInvalidPosition is returned if a child insertion names a position
// outside of 0…ChildCount.
var ErrInvalidPosition = errors.New("child position out of range")

// ErrInvalidChild is returned if a child insertion would make a node an
// ancestor of itself.
var ErrInvalidChild = errors.New("node may not become a descendent of itself")
