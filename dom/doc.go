/*
Package dom implements a small, live document object model centered on
the HTML table element.

Overview

Elements are built on top of a general purpose tree type (package tree),
following the composition approach we use throughout: every element
carries a generic tree node, and specialized element types embed the
generic element.

Element behavior that in class-based DOM implementations lives in a
virtual superclass chain is modelled as an explicit, ordered list of
hook objects, resolved once at element construction time. The table
element hooks maintain derived attribute caches (background color,
border width, cell spacing) which a rendering path may read through a
LayoutTable view without re-parsing attribute strings.

Concurrency

The document mutation path is the sole writer. Render-path reads through
LayoutTable are unsynchronized and rely on writer quiescence, which the
surrounding system has to guarantee (phase separation). Nothing in this
package blocks, retries or times out.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'tdom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("tdom.dom")
}
