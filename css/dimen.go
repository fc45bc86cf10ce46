/*
Package css provides an option type for dimensions of HTML/CSS documents.

A dimension on an element may be a fixed length, a percentage relative to
an enclosing context, or the keyword "auto". Package css wraps these
alternatives into a single type DimenT with pattern-matching style
accessors.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// tracer will return a tracer. We are tracing to 'tdom.css'.
func tracer() tracing.Trace {
	return tracing.Select("tdom.css")
}

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

/*
type DimenT
	= Auto
	| JustDimen dimen
	| Percentage Percent
*/

// Auto creates the dimension keyword "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// JustDimen creates a dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// IsAuto denotes if d is the keyword "auto".
func (d DimenT) IsAuto() bool {
	return d.flags&dimenAuto > 0
}

func (d DimenT) String() string {
	switch {
	case d.flags&dimenAuto > 0:
		return "auto"
	case d.flags&dimenPercent > 0:
		return d.percent.String()
	case d.flags&dimenAbsolute > 0:
		return fmt.Sprintf("%v", d.d)
	}
	return "none"
}

// ---------------------------------------------------------------------------

// Match returns a Matcher for d, to be used in a switch statement.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is returned by DimenT.Match.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the matcher's dimension is of the same alternative as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		if (m.dimen.flags&relativeMask > 0) != (d.flags&relativeMask > 0) {
			return nil
		}
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		return m
	}
	return nil
}

// Just matches a fixed dimension, copying its value into du.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches a %-relative dimension, copying its value into p.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}
