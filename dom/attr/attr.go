/*
Package attr provides typed attribute values for document elements.

Attributes arrive as raw strings. Some of them are materialized into a
typed representation the moment they are stored (not on every read):
unsigned integers with a legacy fallback, and dimensions. A Value always
keeps the raw string verbatim, since the string form is the authoritative
source and is reflected back to clients unchanged.

The parsing functions in this package implement the legacy HTML rules,
where malformed input maps to a documented fallback and never to an
error.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package attr

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tdom/css"
)

// tracer will return a tracer. We are tracing to 'tdom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("tdom.dom")
}

type valueKind uint8

const (
	stringKind valueKind = iota
	uintKind
	dimensionKind
)

// Value is a typed attribute value. The zero value is an empty string
// attribute.
type Value struct {
	raw  string
	kind valueKind
	u    uint32
	dim  css.DimenT
}

// FromString materializes a raw attribute string without further typing.
func FromString(raw string) Value {
	return Value{raw: raw}
}

// FromUInt materializes an unsigned-integer attribute. If raw does not
// parse as a leading unsigned integer, fallback is stored instead; the
// raw string is kept either way.
func FromUInt(raw string, fallback uint32) Value {
	n, ok := ParseUnsignedInteger(raw)
	if !ok {
		n = fallback
	}
	return Value{raw: raw, kind: uintKind, u: n}
}

// FromNonzeroDimension materializes a dimension attribute. Unparsable
// and zero values are stored as the dimension "auto".
func FromNonzeroDimension(raw string) Value {
	return Value{raw: raw, kind: dimensionKind, dim: css.ParseNonzeroDimension(raw)}
}

// String returns the raw attribute string, unchanged from what the
// client set.
func (v Value) String() string {
	return v.raw
}

// AsUInt returns the typed unsigned integer of v, if v was materialized
// as one.
func (v Value) AsUInt() (uint32, bool) {
	if v.kind != uintKind {
		return 0, false
	}
	return v.u, true
}

// AsDimension returns the typed dimension of v, if v was materialized
// as one.
func (v Value) AsDimension() (css.DimenT, bool) {
	if v.kind != dimensionKind {
		return css.DimenT{}, false
	}
	return v.dim, true
}
