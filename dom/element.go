package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"strings"

	"github.com/npillmayer/tdom/dom/attr"
	"github.com/npillmayer/tdom/tree"
	"golang.org/x/net/html/atom"
)

// ErrNotAChild is returned by InsertBefore if the reference node is not
// a child of the element.
var ErrNotAChild = errors.New("reference node is not a child of this element")

// ErrNilNode is returned if a structural operation is handed a nil node.
var ErrNilNode = errors.New("node must not be nil")

// Element is a node of the document tree: a named element with
// attribute storage and a behavior hook chain.
type Element struct {
	tree.Node[*Element] // we build on top of general purpose tree
	doc                 *Document
	name                atom.Atom
	attrs               []Attr
	chain               []Hooks // behavior, base-first, fixed at construction
}

// Attr is a named attribute with its typed value.
type Attr struct {
	Name  string
	Value attr.Value
}

func initElement(e *Element, d *Document, name atom.Atom) {
	e.Payload = e // Payload will always reference the element itself
	e.doc = d
	e.name = name
	e.chain = []Hooks{coreHooks{}, htmlHooks{}}
}

// AsElement gets the element from a generic tree node.
func AsElement(n *tree.Node[*Element]) *Element {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Name returns the element's name.
func (e *Element) Name() atom.Atom {
	return e.name
}

// Document returns the document which created this element.
func (e *Element) Document() *Document {
	return e.doc
}

// --- Attributes ------------------------------------------------------------

// Attr returns the value of the attribute with the given name, if set.
// Attribute names are matched case-insensitively.
func (e *Element) Attr(name string) (attr.Value, bool) {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return attr.Value{}, false
}

// HasAttr denotes if an attribute with the given name is set.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets an attribute from its raw string form. The value is
// materialized into typed storage through the hook chain, stored, and
// then every hook is notified of the mutation. Cached state derived
// from the attribute is consistent with the new value when SetAttr
// returns.
func (e *Element) SetAttr(name string, raw string) {
	name = strings.ToLower(name)
	v := e.materialize(name, raw)
	m := Mutation{kind: mutationSet}
	var a *Attr
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			m.old, m.had = e.attrs[i].Value, true
			e.attrs[i].Value = v
			a = &e.attrs[i]
			break
		}
	}
	if a == nil {
		e.attrs = append(e.attrs, Attr{Name: name, Value: v})
		a = &e.attrs[len(e.attrs)-1]
	}
	tracer().Debugf("element <%s>: set attribute %s=%q", e.name, name, raw)
	for _, h := range e.chain {
		h.AttributeChanged(e, a, m)
	}
}

// RemoveAttr removes an attribute. Removing an absent attribute is a
// no-op; hooks are only notified if the attribute was present.
func (e *Element) RemoveAttr(name string) {
	name = strings.ToLower(name)
	for i := range e.attrs {
		if e.attrs[i].Name != name {
			continue
		}
		a := e.attrs[i]
		e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
		tracer().Debugf("element <%s>: removed attribute %s", e.name, name)
		m := Mutation{kind: mutationRemoved, old: a.Value, had: true}
		for _, h := range e.chain {
			h.AttributeChanged(e, &a, m)
		}
		return
	}
}

// materialize runs the parse-time hook chain, most specialized hook
// first. Unclaimed attribute names are stored as plain strings.
func (e *Element) materialize(name string, raw string) attr.Value {
	for i := len(e.chain) - 1; i >= 0; i-- {
		if v, ok := e.chain[i].ParseAttributeValue(name, raw); ok {
			return v
		}
	}
	return attr.FromString(raw)
}

// --- Structure -------------------------------------------------------------

// InsertBefore inserts ch as a child of e, immediately before the
// reference child ref. A nil ref appends ch as the last child. If ch is
// located elsewhere in a tree it is removed from there first.
func (e *Element) InsertBefore(ch *Element, ref *Element) error {
	if ch == nil {
		return ErrNilNode
	}
	i := e.ChildCount()
	if ref != nil {
		if i = e.IndexOfChild(&ref.Node); i < 0 {
			return ErrNotAChild
		}
	}
	return e.InsertChildAt(i, &ch.Node)
}

// Append appends ch as the new last child of e.
func (e *Element) Append(ch *Element) error {
	return e.InsertBefore(ch, nil)
}

// Remove isolates e from its parent. Removing a parentless element is a
// no-op.
func (e *Element) Remove() {
	e.Isolate()
}
