package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/tdom/dom/attr"
)

// Hooks is the per-element-kind behavior interface. Each element holds
// an ordered chain of hooks, base behavior first, resolved once at
// construction time.
//
// Attribute mutation notifications run through the chain front to back,
// so base behavior observes a change before specialized behavior does.
// Value materialization (ParseAttributeValue) runs back to front: the
// most specialized hook that claims an attribute name wins.
type Hooks interface {
	// AttributeChanged is called after attribute storage has been
	// updated, for set, change and removal events alike.
	AttributeChanged(e *Element, a *Attr, m Mutation)

	// ParseAttributeValue materializes a raw attribute string into a
	// typed value at the moment the attribute is stored. Returning
	// ok=false delegates to the next hook in the chain.
	ParseAttributeValue(name string, raw string) (attr.Value, bool)
}

// coreHooks anchors the chain with the behavior every element shares.
type coreHooks struct{}

func (coreHooks) AttributeChanged(e *Element, a *Attr, m Mutation) {
	tracer().Debugf("element <%s>: attribute %s mutated", e.name, a.Name)
}

func (coreHooks) ParseAttributeValue(string, string) (attr.Value, bool) {
	return attr.Value{}, false
}

// htmlHooks is the HTML element level of the chain. It owns no typed
// attributes and no caches in this module.
type htmlHooks struct{}

func (htmlHooks) AttributeChanged(e *Element, a *Attr, m Mutation) {}

func (htmlHooks) ParseAttributeValue(string, string) (attr.Value, bool) {
	return attr.Value{}, false
}

// --- Mutation events -------------------------------------------------------

type mutationKind uint8

const (
	mutationSet mutationKind = iota
	mutationRemoved
)

// Mutation describes an attribute mutation event as seen by hooks.
type Mutation struct {
	kind mutationKind
	old  attr.Value
	had  bool
}

// IsRemoval denotes if the mutation removed the attribute.
func (m Mutation) IsRemoval() bool {
	return m.kind == mutationRemoved
}

// NewValue returns the attribute's value after the mutation, with
// ok=false for a removal.
func (m Mutation) NewValue(a *Attr) (attr.Value, bool) {
	if m.kind == mutationRemoved {
		return attr.Value{}, false
	}
	return a.Value, true
}

// OldValue returns the attribute's value before the mutation, if there
// was one.
func (m Mutation) OldValue() (attr.Value, bool) {
	return m.old, m.had
}
