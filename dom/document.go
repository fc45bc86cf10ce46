package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"golang.org/x/net/html/atom"
)

// Document is the node-construction service for a document tree. All
// elements of a tree are created through its document; the document
// resolves the behavior hook chain for an element name once, at
// construction time.
//
// A document does not keep references to the elements it creates;
// lifetime of removed elements is governed by ordinary garbage
// collection.
type Document struct{}

// NewDocument creates a fresh document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement creates a new, unattached element with the given name.
// Names with specialized behavior (currently just the table element)
// receive their specialized hook chain here.
func (d *Document) CreateElement(name atom.Atom) *Element {
	if name == atom.Table {
		t := d.CreateTable()
		return &t.Element
	}
	e := &Element{}
	initElement(e, d, name)
	tracer().Debugf("created element <%s>", name)
	return e
}

// CreateTable creates a new, unattached table element.
func (d *Document) CreateTable() *TableElement {
	t := &TableElement{}
	initElement(&t.Element, d, atom.Table)
	t.chain = append(t.chain, t) // table behavior terminates the chain
	tracer().Debugf("created element <table>")
	return t
}
