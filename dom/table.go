package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"image/color"

	"github.com/npillmayer/tdom/css"
	"github.com/npillmayer/tdom/dom/attr"
	"github.com/npillmayer/tdom/maybe"
	"golang.org/x/net/html/atom"
)

// Attribute names the table element owns.
const (
	attrBgcolor     = "bgcolor"
	attrBorder      = "border"
	attrCellspacing = "cellspacing"
	attrWidth       = "width"
)

// TableElement is an HTML table element. It caches scalar values
// derived from the bgcolor, border and cellspacing attributes, so that
// the render path can read them without re-parsing attribute strings.
// The raw attribute strings stay authoritative; the cache is
// re-derived on every attribute mutation.
//
// Nothing-valued cache cells mean "attribute absent", which is distinct
// from any present value, including zero.
type TableElement struct {
	Element
	background  maybe.Maybe[color.RGBA]
	border      maybe.Maybe[uint32]
	cellspacing maybe.Maybe[uint32]
}

// AsTable gets the table element behind a generic element, if it is one.
func AsTable(e *Element) (*TableElement, bool) {
	if e == nil {
		return nil, false
	}
	for _, h := range e.chain {
		if t, ok := h.(*TableElement); ok {
			return t, true
		}
	}
	return nil, false
}

// --- Behavior hooks --------------------------------------------------------

// AttributeChanged re-derives the cached scalar for the three attribute
// names the table owns. Derivation is pure in the new raw value;
// unknown names are left to the other links of the chain.
func (t *TableElement) AttributeChanged(e *Element, a *Attr, m Mutation) {
	switch a.Name {
	case attrBgcolor:
		t.background = maybe.Nothing[color.RGBA]()
		if v, ok := m.NewValue(a); ok {
			if c, valid := attr.ParseLegacyColor(v.String()); valid {
				t.background = maybe.Just(c)
			}
		}
	case attrBorder:
		// invalid present values map to a border of 1 (HTML5 § 14.3.9)
		t.border = maybe.Nothing[uint32]()
		if v, ok := m.NewValue(a); ok {
			n, valid := attr.ParseUnsignedInteger(v.String())
			if !valid {
				n = 1
			}
			t.border = maybe.Just(n)
		}
	case attrCellspacing:
		t.cellspacing = maybe.Nothing[uint32]()
		if v, ok := m.NewValue(a); ok {
			if n, valid := attr.ParseUnsignedInteger(v.String()); valid {
				t.cellspacing = maybe.Just(n)
			}
		}
	}
}

// ParseAttributeValue materializes the border attribute as an unsigned
// integer defaulting to 1, and the width attribute as a non-zero
// dimension.
func (t *TableElement) ParseAttributeValue(name string, raw string) (attr.Value, bool) {
	switch name {
	case attrBorder:
		return attr.FromUInt(raw, 1), true
	case attrWidth:
		return attr.FromNonzeroDimension(raw), true
	}
	return attr.Value{}, false
}

// --- Caption and sections --------------------------------------------------

// Caption returns the table's caption: the first caption child in
// document order, or nil.
func (t *TableElement) Caption() *Element {
	for i := 0; i < t.ChildCount(); i++ {
		ch, _ := t.Child(i)
		if el := AsElement(ch); el.name == atom.Caption {
			return el
		}
	}
	return nil
}

// SetCaption removes the table's current caption, if any, and installs
// c as the new first child of the table. A nil c just removes.
//
// The insertion is expected to succeed under correct use; a failure
// indicates a broken precondition elsewhere in the system and panics.
func (t *TableElement) SetCaption(c *Element) {
	if capt := t.Caption(); capt != nil {
		capt.Remove()
	}
	if c == nil {
		return
	}
	if err := t.InsertBefore(c, AsElement(t.FirstChild())); err != nil {
		panic("tdom: caption insertion failed: " + err.Error())
	}
}

// CreateCaption returns the table's caption, creating and installing a
// fresh one first if the table has none.
func (t *TableElement) CreateCaption() *Element {
	if capt := t.Caption(); capt != nil {
		return capt
	}
	capt := t.doc.CreateElement(atom.Caption)
	t.SetCaption(capt)
	return capt
}

// DeleteCaption removes the table's caption. Without a caption this is
// a no-op.
func (t *TableElement) DeleteCaption() {
	if capt := t.Caption(); capt != nil {
		capt.Remove()
	}
}

// CreateTBody creates a new table body section and inserts it
// immediately after the last existing body section, keeping body
// sections contiguous and in creation order. Without an existing body
// section the new one becomes the table's last child.
func (t *TableElement) CreateTBody() *Element {
	tbody := t.doc.CreateElement(atom.Tbody)
	t.insertSection(tbody)
	return tbody
}

// insertSection scans the children in reverse document order, so that
// the common case of repeated appends finds its anchor immediately.
func (t *TableElement) insertSection(section *Element) {
	var ref *Element
	for i := t.ChildCount() - 1; i >= 0; i-- {
		ch, _ := t.Child(i)
		if AsElement(ch).name == section.name {
			ref = AsElement(ch.NextSibling()) // nil if last child
			break
		}
	}
	if err := t.InsertBefore(section, ref); err != nil {
		panic("tdom: section insertion failed: " + err.Error())
	}
}

// --- Script-facing attribute accessors -------------------------------------

// BackgroundColor returns the cached background color. Nothing means
// the bgcolor attribute is absent or does not denote a color.
func (t *TableElement) BackgroundColor() maybe.Maybe[color.RGBA] {
	return t.background
}

// Border returns the cached border width. Nothing means the border
// attribute is absent.
func (t *TableElement) Border() maybe.Maybe[uint32] {
	return t.border
}

// CellSpacing returns the cached cell spacing. Nothing means the
// cellspacing attribute is absent.
func (t *TableElement) CellSpacing() maybe.Maybe[uint32] {
	return t.cellspacing
}

// BgColor returns the raw bgcolor attribute string.
func (t *TableElement) BgColor() string {
	v, _ := t.Attr(attrBgcolor)
	return v.String()
}

// SetBgColor sets the bgcolor attribute.
func (t *TableElement) SetBgColor(s string) {
	t.SetAttr(attrBgcolor, s)
}

// Width returns the raw width attribute string.
func (t *TableElement) Width() string {
	v, _ := t.Attr(attrWidth)
	return v.String()
}

// SetWidth sets the width attribute. Values not parsing to a positive
// dimension are stored but materialize as the dimension "auto".
func (t *TableElement) SetWidth(s string) {
	t.SetAttr(attrWidth, s)
}

// --- Render-path view ------------------------------------------------------

// LayoutTable is the read-only view of a table element for the render
// path. It returns the cached scalars verbatim and performs no locking:
// reads are only safe while document mutation is quiescent, which the
// surrounding system has to guarantee.
type LayoutTable struct {
	table *TableElement
}

// Layout returns the render-path view of the table.
func (t *TableElement) Layout() LayoutTable {
	return LayoutTable{table: t}
}

// BackgroundColor returns the cached background color.
func (l LayoutTable) BackgroundColor() maybe.Maybe[color.RGBA] {
	return l.table.background
}

// Border returns the cached border width.
func (l LayoutTable) Border() maybe.Maybe[uint32] {
	return l.table.border
}

// CellSpacing returns the cached cell spacing.
func (l LayoutTable) CellSpacing() maybe.Maybe[uint32] {
	return l.table.cellspacing
}

// Width returns the table's width hint: the typed dimension of the
// width attribute, or auto. The value is computed on demand from
// attribute storage and not cached; it is consumed rarely relative to
// mutation frequency, and recomputing keeps it consistent with storage
// by construction.
func (l LayoutTable) Width() css.DimenT {
	if v, ok := l.table.Attr(attrWidth); ok {
		if d, isDim := v.AsDimension(); isDim {
			return d
		}
	}
	return css.Auto()
}
