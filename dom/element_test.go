package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tdom/dom/attr"
	"golang.org/x/net/html/atom"
)

// recordingHooks logs chain traversal for dispatch-order tests.
type recordingHooks struct {
	tag string
	log *[]string
}

func (r recordingHooks) AttributeChanged(e *Element, a *Attr, m Mutation) {
	*r.log = append(*r.log, r.tag+":"+a.Name)
}

func (r recordingHooks) ParseAttributeValue(name string, raw string) (attr.Value, bool) {
	return attr.Value{}, false
}

func TestElementAttrStorage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tdom.dom")
	defer teardown()
	//
	doc := NewDocument()
	e := doc.CreateElement(atom.Div)
	if e.HasAttr("id") {
		t.Errorf("expected fresh element to have no attributes")
	}
	e.SetAttr("id", "main")
	if v, ok := e.Attr("id"); !ok || v.String() != "main" {
		t.Errorf("expected id to be main, is %q", v.String())
	}
	e.SetAttr("ID", "other") // names match case-insensitively
	if v, _ := e.Attr("id"); v.String() != "other" {
		t.Errorf("expected id to be overwritten, is %q", v.String())
	}
	e.RemoveAttr("id")
	if e.HasAttr("id") {
		t.Errorf("expected id to be removed, isn't")
	}
	e.RemoveAttr("id") // removing an absent attribute is a no-op
}

func TestElementMutationDispatchOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tdom.dom")
	defer teardown()
	//
	doc := NewDocument()
	e := doc.CreateElement(atom.Div)
	var log []string
	e.chain = append(e.chain, recordingHooks{tag: "derived", log: &log})
	e.chain = append([]Hooks{recordingHooks{tag: "base", log: &log}}, e.chain...)
	e.SetAttr("lang", "en")
	if len(log) != 2 || log[0] != "base:lang" || log[1] != "derived:lang" {
		t.Errorf("expected base hooks to run before derived hooks, log is %v", log)
	}
}

func TestElementMutationNewValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tdom.dom")
	defer teardown()
	//
	set := Mutation{kind: mutationSet}
	a := &Attr{Name: "x", Value: attr.FromString("1")}
	if v, ok := set.NewValue(a); !ok || v.String() != "1" {
		t.Errorf("expected set mutation to carry the new value, is %q (ok=%v)", v.String(), ok)
	}
	removed := Mutation{kind: mutationRemoved, old: a.Value, had: true}
	if _, ok := removed.NewValue(a); ok {
		t.Errorf("expected removal mutation to carry no new value, does")
	}
	if !removed.IsRemoval() {
		t.Errorf("expected removal mutation to report IsRemoval")
	}
	if old, ok := removed.OldValue(); !ok || old.String() != "1" {
		t.Errorf("expected removal mutation to carry the old value, is %q (ok=%v)", old.String(), ok)
	}
}

func TestElementInsertBefore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tdom.dom")
	defer teardown()
	//
	doc := NewDocument()
	parent := doc.CreateElement(atom.Div)
	a := doc.CreateElement(atom.Span)
	b := doc.CreateElement(atom.Span)
	if err := parent.Append(a); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := parent.InsertBefore(b, a); err != nil {
		t.Fatalf("insert before failed: %v", err)
	}
	if AsElement(parent.FirstChild()) != b {
		t.Errorf("expected b to be the first child")
	}
	stranger := doc.CreateElement(atom.Span)
	if err := parent.InsertBefore(a, stranger); err != ErrNotAChild {
		t.Errorf("expected insertion before a non-child to fail, got %v", err)
	}
	if err := parent.InsertBefore(nil, a); err != ErrNilNode {
		t.Errorf("expected insertion of nil to fail, got %v", err)
	}
}

func TestElementTreePrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tdom.dom")
	defer teardown()
	//
	doc := NewDocument()
	table := doc.CreateTable()
	table.SetAttr("border", "2")
	table.CreateCaption()
	table.CreateTBody()
	out := TreePrint(&table.Element)
	t.Logf("table tree:\n%s", out)
	if out == "" {
		t.Errorf("expected a non-empty tree dump")
	}
}
