package dom

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// TreePrint returns a textual diagram of the element tree under root,
// one line per element, attributes included. Intended for debugging and
// test output.
func TreePrint(root *Element) string {
	printer := tp.New()
	dumpElement(printer, root)
	return printer.String()
}

func dumpElement(printer tp.Tree, e *Element) {
	if e == nil {
		return
	}
	if e.ChildCount() == 0 {
		printer.AddNode(dumpLabel(e))
		return
	}
	branch := printer.AddBranch(dumpLabel(e))
	for i := 0; i < e.ChildCount(); i++ {
		ch, _ := e.Child(i)
		dumpElement(branch, AsElement(ch))
	}
}

func dumpLabel(e *Element) string {
	s := "<" + e.name.String()
	for _, a := range e.attrs {
		s += fmt.Sprintf(" %s=%q", a.Name, a.Value.String())
	}
	return s + ">"
}
