package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Node is the base type our tree is built of.
//
// The children list is kept compact: removing a child shifts its
// right-hand siblings one position to the left. Positions are therefore
// always document order without holes.
type Node[T comparable] struct {
	Payload  T          // nodes may carry a payload of arbitrary type
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // children nodes, in document order
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) Node[T] {
	return Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	return len(node.children)
}

// Child returns the child node at position n, if any.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || n >= len(node.children) {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node. The returned
// slice is a copy; mutating it will not change the tree.
func (node *Node[T]) Children() []*Node[T] {
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// FirstChild returns the leftmost child of a node, or nil.
func (node *Node[T]) FirstChild() *Node[T] {
	if len(node.children) == 0 {
		return nil
	}
	return node.children[0]
}

// LastChild returns the rightmost child of a node, or nil.
func (node *Node[T]) LastChild() *Node[T] {
	if len(node.children) == 0 {
		return nil
	}
	return node.children[len(node.children)-1]
}

// IndexOfChild returns the position of ch within the list of children
// of node, or -1 if ch is not a child of node.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if child == ch {
			return i
		}
	}
	return -1
}

// NextSibling returns the sibling immediately following node in the
// children list of its parent, or nil if node is the last child or has
// no parent.
func (node *Node[T]) NextSibling() *Node[T] {
	if node.parent == nil {
		return nil
	}
	i := node.parent.IndexOfChild(node)
	if i < 0 || i+1 >= len(node.parent.children) {
		return nil
	}
	return node.parent.children[i+1]
}

// AppendChild appends ch as the new last child of node.
// If ch currently is located elsewhere in a tree, it is isolated first.
// AppendChild returns the parent node to allow for chaining.
func (node *Node[T]) AppendChild(ch *Node[T]) *Node[T] {
	if err := node.InsertChildAt(len(node.children), ch); err != nil {
		tracer().Errorf(err.Error())
	}
	return node
}

// InsertChildAt inserts ch at position i of the children of node,
// shifting children at later positions. i may equal ChildCount, in
// which case ch is appended. If ch currently is located elsewhere in a
// tree, it is isolated first.
//
// It is an error (ErrInvalidChild) to insert a node into one of its own
// descendents, or into itself.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) error {
	if ch == nil {
		return nil
	}
	for anc := node; anc != nil; anc = anc.parent {
		if anc == ch {
			return ErrInvalidChild
		}
	}
	if ch.parent != nil {
		if ch.parent == node && ch.parent.IndexOfChild(ch) < i {
			i-- // isolating ch shifts the insertion position
		}
		ch.Isolate()
	}
	if i < 0 || i > len(node.children) {
		return ErrInvalidPosition
	}
	node.children = append(node.children, nil)
	copy(node.children[i+1:], node.children[i:])
	node.children[i] = ch
	ch.parent = node
	return nil
}

// Isolate removes a node from its parent, compacting the parent's
// children list. Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	node.parent = nil
	return node
}
