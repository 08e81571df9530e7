package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/npillmayer/cascade/style"
)

// Node is a node of a styled tree. Nodes are created by Build and
// immutable afterwards; all methods are safe for concurrent use.
type Node struct {
	parent   *Node
	children []*Node
	h        *html.Node
	style    *style.ComputedStyle
}

func (sn *Node) String() string {
	return fmt.Sprintf("(styled <%s> #ch=%d)", sn.h.Data, len(sn.children))
}

// HTMLNode returns the parse tree element this node styles.
func (sn *Node) HTMLNode() *html.Node { return sn.h }

// Style returns the composed style of the element.
func (sn *Node) Style() *style.ComputedStyle { return sn.style }

// Parent returns the parent node, nil for the root of the styled tree.
func (sn *Node) Parent() *Node { return sn.parent }

// ChildCount returns the number of children-nodes.
func (sn *Node) ChildCount() int { return len(sn.children) }

// Child returns the child node at position n. Children appear in
// document order.
func (sn *Node) Child(n int) (*Node, bool) {
	if n < 0 || n >= len(sn.children) {
		return nil, false
	}
	return sn.children[n], true
}

// Children returns a slice with all children of a node.
func (sn *Node) Children() []*Node {
	children := make([]*Node, len(sn.children))
	copy(children, sn.children)
	return children
}

// Walk visits the subtree rooted at sn in depth-first document order.
// Returning false from visit prunes the children of the visited node.
func (sn *Node) Walk(visit func(*Node) bool) {
	if sn == nil {
		return
	}
	if !visit(sn) {
		return
	}
	for _, ch := range sn.children {
		ch.Walk(visit)
	}
}

// Find returns the styled node of a parse tree element, nil if h is not
// styled by the subtree below sn.
func (sn *Node) Find(h *html.Node) *Node {
	var found *Node
	sn.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.h == h {
			found = n
			return false
		}
		return true
	})
	return found
}
