package tree

import (
	"strings"

	"github.com/npillmayer/weakprec/grammar"
)

// Node is a node of a syntax tree. Inner nodes are labeled with the head of a
// production, leaves with terminals.
type Node struct {
	Symbol     grammar.Symbol
	Production *grammar.Production // production this node has been expanded with, or nil
	children   []*Node
}

// NewNode creates a node without children.
func NewNode(sym grammar.Symbol) *Node {
	return &Node{Symbol: sym}
}

// Children returns the children of n, in left to right order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// AppendChild appends a child to the right of all other children.
// Nil children are not appended.
func (n *Node) AppendChild(child *Node) *Node {
	if child != nil {
		n.children = append(n.children, child)
	}
	return n
}

// PrependChild inserts a child to the left of all other children.
// Nil children are not inserted.
func (n *Node) PrependChild(child *Node) *Node {
	if child != nil {
		n.children = append([]*Node{child}, n.children...)
	}
	return n
}

// IsLeaf is true for nodes labeled with a terminal.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0 && n.Production == nil
}

// PreOrder calls visit for n, then for every child from left to right,
// recursively.
func (n *Node) PreOrder(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, ch := range n.children {
		ch.PreOrder(visit)
	}
}

// ReverseChildPreOrder calls visit for n, then for every child from right to
// left, recursively. Nodes are visited before their children; this is not a
// post-order traversal. The order of children of n is left untouched.
func (n *Node) ReverseChildPreOrder(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for i := len(n.children) - 1; i >= 0; i-- {
		n.children[i].ReverseChildPreOrder(visit)
	}
}

// Leaves returns the leaves of the tree rooted at n, from left to right.
// Nodes of ε-productions are not leaves.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.PreOrder(func(node *Node) {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	})
	return leaves
}

// Yield concatenates the labels of all leaves.
func (n *Node) Yield() string {
	var b strings.Builder
	for _, leaf := range n.Leaves() {
		b.WriteString(string(leaf.Symbol))
	}
	return b.String()
}

// String returns a term representation of the tree rooted at n, e.g.
// "S(a, S(c), b)".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteString(string(n.Symbol))
	if len(n.children) == 0 {
		return
	}
	b.WriteByte('(')
	for i, ch := range n.children {
		if i > 0 {
			b.WriteString(", ")
		}
		ch.write(b)
	}
	b.WriteByte(')')
}
