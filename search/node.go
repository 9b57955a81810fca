/*
Package search turns a maze into explicit traversal graphs and walks them.

The adapters expand the maze breadth-first from a start cell. Each cell is
expanded once, but every open wall produces its own child node, so a cell may
appear under several parents. Only the copy that was expanded carries
children; the others are leaves.

BreadthFirst, DepthFirst and AStar walk such a graph from its root and report
how many distinct cells they visited before reaching the goal.
*/
package search

import (
	"github.com/beka-birhanu/vinom-maze/maze"
)

// Node is one vertex of a traversal graph. Children are owned by the node.
type Node struct {
	Value    maze.CellID
	Children []*Node
}

// NewNode creates a childless node.
func NewNode(value maze.CellID) *Node {
	return &Node{Value: value}
}

// AddChild appends a fresh child holding value and returns it.
func (n *Node) AddChild(value maze.CellID) *Node {
	child := NewNode(value)
	n.Children = append(n.Children, child)
	return child
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// Walk calls fn for n and every node below it, depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
