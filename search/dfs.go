package search

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// DepthFirst walks the graph under root with a LIFO stack until a node
// holding goal is popped. Leaf children whose cell is already visited or
// already waiting on the stack are not pushed.
func DepthFirst(root *Node, goal maze.CellID) Result {
	visited := mapset.New[maze.CellID]()
	pending := make(map[maze.CellID]int)

	frontier := stack.New[depthItem]()
	push := func(item depthItem) {
		pending[item.node.Value]++
		frontier.Push(item)
	}

	push(depthItem{node: root})
	for frontier.Size() > 0 {
		item := frontier.Pop()
		if pending[item.node.Value]--; pending[item.node.Value] == 0 {
			delete(pending, item.node.Value)
		}

		if item.node.Value == goal {
			return Result{Found: true, Visited: visited.Size(), Depth: item.depth}
		}
		visited.Put(item.node.Value)

		for _, c := range item.node.Children {
			if c.Leaf() && (visited.Has(c.Value) || pending[c.Value] > 0) {
				continue
			}
			push(depthItem{node: c, depth: item.depth + 1})
		}
	}

	return notFound(visited.Size())
}
