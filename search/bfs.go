package search

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

type depthItem struct {
	node  *Node
	depth int
}

// BreadthFirst walks the graph under root level by level until a node
// holding goal is dequeued.
//
// A child whose cell was already visited is skipped when it is a leaf. The
// copy of a cell that carries children is always followed, so the goal is
// found whenever it is reachable.
func BreadthFirst(root *Node, goal maze.CellID) Result {
	visited := mapset.New[maze.CellID]()

	frontier := queue.New[depthItem]()
	frontier.Enqueue(depthItem{node: root})
	for !frontier.Empty() {
		item := frontier.Dequeue()
		if item.node.Value == goal {
			return Result{Found: true, Visited: visited.Size(), Depth: item.depth}
		}
		visited.Put(item.node.Value)

		for _, c := range item.node.Children {
			if c.Leaf() && visited.Has(c.Value) {
				continue
			}
			frontier.Enqueue(depthItem{node: c, depth: item.depth + 1})
		}
	}

	return notFound(visited.Size())
}
