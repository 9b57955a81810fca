package search

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(maze.CellID) int

// Manhattan returns a heuristic measuring the 3D grid distance from a cell
// of m to goal. Cells unknown to m are estimated at zero.
func Manhattan(m *maze.Maze, goal maze.Position) Heuristic {
	return func(id maze.CellID) int {
		p, ok := m.PositionOf(id)
		if !ok {
			return 0
		}
		return p.Manhattan(goal)
	}
}

type scoredItem struct {
	node *Node
	g    int
	f    int
	seq  int
}

// lessScored orders by estimated total cost, then by cost so far, then by
// insertion.
func lessScored(a, b scoredItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.seq < b.seq
}

// AStar walks the graph under root, always expanding the node with the
// lowest g+h where g is the depth of the node. The closed set is keyed by
// cell. Every edge costs one, so with an admissible h the reported Depth is
// the shortest depth of goal in the graph.
func AStar(root *Node, goal maze.CellID, h Heuristic) Result {
	if h == nil {
		h = func(maze.CellID) int { return 0 }
	}
	closed := mapset.New[maze.CellID]()

	seq := 0
	open := heap.New[scoredItem](lessScored)
	open.Push(scoredItem{node: root, f: h(root.Value)})
	for open.Size() > 0 {
		item, _ := open.Pop()
		if item.node.Value == goal {
			return Result{Found: true, Visited: closed.Size(), Depth: item.g}
		}
		closed.Put(item.node.Value)

		for _, c := range item.node.Children {
			if c.Leaf() && closed.Has(c.Value) {
				continue
			}
			seq++
			g := item.g + 1
			open.Push(scoredItem{node: c, g: g, f: g + h(c.Value), seq: seq})
		}
	}

	return notFound(closed.Size())
}
