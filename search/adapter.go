package search

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

var (
	// ErrStartOutOfBounds is returned when the start position is not a cell
	// of the adapted level or maze.
	ErrStartOutOfBounds = errors.New("search: start position out of bounds")

	// ErrGoalOutOfBounds is returned when the goal position is not a cell of
	// the maze.
	ErrGoalOutOfBounds = errors.New("search: goal position out of bounds")
)

// adaptOrder is the order in which open walls become children.
var adaptOrder = [maze.NumDirections]maze.Direction{
	maze.Left, maze.Right, maze.Backward, maze.Forward, maze.Up, maze.Down,
}

type frontierItem struct {
	node *Node
	pos  maze.Position
}

// Adapt2D builds the traversal graph of level 0 rooted at start, following
// only in-plane passages.
func Adapt2D(m *maze.Maze, start maze.Position) (*Node, error) {
	if start.Level != 0 {
		return nil, fmt.Errorf("%w: %s is not on level 0", ErrStartOutOfBounds, start)
	}
	return adapt(m, start, adaptOrder[:4])
}

// Adapt3D builds the traversal graph rooted at start across all levels.
func Adapt3D(m *maze.Maze, start maze.Position) (*Node, error) {
	return adapt(m, start, adaptOrder[:])
}

// Adapt picks Adapt2D for single-level mazes and Adapt3D otherwise.
func Adapt(m *maze.Maze, start maze.Position) (*Node, error) {
	if m.Dimension().Levels == 1 {
		return Adapt2D(m, start)
	}
	return Adapt3D(m, start)
}

func adapt(m *maze.Maze, start maze.Position, dirs []maze.Direction) (*Node, error) {
	if !m.InBound(start) {
		return nil, fmt.Errorf("%w: %s outside %s", ErrStartOutOfBounds, start, m.Dimension())
	}
	if err := m.Verify(); err != nil {
		return nil, err
	}

	root := NewNode(m.CellAt(start))
	expanded := mapset.New[maze.CellID]()

	frontier := queue.New[frontierItem]()
	frontier.Enqueue(frontierItem{node: root, pos: start})
	for !frontier.Empty() {
		item := frontier.Dequeue()
		if expanded.Has(item.node.Value) {
			continue
		}

		record := m.RecordAt(item.pos)
		for _, d := range dirs {
			if !record.IsOpen(d) {
				continue
			}
			next, in := m.Neighbor(item.pos, d)
			if !in {
				continue
			}
			child := item.node.AddChild(m.CellAt(next))
			if !expanded.Has(child.Value) {
				frontier.Enqueue(frontierItem{node: child, pos: next})
			}
		}
		expanded.Put(item.node.Value)
	}

	return root, nil
}
