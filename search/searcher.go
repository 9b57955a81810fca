package search

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// ErrUnknownSearcher is returned by SearcherByName for unknown names.
var ErrUnknownSearcher = errors.New("search: unknown search algorithm")

// Searcher names accepted by SearcherByName.
const (
	BreadthFirstName = "bfs"
	DepthFirstName   = "dfs"
	AStarName        = "astar"
)

// SearcherNames lists the registered searchers.
var SearcherNames = []string{BreadthFirstName, DepthFirstName, AStarName}

// Searcher finds the goal of a maze starting from a given cell.
type Searcher interface {
	Name() string
	Search(m *maze.Maze, start, goal maze.Position) (Result, error)
}

// SearcherByName returns the searcher registered under name.
func SearcherByName(name string) (Searcher, error) {
	switch name {
	case BreadthFirstName:
		return BreadthFirstSearch{}, nil
	case DepthFirstName:
		return DepthFirstSearch{}, nil
	case AStarName:
		return AStarSearch{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSearcher, name)
}

// SolveWith adapts m from its Start cell and runs s toward its Goal cell.
func SolveWith(s Searcher, m *maze.Maze) (Result, error) {
	return s.Search(m, m.Start(), m.Goal())
}

// BreadthFirstSearch runs BreadthFirst over the adapted maze.
type BreadthFirstSearch struct{}

func (BreadthFirstSearch) Name() string { return BreadthFirstName }

func (BreadthFirstSearch) Search(m *maze.Maze, start, goal maze.Position) (Result, error) {
	root, target, err := prepare(m, start, goal)
	if err != nil {
		return Result{}, err
	}
	return BreadthFirst(root, target), nil
}

// DepthFirstSearch runs DepthFirst over the adapted maze.
type DepthFirstSearch struct{}

func (DepthFirstSearch) Name() string { return DepthFirstName }

func (DepthFirstSearch) Search(m *maze.Maze, start, goal maze.Position) (Result, error) {
	root, target, err := prepare(m, start, goal)
	if err != nil {
		return Result{}, err
	}
	return DepthFirst(root, target), nil
}

// AStarSearch runs AStar over the adapted maze with the Manhattan heuristic.
type AStarSearch struct{}

func (AStarSearch) Name() string { return AStarName }

func (AStarSearch) Search(m *maze.Maze, start, goal maze.Position) (Result, error) {
	root, target, err := prepare(m, start, goal)
	if err != nil {
		return Result{}, err
	}
	return AStar(root, target, Manhattan(m, goal)), nil
}

func prepare(m *maze.Maze, start, goal maze.Position) (*Node, maze.CellID, error) {
	if !m.InBound(goal) {
		return nil, 0, fmt.Errorf("%w: %s outside %s", ErrGoalOutOfBounds, goal, m.Dimension())
	}
	root, err := Adapt(m, start)
	if err != nil {
		return nil, 0, err
	}
	return root, m.CellAt(goal), nil
}
