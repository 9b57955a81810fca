/*
Package maze provides tools for creating and inspecting 3D grid mazes.

A Maze is a stack of rectangular levels. Every cell carries an opaque CellID
and an Openness record stating which of its six walls can be crossed. Walls
are always recorded on both sides: if a cell is open toward its neighbor, the
neighbor is open back toward it.

Three generators populate a maze (DFS carve, direct-path carve and Kruskal
union-find carve) and mark one Start and one Goal cell. The package also
flattens mazes into snapshots for persistence and renders them as text.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptConnectivity is returned when a record is incomplete, open
	// toward the outside of the grid, or disagrees with its neighbor.
	ErrCorruptConnectivity = errors.New("corrupt maze connectivity")
)

// Move represents a step from one cell to an adjacent one.
type Move struct {
	From      Position
	To        Position
	Direction Direction
}

// Maze is a 3D grid of cell identities together with the connectivity store
// describing the walls between them.
type Maze struct {
	dim   Dimension
	grid  [][][]CellID
	store *Store
	start Position
	goal  Position
}

// newMaze allocates a maze whose cells carry their arena index as identity
// and whose store holds an all-unset record per cell.
func newMaze(dim Dimension) *Maze {
	grid := make([][][]CellID, dim.Levels)
	store := NewStore(dim.Cells())
	for l := range grid {
		grid[l] = make([][]CellID, dim.Rows)
		for r := range grid[l] {
			grid[l][r] = make([]CellID, dim.Cols)
			for c := range grid[l][r] {
				id := CellID(dim.index(Position{Level: l, Row: r, Col: c}))
				grid[l][r][c] = id
				store.Set(id, Openness{})
			}
		}
	}

	return &Maze{dim: dim, grid: grid, store: store}
}

// Dimension returns the size of the maze.
func (m *Maze) Dimension() Dimension {
	return m.dim
}

// Store returns the connectivity store. Callers must treat it as read-only.
func (m *Maze) Store() *Store {
	return m.store
}

// Start returns the position of the Start cell.
func (m *Maze) Start() Position {
	return m.start
}

// Goal returns the position of the Goal cell.
func (m *Maze) Goal() Position {
	return m.goal
}

// InBound reports whether p lies inside the maze.
func (m *Maze) InBound(p Position) bool {
	return m.dim.Contains(p)
}

// CellAt returns the identity of the cell at p.
func (m *Maze) CellAt(p Position) CellID {
	return m.grid[p.Level][p.Row][p.Col]
}

// RecordAt returns the Openness record of the cell at p.
func (m *Maze) RecordAt(p Position) Openness {
	o, _ := m.store.Get(m.CellAt(p))
	return o
}

// PositionOf returns the grid position of the cell with identity id.
func (m *Maze) PositionOf(id CellID) (Position, bool) {
	switch id {
	case Start:
		return m.start, true
	case Goal:
		return m.goal, true
	}
	if id < 0 || int(id) >= m.dim.Cells() {
		return Position{}, false
	}
	p := m.dim.position(int(id))
	if m.CellAt(p) != id {
		// The cell was relabeled to Start or Goal.
		return Position{}, false
	}
	return p, true
}

// IsOpen reports whether movement from p in direction d is unobstructed.
func (m *Maze) IsOpen(p Position, d Direction) bool {
	return m.RecordAt(p).IsOpen(d)
}

// Neighbor returns the cell next to p in direction d, if it is in bounds.
func (m *Maze) Neighbor(p Position, d Direction) (Position, bool) {
	n := p.Step(d)
	return n, m.InBound(n)
}

// Neighbors returns every in-bound move out of p, regardless of walls.
func (m *Maze) Neighbors(p Position) []Move {
	result := make([]Move, 0, NumDirections)
	for _, d := range Directions {
		if n, ok := m.Neighbor(p, d); ok {
			result = append(result, Move{From: p, To: n, Direction: d})
		}
	}
	return result
}

// IsValidMove checks if a move is valid, i.e. both cells are in bounds,
// adjacent in the move's direction and the wall between them is open on
// both sides.
func (m *Maze) IsValidMove(move Move) bool {
	if !move.Direction.Valid() || !m.InBound(move.From) || !m.InBound(move.To) {
		return false
	}
	if move.From.Step(move.Direction) != move.To {
		return false
	}
	return m.IsOpen(move.From, move.Direction) && m.IsOpen(move.To, move.Direction.Opposite())
}

// setWall records passage p on both sides of the wall between from and its
// neighbor in direction d. The neighbor must be in bounds.
func (m *Maze) setWall(from Position, d Direction, p Passage) {
	to := from.Step(d)
	m.store.setPassage(m.CellAt(from), d, p)
	m.store.setPassage(m.CellAt(to), d.Opposite(), p)
}

// openWall removes the wall between two adjacent cells.
func (m *Maze) openWall(move Move) {
	m.setWall(move.From, move.Direction, Open)
}

// OpenWalls counts the open walls between pairs of cells. Each wall is
// counted once.
func (m *Maze) OpenWalls() int {
	n := 0
	m.each(func(p Position) {
		o := m.RecordAt(p)
		// Count only the positive side of each axis.
		for _, d := range [3]Direction{Right, Backward, Up} {
			if o.IsOpen(d) {
				n++
			}
		}
	})
	return n
}

// Verify checks full flag coverage, boundary closure and reciprocity for
// every cell, and that exactly one Start and one Goal are placed.
func (m *Maze) Verify() error {
	var err error
	starts, goals := 0, 0
	m.each(func(p Position) {
		if err != nil {
			return
		}
		switch m.CellAt(p) {
		case Start:
			starts++
		case Goal:
			goals++
		}
		o, ok := m.store.Get(m.CellAt(p))
		if !ok {
			err = fmt.Errorf("%w: no record for cell %s at %s", ErrCorruptConnectivity, m.CellAt(p), p)
			return
		}
		if !o.Complete() {
			err = fmt.Errorf("%w: unset passage at %s", ErrCorruptConnectivity, p)
			return
		}
		for _, d := range Directions {
			n, in := m.Neighbor(p, d)
			if !in {
				if o[d] != Closed {
					err = fmt.Errorf("%w: %s at %s opens outside the grid", ErrCorruptConnectivity, d, p)
					return
				}
				continue
			}
			if o[d] != m.RecordAt(n)[d.Opposite()] {
				err = fmt.Errorf("%w: %s wall at %s disagrees with %s", ErrCorruptConnectivity, d, p, n)
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if starts != 1 || goals != 1 {
		return fmt.Errorf("%w: found %d start and %d goal cells", ErrCorruptConnectivity, starts, goals)
	}
	return nil
}

// each calls fn for every position in scan order: level, row, col.
func (m *Maze) each(fn func(Position)) {
	for l := 0; l < m.dim.Levels; l++ {
		for r := 0; r < m.dim.Rows; r++ {
			for c := 0; c < m.dim.Cols; c++ {
				fn(Position{Level: l, Row: r, Col: c})
			}
		}
	}
}
