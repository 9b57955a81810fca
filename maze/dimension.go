package maze

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension is returned when a maze axis is not a positive count
// or the grid holds more than MaxCells cells.
var ErrInvalidDimension = errors.New("invalid maze dimension")

// MaxCells is the largest number of cells a maze may hold.
const MaxCells = math.MaxInt32

// Dimension is the size of a maze: levels stacked vertically, each level a
// rows x cols grid.
type Dimension struct {
	Levels int `json:"levels" yaml:"levels" bson:"levels"`
	Rows   int `json:"rows" yaml:"rows" bson:"rows"`
	Cols   int `json:"cols" yaml:"cols" bson:"cols"`
}

// NewDimension validates and returns a Dimension.
func NewDimension(levels, rows, cols int) (Dimension, error) {
	d := Dimension{Levels: levels, Rows: rows, Cols: cols}
	if err := d.Validate(); err != nil {
		return Dimension{}, err
	}
	return d, nil
}

// Validate returns ErrInvalidDimension if any axis is not positive or the
// cell count exceeds MaxCells.
func (d Dimension) Validate() error {
	if min(d.Levels, d.Rows, d.Cols) <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDimension, d)
	}
	// Divide instead of multiplying so oversized axes cannot wrap around.
	if d.Rows > MaxCells/d.Cols || d.Levels > MaxCells/(d.Rows*d.Cols) {
		return fmt.Errorf("%w: %s holds more than %d cells", ErrInvalidDimension, d, MaxCells)
	}
	return nil
}

// Cells returns the number of cells in the grid.
func (d Dimension) Cells() int {
	return d.Levels * d.Rows * d.Cols
}

// Contains reports whether p lies inside the grid.
func (d Dimension) Contains(p Position) bool {
	return p.Level >= 0 && p.Level < d.Levels &&
		p.Row >= 0 && p.Row < d.Rows &&
		p.Col >= 0 && p.Col < d.Cols
}

// index maps p to its row-major arena index.
func (d Dimension) index(p Position) int {
	return (p.Level*d.Rows+p.Row)*d.Cols + p.Col
}

// position is the inverse of index.
func (d Dimension) position(idx int) Position {
	perLevel := d.Rows * d.Cols
	return Position{
		Level: idx / perLevel,
		Row:   (idx % perLevel) / d.Cols,
		Col:   idx % d.Cols,
	}
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Levels, d.Rows, d.Cols)
}

// Position is the (level, row, col) coordinate of a cell.
type Position struct {
	Level int `json:"level" yaml:"level" bson:"level"`
	Row   int `json:"row" yaml:"row" bson:"row"`
	Col   int `json:"col" yaml:"col" bson:"col"`
}

// Step returns the position one unit away in direction d.
func (p Position) Step(d Direction) Position {
	delta := d.Delta()
	return Position{Level: p.Level + delta.Level, Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// Manhattan returns the grid distance between p and q across all three axes.
func (p Position) Manhattan(q Position) int {
	return abs(p.Level-q.Level) + abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Level, p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
