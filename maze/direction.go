package maze

import "fmt"

// Direction names one of the six moves available from a cell.
// Its value doubles as the index into an Openness record.
type Direction int

const (
	Left Direction = iota
	Right
	Forward
	Backward
	Up
	Down

	// NumDirections is the number of passages recorded per cell.
	NumDirections = 6
)

var (
	// Directions lists every direction in record order.
	Directions = [NumDirections]Direction{Left, Right, Forward, Backward, Up, Down}

	// PlanarDirections lists the four directions that stay on a level.
	PlanarDirections = [4]Direction{Left, Right, Forward, Backward}

	directionNames = [NumDirections]string{"Left", "Right", "Forward", "Backward", "Up", "Down"}

	directionDeltas = [NumDirections]Position{
		Left:     {Col: -1},
		Right:    {Col: 1},
		Forward:  {Row: -1},
		Backward: {Row: 1},
		Up:       {Level: 1},
		Down:     {Level: -1},
	}
)

// Opposite returns the direction pointing back across the same wall.
func (d Direction) Opposite() Direction {
	// Directions come in pairs: (Left, Right), (Forward, Backward), (Up, Down).
	return d ^ 1
}

// Delta returns the position offset of one step in direction d.
func (d Direction) Delta() Position {
	return directionDeltas[d]
}

// Planar reports whether d keeps the walker on the same level.
func (d Direction) Planar() bool {
	return d != Up && d != Down
}

// Valid reports whether d is one of the six known directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}
