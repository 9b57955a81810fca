package maze

// axis names one coordinate of a Position.
type axis int

const (
	axisLevel axis = iota
	axisRow
	axisCol
)

// DirectCarve walks straight from Start to Goal, choosing a random
// unaligned axis at each step and opening the wall it crosses. The rest of
// the maze keeps its random prefill.
type DirectCarve struct {
	opts Options
}

// NewDirectCarve creates a direct-path carving generator.
func NewDirectCarve(opts ...Option) *DirectCarve {
	return &DirectCarve{opts: newOptions(opts)}
}

// Name implements Generator.
func (g *DirectCarve) Name() string {
	return DirectCarveName
}

// Generate implements Generator.
func (g *DirectCarve) Generate(dim Dimension) (*Maze, error) {
	if err := dim.Validate(); err != nil {
		return nil, err
	}
	r := g.opts.rng()
	m := newMaze(dim)
	m.initRecords(g.opts.prefill(PrefillRandom), r)

	start, goal, err := pickEndpoints(dim, r, g.opts.MaxEndpointAttempts)
	if err != nil {
		return nil, err
	}

	axes := unaligned(start, goal)
	walker := start
	for len(axes) > 0 {
		i := r.IntN(len(axes))
		d := towards(walker, goal, axes[i])
		m.openWall(Move{From: walker, To: walker.Step(d), Direction: d})
		walker = walker.Step(d)
		if coordinate(walker, axes[i]) == coordinate(goal, axes[i]) {
			axes = append(axes[:i], axes[i+1:]...)
		}
	}

	if err := m.placeEndpoints(start, goal); err != nil {
		return nil, err
	}
	return m, nil
}

func unaligned(a, b Position) []axis {
	var axes []axis
	for _, x := range []axis{axisLevel, axisRow, axisCol} {
		if coordinate(a, x) != coordinate(b, x) {
			axes = append(axes, x)
		}
	}
	return axes
}

func coordinate(p Position, x axis) int {
	switch x {
	case axisLevel:
		return p.Level
	case axisRow:
		return p.Row
	}
	return p.Col
}

// towards returns the direction that moves p one unit closer to q along x.
func towards(p, q Position, x axis) Direction {
	closer := coordinate(p, x) < coordinate(q, x)
	switch x {
	case axisLevel:
		if closer {
			return Up
		}
		return Down
	case axisRow:
		if closer {
			return Backward
		}
		return Forward
	}
	if closer {
		return Right
	}
	return Left
}
