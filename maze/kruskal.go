package maze

// KruskalCarve builds a spanning tree of the grid: interior walls are visited
// in random order and opened only when they join two separate components.
// The result has exactly cells-1 open walls.
type KruskalCarve struct {
	opts Options
}

// NewKruskalCarve creates a union-find carving generator. The prefill option
// is ignored.
func NewKruskalCarve(opts ...Option) *KruskalCarve {
	return &KruskalCarve{opts: newOptions(opts)}
}

// Name implements Generator.
func (g *KruskalCarve) Name() string {
	return KruskalName
}

// Generate implements Generator.
func (g *KruskalCarve) Generate(dim Dimension) (*Maze, error) {
	if err := dim.Validate(); err != nil {
		return nil, err
	}
	r := g.opts.rng()
	m := newMaze(dim)
	m.initRecords(PrefillDefault, r)

	walls := m.interiorWalls()
	r.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })

	components := newDisjointSet(dim.Cells())
	for _, w := range walls {
		if components.sets == 1 {
			break
		}
		if components.union(dim.index(w.From), dim.index(w.To)) {
			m.setWall(w.From, w.Direction, Open)
		} else {
			m.setWall(w.From, w.Direction, Closed)
		}
	}
	for _, w := range walls {
		if m.RecordAt(w.From)[w.Direction] == Unset {
			m.setWall(w.From, w.Direction, Closed)
		}
	}

	start, goal, err := pickEndpoints(dim, r, g.opts.MaxEndpointAttempts)
	if err != nil {
		return nil, err
	}
	if err := m.placeEndpoints(start, goal); err != nil {
		return nil, err
	}
	return m, nil
}

// interiorWalls lists every wall between two in-bound cells once, from the
// cell on its negative side.
func (m *Maze) interiorWalls() []Move {
	var walls []Move
	m.each(func(p Position) {
		for _, d := range [3]Direction{Right, Backward, Up} {
			if n, in := m.Neighbor(p, d); in {
				walls = append(walls, Move{From: p, To: n, Direction: d})
			}
		}
	})
	return walls
}
