package maze

import (
	"github.com/zyedidia/generic/stack"
)

// carveOrder is the neighbor priority of the DFS walker.
var carveOrder = [NumDirections]Direction{Right, Left, Backward, Forward, Up, Down}

// DFSCarve walks from Start with a depth-first stack, opening a wall toward
// the first unvisited neighbor and backtracking on dead ends, until Goal is
// reached. Undecided walls are closed unless another prefill is requested.
type DFSCarve struct {
	opts Options
}

// NewDFSCarve creates a depth-first carving generator.
func NewDFSCarve(opts ...Option) *DFSCarve {
	return &DFSCarve{opts: newOptions(opts)}
}

// Name implements Generator.
func (g *DFSCarve) Name() string {
	return DFSCarveName
}

// Generate implements Generator.
func (g *DFSCarve) Generate(dim Dimension) (*Maze, error) {
	if err := dim.Validate(); err != nil {
		return nil, err
	}
	r := g.opts.rng()
	m := newMaze(dim)
	m.initRecords(g.opts.prefill(PrefillClosed), r)

	start, goal, err := pickEndpoints(dim, r, g.opts.MaxEndpointAttempts)
	if err != nil {
		return nil, err
	}
	m.carveDepthFirst(start, goal)

	if err := m.placeEndpoints(start, goal); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Maze) carveDepthFirst(from, to Position) {
	visited := make([]bool, m.dim.Cells())
	visited[m.dim.index(from)] = true

	path := stack.New[Position]()
	path.Push(from)
	for path.Size() > 0 {
		current := path.Peek()
		if current == to {
			return
		}

		next, ok := m.firstUnvisited(current, visited)
		if !ok {
			path.Pop()
			continue
		}
		m.openWall(next)
		visited[m.dim.index(next.To)] = true
		path.Push(next.To)
	}
}

func (m *Maze) firstUnvisited(p Position, visited []bool) (Move, bool) {
	for _, d := range carveOrder {
		n, in := m.Neighbor(p, d)
		if in && !visited[m.dim.index(n)] {
			return Move{From: p, To: n, Direction: d}, true
		}
	}
	return Move{}, false
}
