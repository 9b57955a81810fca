package maze

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	defaultMaxEndpointAttempts = 1000
)

var (
	// ErrNoDistinctEndpoints is returned when Start and Goal cannot be placed
	// on different row/column coordinates.
	ErrNoDistinctEndpoints = errors.New("cannot place distinct start and goal")

	// ErrUnknownGenerator is returned by GeneratorByName for unknown names.
	ErrUnknownGenerator = errors.New("unknown maze generator")

	// ErrInvalidEndpoints is returned when Start or Goal lie outside the grid
	// or share a position.
	ErrInvalidEndpoints = errors.New("invalid start or goal position")
)

// Generator builds a maze of the given dimension.
type Generator interface {
	// Name returns the short name the generator is registered under.
	Name() string
	// Generate returns a maze with Start and Goal placed and Goal reachable
	// from Start.
	Generate(dim Dimension) (*Maze, error)
}

// Prefill decides how passages left undecided by boundary and inheritance
// rules are resolved before carving.
type Prefill int

const (
	// PrefillDefault keeps the generator's own policy.
	PrefillDefault Prefill = iota
	// PrefillRandom opens each undecided passage with probability 1/2.
	PrefillRandom
	// PrefillClosed closes every undecided passage so only carving opens walls.
	PrefillClosed
)

func (p Prefill) String() string {
	switch p {
	case PrefillRandom:
		return "random"
	case PrefillClosed:
		return "closed"
	}
	return "default"
}

// Options holds the settings shared by every generator.
type Options struct {
	// Rand is the random source. When nil each Generate call seeds its own.
	Rand *rand.Rand

	// Prefill overrides the generator's prefill policy. Ignored by Kruskal.
	Prefill Prefill

	// MaxEndpointAttempts bounds the Start/Goal resampling loop.
	MaxEndpointAttempts int
}

// Option configures a generator.
type Option func(*Options)

// WithSeed makes generation deterministic.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand injects a random source. The source is not safe for concurrent
// Generate calls.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithPrefill overrides the prefill policy.
func WithPrefill(p Prefill) Option {
	return func(o *Options) {
		o.Prefill = p
	}
}

// WithMaxEndpointAttempts bounds the Start/Goal resampling loop.
func WithMaxEndpointAttempts(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxEndpointAttempts = n
		}
	}
}

func newOptions(opts []Option) Options {
	o := Options{MaxEndpointAttempts: defaultMaxEndpointAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// rng returns the configured source or a freshly seeded one.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// prefill resolves PrefillDefault to fallback.
func (o Options) prefill(fallback Prefill) Prefill {
	if o.Prefill == PrefillDefault {
		return fallback
	}
	return o.Prefill
}

// Generator names accepted by GeneratorByName.
const (
	DFSCarveName    = "dfs"
	DirectCarveName = "direct"
	KruskalName     = "kruskal"
)

// GeneratorNames lists the registered generators.
var GeneratorNames = []string{DFSCarveName, DirectCarveName, KruskalName}

// GeneratorByName returns the generator registered under name.
func GeneratorByName(name string, opts ...Option) (Generator, error) {
	switch name {
	case DFSCarveName:
		return NewDFSCarve(opts...), nil
	case DirectCarveName:
		return NewDirectCarve(opts...), nil
	case KruskalName:
		return NewKruskalCarve(opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}

// initRecords fills every record in scan order. Boundary passages are closed,
// passages toward an already initialized neighbor copy that neighbor's
// reciprocal passage, and the remaining ones are resolved by policy. With
// PrefillDefault they stay Unset.
func (m *Maze) initRecords(policy Prefill, r *rand.Rand) {
	m.each(func(p Position) {
		var o Openness
		for _, d := range Directions {
			n, in := m.Neighbor(p, d)
			switch {
			case !in:
				o[d] = Closed
			case m.dim.index(n) < m.dim.index(p):
				prev, _ := m.store.Get(m.CellAt(n))
				o[d] = prev[d.Opposite()]
			}
			if o[d] != Unset {
				continue
			}
			switch policy {
			case PrefillRandom:
				o[d] = passageOf(r.IntN(2) == 1)
			case PrefillClosed:
				o[d] = Closed
			}
		}
		m.store.Set(m.CellAt(p), o)
	})
}

// pickEndpoints draws Start and Goal positions, retrying while they share
// both row and column. Levels are ignored by the comparison, so two cells
// stacked on top of each other count as the same spot.
func pickEndpoints(dim Dimension, r *rand.Rand, maxAttempts int) (Position, Position, error) {
	if dim.Rows*dim.Cols < 2 {
		return Position{}, Position{}, fmt.Errorf("%w: %s grid has a single column of cells", ErrNoDistinctEndpoints, dim)
	}
	for range maxAttempts {
		start := randomPosition(dim, r)
		goal := randomPosition(dim, r)
		if start.Row == goal.Row && start.Col == goal.Col {
			continue
		}
		return start, goal, nil
	}
	return Position{}, Position{}, fmt.Errorf("%w: gave up after %d attempts", ErrNoDistinctEndpoints, maxAttempts)
}

func randomPosition(dim Dimension, r *rand.Rand) Position {
	return Position{Level: r.IntN(dim.Levels), Row: r.IntN(dim.Rows), Col: r.IntN(dim.Cols)}
}

// placeEndpoints relabels the cells at start and goal with the reserved
// identities, moving their records along.
func (m *Maze) placeEndpoints(start, goal Position) error {
	if !m.InBound(start) || !m.InBound(goal) || start == goal {
		return fmt.Errorf("%w: start %s goal %s in %s", ErrInvalidEndpoints, start, goal, m.dim)
	}
	m.store.Relabel(m.CellAt(start), Start)
	m.store.Relabel(m.CellAt(goal), Goal)
	m.grid[start.Level][start.Row][start.Col] = Start
	m.grid[goal.Level][goal.Row][goal.Col] = Goal
	m.start, m.goal = start, goal
	return nil
}

// Build assembles a maze by hand. open is asked once per interior wall, from
// the cell on the lower-index side, whether that wall is open.
func Build(dim Dimension, start, goal Position, open func(p Position, d Direction) bool) (*Maze, error) {
	if err := dim.Validate(); err != nil {
		return nil, err
	}
	m := newMaze(dim)
	m.initRecords(PrefillClosed, nil)
	if open != nil {
		m.each(func(p Position) {
			for _, d := range [3]Direction{Right, Backward, Up} {
				if _, in := m.Neighbor(p, d); in && open(p, d) {
					m.setWall(p, d, Open)
				}
			}
		})
	}
	if err := m.placeEndpoints(start, goal); err != nil {
		return nil, err
	}
	return m, nil
}
