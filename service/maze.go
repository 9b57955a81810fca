package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/search"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultPrefix = "vinom"
	mazeKeyFmt    = "%s:maze:%s"
)

var (
	// ErrMazeTooLarge is returned when a requested axis exceeds the
	// configured maximum.
	ErrMazeTooLarge = errors.New("maze dimension exceeds limit")
)

// Config holds the dependencies of MazeService.
type Config struct {
	Store   i.SaveStore
	Encoder i.Encoder
	Logger  i.Logger
	Metrics *Metrics

	// Prefix namespaces store keys.
	Prefix string
	// MaxSide caps every axis of generated mazes. Zero means no cap.
	MaxSide int
	// GeneratorOptions are applied to a new generator on every Generate call.
	// maze.WithSeed therefore makes every generated maze identical and is
	// meant for tests. Generation is serialized while options are set, so a
	// source injected with maze.WithRand is never used concurrently.
	GeneratorOptions []maze.Option
}

// MazeService generates mazes, persists them through a SaveStore and runs
// searches over stored mazes.
type MazeService struct {
	store   i.SaveStore
	encoder i.Encoder
	logger  i.Logger
	metrics *Metrics
	prefix  string
	maxSide int
	genOpts []maze.Option
	genMu   sync.Mutex
}

// NewMazeService validates c and creates a MazeService.
func NewMazeService(c *Config) (*MazeService, error) {
	if c == nil || c.Store == nil || c.Encoder == nil || c.Logger == nil {
		return nil, errors.New("maze service requires a store, an encoder and a logger")
	}
	prefix := c.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &MazeService{
		store:   c.Store,
		encoder: c.Encoder,
		logger:  c.Logger,
		metrics: c.Metrics,
		prefix:  prefix,
		maxSide: c.MaxSide,
		genOpts: c.GeneratorOptions,
	}, nil
}

// Generate implements i.MazeService.
func (s *MazeService) Generate(ctx context.Context, algorithm string, dim maze.Dimension) (uuid.UUID, *maze.Maze, error) {
	if err := dim.Validate(); err != nil {
		return uuid.Nil, nil, err
	}
	if s.maxSide > 0 && max(dim.Levels, dim.Rows, dim.Cols) > s.maxSide {
		return uuid.Nil, nil, fmt.Errorf("%w: %s with limit %d", ErrMazeTooLarge, dim, s.maxSide)
	}

	gen, err := maze.GeneratorByName(algorithm, s.genOpts...)
	if err != nil {
		return uuid.Nil, nil, err
	}

	measured, err := s.measure(gen, dim)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Generating %s maze %s: %v", algorithm, dim, err))
		return uuid.Nil, nil, err
	}
	s.metrics.observeGeneration(gen.Name(), measured.Elapsed)
	s.logger.Info(measured.String())

	id := uuid.New()
	if err := SaveMaze(ctx, s.store, s.encoder, s.key(id), measured.Maze); err != nil {
		s.logger.Error(fmt.Sprintf("Saving maze %s: %v", id, err))
		return uuid.Nil, nil, err
	}

	s.logger.Info(fmt.Sprintf("Maze saved: ID=%s Algorithm=%s Dimension=%s", id, gen.Name(), dim))
	return id, measured.Maze, nil
}

// Load implements i.MazeService.
func (s *MazeService) Load(ctx context.Context, id uuid.UUID) (*maze.Maze, error) {
	m, err := LoadMaze(ctx, s.store, s.encoder, s.key(id))
	if err != nil {
		if errors.Is(err, i.ErrNotFound) {
			s.logger.Warning(fmt.Sprintf("Maze not found: ID=%s", id))
		} else {
			s.logger.Error(fmt.Sprintf("Loading maze %s: %v", id, err))
		}
		return nil, err
	}
	return m, nil
}

// Search implements i.MazeService.
func (s *MazeService) Search(ctx context.Context, id uuid.UUID, algorithm string) (search.Result, error) {
	searcher, err := search.SearcherByName(algorithm)
	if err != nil {
		return search.Result{}, err
	}

	m, err := s.Load(ctx, id)
	if err != nil {
		return search.Result{}, err
	}

	res, err := search.SolveWith(searcher, m)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Searching maze %s: %v", id, err))
		return search.Result{}, err
	}
	s.metrics.observeSearch(searcher.Name(), res.Found, res.Visited)

	s.logger.Info(fmt.Sprintf("Search finished: ID=%s Algorithm=%s Found=%t Visited=%d", id, searcher.Name(), res.Found, res.Visited))
	return res, nil
}

// measure runs gen, holding genMu when injected options may share state.
func (s *MazeService) measure(gen maze.Generator, dim maze.Dimension) (maze.Measurement, error) {
	if len(s.genOpts) > 0 {
		s.genMu.Lock()
		defer s.genMu.Unlock()
	}
	return maze.Measure(gen, dim)
}

func (s *MazeService) key(id uuid.UUID) string {
	return fmt.Sprintf(mazeKeyFmt, s.prefix, id)
}
