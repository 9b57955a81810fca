package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/search"
	"github.com/google/uuid"
)

// MazeService generates, stores and solves mazes.
type MazeService interface {
	// Generate builds a maze with the named algorithm and stores it under a
	// fresh ID.
	Generate(ctx context.Context, algorithm string, dim maze.Dimension) (uuid.UUID, *maze.Maze, error)

	// Load returns the stored maze with the given ID.
	Load(ctx context.Context, id uuid.UUID) (*maze.Maze, error)

	// Search runs the named search algorithm from Start to Goal of a stored maze.
	Search(ctx context.Context, id uuid.UUID, algorithm string) (search.Result, error)
}
