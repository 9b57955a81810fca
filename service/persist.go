package service

import (
	"context"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

const endpointsKeySuffix = ":endpoints"

// SaveMaze writes the snapshot of m under key and its endpoints under
// key + ":endpoints".
func SaveMaze(ctx context.Context, store i.SaveStore, enc i.Encoder, key string, m *maze.Maze) error {
	snapshot, err := enc.Marshal(m.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding maze %s: %w", key, err)
	}
	endpoints, err := enc.Marshal(m.Endpoints())
	if err != nil {
		return fmt.Errorf("encoding endpoints of %s: %w", key, err)
	}

	if err := store.Put(ctx, key, snapshot); err != nil {
		return fmt.Errorf("saving maze %s: %w", key, err)
	}
	if err := store.Put(ctx, key+endpointsKeySuffix, endpoints); err != nil {
		return fmt.Errorf("saving endpoints of %s: %w", key, err)
	}
	return nil
}

// LoadMaze reads back a maze written by SaveMaze. Missing keys surface as
// i.ErrNotFound.
func LoadMaze(ctx context.Context, store i.SaveStore, enc i.Encoder, key string) (*maze.Maze, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading maze %s: %w", key, err)
	}
	var snapshot maze.Snapshot
	if err := enc.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decoding maze %s: %w", key, err)
	}

	raw, err = store.Get(ctx, key+endpointsKeySuffix)
	if err != nil {
		return nil, fmt.Errorf("loading endpoints of %s: %w", key, err)
	}
	var endpoints maze.Endpoints
	if err := enc.Unmarshal(raw, &endpoints); err != nil {
		return nil, fmt.Errorf("decoding endpoints of %s: %w", key, err)
	}

	return maze.Restore(snapshot, endpoints)
}
