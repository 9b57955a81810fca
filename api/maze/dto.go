// Package mazeapi exposes maze generation, retrieval and search over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// GenerateRequest represents a request to generate a new maze.
type GenerateRequest struct {
	Levels    int    `json:"levels" binding:"required,min=1"`
	Rows      int    `json:"rows" binding:"required,min=1"`
	Cols      int    `json:"cols" binding:"required,min=1"`
	Algorithm string `json:"algorithm"`
}

// MazeResponse represents a stored maze.
type MazeResponse struct {
	ID        uuid.UUID      `json:"id"`
	Snapshot  maze.Snapshot  `json:"snapshot"`
	Endpoints maze.Endpoints `json:"endpoints"`
}

// SearchResponse represents the outcome of a search.
type SearchResponse struct {
	Algorithm string `json:"algorithm"`
	Found     bool   `json:"found"`
	Visited   int    `json:"visited"`
	Depth     int    `json:"depth"`
}
