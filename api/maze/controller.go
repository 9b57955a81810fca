package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/search"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultAlgorithm       = maze.KruskalName
	defaultSearchAlgorithm = search.BreadthFirstName
)

// Controller serves the maze routes.
type Controller struct {
	mazeService i.MazeService
}

// NewController initializes a maze Controller.
func NewController(ms i.MazeService) (*Controller, error) {
	if ms == nil {
		return nil, errors.New("maze controller requires a maze service")
	}
	return &Controller{mazeService: ms}, nil
}

// Register registers the maze routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.generate)
		mazes.GET("/:id", c.get)
		mazes.GET("/:id/text", c.text)
		mazes.GET("/:id/search", c.search)
	}
}

// generate handles maze creation requests.
func (c *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Algorithm == "" {
		request.Algorithm = defaultAlgorithm
	}

	dim := maze.Dimension{Levels: request.Levels, Rows: request.Rows, Cols: request.Cols}
	id, m, err := c.mazeService.Generate(ctx.Request.Context(), request.Algorithm, dim)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &MazeResponse{ID: id, Snapshot: m.Snapshot(), Endpoints: m.Endpoints()})
}

// get returns a stored maze.
func (c *Controller) get(ctx *gin.Context) {
	id, m, ok := c.load(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, &MazeResponse{ID: id, Snapshot: m.Snapshot(), Endpoints: m.Endpoints()})
}

// text returns the text rendering of a stored maze.
func (c *Controller) text(ctx *gin.Context) {
	_, m, ok := c.load(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, m.String())
}

// search runs a search over a stored maze.
func (c *Controller) search(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	algorithm := ctx.DefaultQuery("algorithm", defaultSearchAlgorithm)

	res, err := c.mazeService.Search(ctx.Request.Context(), id, algorithm)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &SearchResponse{
		Algorithm: algorithm,
		Found:     res.Found,
		Visited:   res.Visited,
		Depth:     res.Depth,
	})
}

func (c *Controller) load(ctx *gin.Context) (uuid.UUID, *maze.Maze, bool) {
	id, ok := parseID(ctx)
	if !ok {
		return uuid.Nil, nil, false
	}
	m, err := c.mazeService.Load(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return uuid.Nil, nil, false
	}
	return id, m, true
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, i.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrUnknownGenerator),
		errors.Is(err, maze.ErrNoDistinctEndpoints),
		errors.Is(err, search.ErrUnknownSearcher),
		errors.Is(err, service.ErrMazeTooLarge):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
