package search

import "fmt"

// NotFound is the Depth of a Result whose goal was never reached.
const NotFound = -1

// Result is the outcome of a search.
type Result struct {
	// Found reports whether the goal was reached.
	Found bool `json:"found" yaml:"found"`
	// Visited is the number of distinct cells visited before the goal left
	// the frontier, or every visited cell when the goal was not found.
	Visited int `json:"visited" yaml:"visited"`
	// Depth is the number of edges from the root to the goal node.
	Depth int `json:"depth" yaml:"depth"`
}

func notFound(visited int) Result {
	return Result{Found: false, Visited: visited, Depth: NotFound}
}

func (r Result) String() string {
	if !r.Found {
		return fmt.Sprintf("goal not reachable, %d cells visited", r.Visited)
	}
	return fmt.Sprintf("goal found at depth %d, %d cells visited", r.Depth, r.Visited)
}
