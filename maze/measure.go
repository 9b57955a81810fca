package maze

import (
	"fmt"
	"strings"
	"time"
)

// Measurement is the outcome of a timed generation.
type Measurement struct {
	Generator string
	Dimension Dimension
	Elapsed   time.Duration
	Maze      *Maze
}

// String reports the elapsed time split into minutes, seconds and
// milliseconds. Zero-valued leading units are omitted.
func (m Measurement) String() string {
	ms := m.Elapsed.Milliseconds()

	var b strings.Builder
	fmt.Fprintf(&b, "The function generate in %s took ", m.Generator)
	if ms >= 60000 {
		fmt.Fprintf(&b, "%d minutes, ", ms/60000)
		ms %= 60000
	}
	if ms >= 1000 {
		fmt.Fprintf(&b, "%d seconds, ", ms/1000)
		ms %= 1000
	}
	fmt.Fprintf(&b, "%d ms.", ms)
	return b.String()
}

// Measure runs gen once for dim and records how long it took.
func Measure(gen Generator, dim Dimension) (Measurement, error) {
	started := time.Now()
	m, err := gen.Generate(dim)
	elapsed := time.Since(started)
	if err != nil {
		return Measurement{}, fmt.Errorf("generate %s maze %s: %w", gen.Name(), dim, err)
	}

	return Measurement{
		Generator: gen.Name(),
		Dimension: dim,
		Elapsed:   elapsed,
		Maze:      m,
	}, nil
}
