package maze

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDimensions = []Dimension{
	{Levels: 1, Rows: 1, Cols: 2},
	{Levels: 1, Rows: 2, Cols: 1},
	{Levels: 1, Rows: 4, Cols: 4},
	{Levels: 2, Rows: 3, Cols: 5},
	{Levels: 3, Rows: 3, Cols: 3},
	{Levels: 4, Rows: 1, Cols: 6},
	{Levels: 5, Rows: 7, Cols: 2},
}

// reachable returns how many cells can be reached from Start through open
// walls and whether Goal is among them.
func reachable(m *Maze) (int, bool) {
	seen := map[Position]bool{m.Start(): true}
	frontier := []Position{m.Start()}
	for len(frontier) > 0 {
		p := frontier[0]
		frontier = frontier[1:]
		for _, mv := range m.Neighbors(p) {
			if !seen[mv.To] && m.IsValidMove(mv) {
				seen[mv.To] = true
				frontier = append(frontier, mv.To)
			}
		}
	}
	return len(seen), seen[m.Goal()]
}

func allGenerators(opts ...Option) []Generator {
	return []Generator{NewDFSCarve(opts...), NewDirectCarve(opts...), NewKruskalCarve(opts...)}
}

func TestGeneratorsInvariants(t *testing.T) {
	for _, gen := range allGenerators(WithSeed(7)) {
		for _, dim := range testDimensions {
			t.Run(gen.Name()+"/"+dim.String(), func(t *testing.T) {
				m, err := gen.Generate(dim)
				require.NoError(t, err)
				require.NoError(t, m.Verify())

				assert.Equal(t, dim, m.Dimension())
				assert.Equal(t, dim.Cells(), m.Store().Len())
				assert.Equal(t, Start, m.CellAt(m.Start()))
				assert.Equal(t, Goal, m.CellAt(m.Goal()))
				assert.False(t, m.Start().Row == m.Goal().Row && m.Start().Col == m.Goal().Col)

				_, found := reachable(m)
				assert.True(t, found, "goal must be reachable from start")
			})
		}
	}
}

func TestGeneratorsWithPrefill(t *testing.T) {
	for _, prefill := range []Prefill{PrefillRandom, PrefillClosed} {
		for _, gen := range allGenerators(WithSeed(11), WithPrefill(prefill)) {
			t.Run(gen.Name()+"/"+prefill.String(), func(t *testing.T) {
				m, err := gen.Generate(Dimension{Levels: 3, Rows: 4, Cols: 4})
				require.NoError(t, err)
				require.NoError(t, m.Verify())
				_, found := reachable(m)
				assert.True(t, found)
			})
		}
	}
}

func TestKruskalSpanningTree(t *testing.T) {
	gen := NewKruskalCarve()
	dim := Dimension{Levels: 1, Rows: 4, Cols: 4}

	for range 100 {
		m, err := gen.Generate(dim)
		require.NoError(t, err)
		require.NoError(t, m.Verify())

		assert.Equal(t, dim.Cells()-1, m.OpenWalls())
		n, found := reachable(m)
		assert.True(t, found)
		assert.Equal(t, dim.Cells(), n)
	}
}

func TestKruskalSpanningTree3D(t *testing.T) {
	for _, dim := range testDimensions {
		m, err := NewKruskalCarve(WithSeed(uint64(dim.Cells()))).Generate(dim)
		require.NoError(t, err)
		assert.Equal(t, dim.Cells()-1, m.OpenWalls(), dim.String())
	}
}

func TestDFSCarveClosedByDefault(t *testing.T) {
	m, err := NewDFSCarve(WithSeed(3)).Generate(Dimension{Levels: 2, Rows: 5, Cols: 5})
	require.NoError(t, err)

	// Carving never closes a cycle, so the open walls form a forest.
	n, found := reachable(m)
	assert.True(t, found)
	assert.Equal(t, n-1, m.OpenWalls())
}

func TestGenerateDeterministic(t *testing.T) {
	dim := Dimension{Levels: 2, Rows: 4, Cols: 4}
	for _, name := range GeneratorNames {
		a, err := GeneratorByName(name, WithSeed(42))
		require.NoError(t, err)
		b, err := GeneratorByName(name, WithSeed(42))
		require.NoError(t, err)

		ma, err := a.Generate(dim)
		require.NoError(t, err)
		mb, err := b.Generate(dim)
		require.NoError(t, err)
		assert.Equal(t, ma.Snapshot(), mb.Snapshot(), name)
		assert.Equal(t, ma.Endpoints(), mb.Endpoints(), name)
	}
}

func TestGenerateErrors(t *testing.T) {
	for _, gen := range allGenerators() {
		t.Run(gen.Name()+"/zero rows", func(t *testing.T) {
			_, err := gen.Generate(Dimension{Levels: 1, Rows: 0, Cols: 3})
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})

		t.Run(gen.Name()+"/oversized", func(t *testing.T) {
			_, err := gen.Generate(Dimension{Levels: math.MaxInt / 2, Rows: 4, Cols: 1})
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})

		t.Run(gen.Name()+"/single column stack", func(t *testing.T) {
			_, err := gen.Generate(Dimension{Levels: 3, Rows: 1, Cols: 1})
			assert.ErrorIs(t, err, ErrNoDistinctEndpoints)
		})
	}
}

func TestEndpointAttemptsExhausted(t *testing.T) {
	// A source that always yields zero keeps drawing the same cell. Every
	// bound drawn on a 1x1x2 grid is a power of two, so no draw rejects.
	stuck := rand.New(zeroSource{})
	_, err := NewKruskalCarve(WithRand(stuck), WithMaxEndpointAttempts(5)).Generate(Dimension{Levels: 1, Rows: 1, Cols: 2})
	assert.ErrorIs(t, err, ErrNoDistinctEndpoints)
}

type zeroSource struct{}

func (zeroSource) Uint64() uint64 { return 0 }

func TestGeneratorByName(t *testing.T) {
	for _, name := range GeneratorNames {
		gen, err := GeneratorByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, gen.Name())
	}

	_, err := GeneratorByName("prim")
	assert.ErrorIs(t, err, ErrUnknownGenerator)
}

func TestMeasure(t *testing.T) {
	dim := Dimension{Levels: 1, Rows: 3, Cols: 3}
	res, err := Measure(NewDirectCarve(), dim)
	require.NoError(t, err)
	assert.Equal(t, DirectCarveName, res.Generator)
	assert.NotNil(t, res.Maze)
	assert.True(t, strings.HasPrefix(res.String(), "The function generate in direct took "))

	_, err = Measure(NewDirectCarve(), Dimension{})
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestMeasurementString(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{12 * time.Millisecond, "The function generate in dfs took 12 ms."},
		{3*time.Second + 4*time.Millisecond, "The function generate in dfs took 3 seconds, 4 ms."},
		{2*time.Minute + 5*time.Second, "The function generate in dfs took 2 minutes, 5 seconds, 0 ms."},
		{time.Minute + 7*time.Millisecond, "The function generate in dfs took 1 minutes, 7 ms."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Measurement{Generator: "dfs", Elapsed: tt.elapsed}.String())
	}
}
