package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/beka-birhanu/vinom-maze/infrastruture/encoding"
	"github.com/beka-birhanu/vinom-maze/infrastruture/kvstore"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/search"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	sync.Mutex
	infos, warnings, errors []string
}

func (l *recordingLogger) Info(msg string) {
	l.Lock()
	defer l.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.Lock()
	defer l.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.Lock()
	defer l.Unlock()
	l.errors = append(l.errors, msg)
}

func newTestService(t *testing.T, store i.SaveStore) (*MazeService, *Metrics, *recordingLogger) {
	t.Helper()
	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	log := &recordingLogger{}
	svc, err := NewMazeService(&Config{
		Store:            store,
		Encoder:          encoding.YAML{},
		Logger:           log,
		Metrics:          metrics,
		MaxSide:          8,
		GeneratorOptions: []maze.Option{maze.WithSeed(12)},
	})
	require.NoError(t, err)
	return svc, metrics, log
}

func TestMazeServiceFlow(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	svc, metrics, log := newTestService(t, store)

	dim := maze.Dimension{Levels: 2, Rows: 4, Cols: 4}
	id, generated, err := svc.Generate(ctx, maze.KruskalName, dim)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.generated.WithLabelValues(maze.KruskalName)))
	assert.NotEmpty(t, log.infos)

	t.Run("Stored under prefixed keys", func(t *testing.T) {
		_, err := store.Get(ctx, "vinom:maze:"+id.String())
		assert.NoError(t, err)
		_, err = store.Get(ctx, "vinom:maze:"+id.String()+":endpoints")
		assert.NoError(t, err)
	})

	t.Run("Load", func(t *testing.T) {
		loaded, err := svc.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, generated.Snapshot(), loaded.Snapshot())
		assert.Equal(t, generated.Endpoints(), loaded.Endpoints())
	})

	t.Run("Search", func(t *testing.T) {
		for _, name := range search.SearcherNames {
			res, err := svc.Search(ctx, id, name)
			require.NoError(t, err)
			assert.True(t, res.Found, name)
		}
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.searches.WithLabelValues(search.AStarName, "true")))
	})
}

func TestMazeServiceErrors(t *testing.T) {
	ctx := context.Background()
	svc, _, log := newTestService(t, kvstore.NewMemory())

	_, _, err := svc.Generate(ctx, maze.DFSCarveName, maze.Dimension{Levels: 1, Rows: 0, Cols: 2})
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)

	_, _, err = svc.Generate(ctx, maze.DFSCarveName, maze.Dimension{Levels: 1, Rows: 9, Cols: 2})
	assert.ErrorIs(t, err, ErrMazeTooLarge)

	_, _, err = svc.Generate(ctx, "prim", maze.Dimension{Levels: 1, Rows: 2, Cols: 2})
	assert.ErrorIs(t, err, maze.ErrUnknownGenerator)

	_, err = svc.Load(ctx, uuid.New())
	assert.ErrorIs(t, err, i.ErrNotFound)
	assert.Len(t, log.warnings, 1)

	_, err = svc.Search(ctx, uuid.New(), "greedy")
	assert.ErrorIs(t, err, search.ErrUnknownSearcher)
}

func TestNewMazeServiceRequiresDependencies(t *testing.T) {
	_, err := NewMazeService(nil)
	assert.Error(t, err)
	_, err = NewMazeService(&Config{Store: kvstore.NewMemory()})
	assert.Error(t, err)
}

func TestSaveLoadMaze(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	m, err := maze.NewDirectCarve(maze.WithSeed(2)).Generate(maze.Dimension{Levels: 3, Rows: 2, Cols: 5})
	require.NoError(t, err)

	for _, enc := range []i.Encoder{encoding.JSON{}, encoding.YAML{}} {
		t.Run(enc.Name(), func(t *testing.T) {
			key := "test:" + enc.Name()
			require.NoError(t, SaveMaze(ctx, store, enc, key, m))
			loaded, err := LoadMaze(ctx, store, enc, key)
			require.NoError(t, err)
			assert.Equal(t, m.String(), loaded.String())
		})
	}

	t.Run("Missing endpoints", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "partial", []byte(`{"dimension":{"levels":1,"rows":1,"cols":2},"cells":[]}`)))
		_, err := LoadMaze(ctx, store, encoding.JSON{}, "partial")
		assert.ErrorIs(t, err, i.ErrNotFound)
	})

	t.Run("Corrupt snapshot", func(t *testing.T) {
		s := m.Snapshot()
		s.Cells[0].Right = !s.Cells[0].Right
		data, _ := encoding.JSON{}.Marshal(s)
		require.NoError(t, store.Put(ctx, "corrupt", data))
		data, _ = encoding.JSON{}.Marshal(m.Endpoints())
		require.NoError(t, store.Put(ctx, "corrupt:endpoints", data))

		_, err := LoadMaze(ctx, store, encoding.JSON{}, "corrupt")
		assert.ErrorIs(t, err, maze.ErrCorruptConnectivity)
	})
}

func TestMazeServiceGeneratorOptions(t *testing.T) {
	ctx := context.Background()
	dim := maze.Dimension{Levels: 1, Rows: 5, Cols: 5}

	t.Run("Seed repeats the same maze", func(t *testing.T) {
		svc, _, _ := newTestService(t, kvstore.NewMemory())
		_, a, err := svc.Generate(ctx, maze.KruskalName, dim)
		require.NoError(t, err)
		_, b, err := svc.Generate(ctx, maze.KruskalName, dim)
		require.NoError(t, err)
		assert.Equal(t, a.Snapshot(), b.Snapshot())
	})

	t.Run("Shared rand across concurrent requests", func(t *testing.T) {
		svc, err := NewMazeService(&Config{
			Store:            kvstore.NewMemory(),
			Encoder:          encoding.JSON{},
			Logger:           &recordingLogger{},
			GeneratorOptions: []maze.Option{maze.WithRand(rand.New(rand.NewPCG(1, 2)))},
		})
		require.NoError(t, err)

		const workers = 16
		ids := make([]uuid.UUID, workers)
		errs := make([]error, workers)
		var wg sync.WaitGroup
		for w := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ids[w], _, errs[w] = svc.Generate(ctx, maze.DFSCarveName, dim)
			}()
		}
		wg.Wait()

		seen := map[uuid.UUID]bool{}
		for w := range workers {
			require.NoError(t, errs[w])
			seen[ids[w]] = true
			_, err := svc.Load(ctx, ids[w])
			assert.NoError(t, err)
		}
		assert.Len(t, seen, workers)
	})
}
