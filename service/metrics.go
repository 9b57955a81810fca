package service

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors of the maze service.
type Metrics struct {
	generationSeconds *prometheus.HistogramVec
	generated         *prometheus.CounterVec
	searchVisited     *prometheus.HistogramVec
	searches          *prometheus.CounterVec
}

// NewMetrics creates the service collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		generationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "maze_generation_seconds",
				Help:    "Duration of maze generation",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algorithm"},
		),
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "maze_generated_total",
				Help: "Total number of generated mazes",
			},
			[]string{"algorithm"},
		),
		searchVisited: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "maze_search_visited",
				Help:    "Cells visited per search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"algorithm"},
		),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "maze_search_total",
				Help: "Total number of searches",
			},
			[]string{"algorithm", "found"},
		),
	}

	for _, c := range []prometheus.Collector{m.generationSeconds, m.generated, m.searchVisited, m.searches} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeGeneration(algorithm string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.generationSeconds.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	m.generated.WithLabelValues(algorithm).Inc()
}

func (m *Metrics) observeSearch(algorithm string, found bool, visited int) {
	if m == nil {
		return
	}
	m.searchVisited.WithLabelValues(algorithm).Observe(float64(visited))
	m.searches.WithLabelValues(algorithm, strconv.FormatBool(found)).Inc()
}
