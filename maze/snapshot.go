package maze

import (
	"fmt"
)

// CellRecord is one cell of a Snapshot: its coordinates and which of its
// walls are open.
type CellRecord struct {
	Level    int  `json:"level" yaml:"level" bson:"level"`
	Row      int  `json:"row" yaml:"row" bson:"row"`
	Col      int  `json:"col" yaml:"col" bson:"col"`
	Left     bool `json:"left" yaml:"left" bson:"left"`
	Right    bool `json:"right" yaml:"right" bson:"right"`
	Forward  bool `json:"forward" yaml:"forward" bson:"forward"`
	Backward bool `json:"backward" yaml:"backward" bson:"backward"`
	Up       bool `json:"up" yaml:"up" bson:"up"`
	Down     bool `json:"down" yaml:"down" bson:"down"`
}

func (c CellRecord) position() Position {
	return Position{Level: c.Level, Row: c.Row, Col: c.Col}
}

func (c CellRecord) openness() Openness {
	return Openness{
		Left:     passageOf(c.Left),
		Right:    passageOf(c.Right),
		Forward:  passageOf(c.Forward),
		Backward: passageOf(c.Backward),
		Up:       passageOf(c.Up),
		Down:     passageOf(c.Down),
	}
}

// Snapshot is the flattened, persistable form of a maze's connectivity.
type Snapshot struct {
	Dimension Dimension    `json:"dimension" yaml:"dimension" bson:"dimension"`
	Cells     []CellRecord `json:"cells" yaml:"cells" bson:"cells"`
}

// Endpoints holds the Start and Goal coordinates, persisted next to a
// Snapshot.
type Endpoints struct {
	Start Position `json:"start" yaml:"start" bson:"start"`
	Goal  Position `json:"goal" yaml:"goal" bson:"goal"`
}

// Snapshot flattens m in scan order.
func (m *Maze) Snapshot() Snapshot {
	s := Snapshot{Dimension: m.dim, Cells: make([]CellRecord, 0, m.dim.Cells())}
	m.each(func(p Position) {
		o := m.RecordAt(p)
		s.Cells = append(s.Cells, CellRecord{
			Level:    p.Level,
			Row:      p.Row,
			Col:      p.Col,
			Left:     o.IsOpen(Left),
			Right:    o.IsOpen(Right),
			Forward:  o.IsOpen(Forward),
			Backward: o.IsOpen(Backward),
			Up:       o.IsOpen(Up),
			Down:     o.IsOpen(Down),
		})
	})
	return s
}

// Endpoints returns the Start and Goal coordinates of m.
func (m *Maze) Endpoints() Endpoints {
	return Endpoints{Start: m.start, Goal: m.goal}
}

// Restore rebuilds a maze from a snapshot and its endpoints. Every cell must
// appear exactly once and the restored maze must pass Verify.
func Restore(s Snapshot, e Endpoints) (*Maze, error) {
	if err := s.Dimension.Validate(); err != nil {
		return nil, err
	}
	if len(s.Cells) != s.Dimension.Cells() {
		return nil, fmt.Errorf("%w: %d cell records for a %s grid", ErrCorruptConnectivity, len(s.Cells), s.Dimension)
	}

	m := newMaze(s.Dimension)
	seen := make([]bool, s.Dimension.Cells())
	for _, c := range s.Cells {
		p := c.position()
		if !m.InBound(p) {
			return nil, fmt.Errorf("%w: cell %s outside %s", ErrCorruptConnectivity, p, s.Dimension)
		}
		idx := s.Dimension.index(p)
		if seen[idx] {
			return nil, fmt.Errorf("%w: duplicate cell %s", ErrCorruptConnectivity, p)
		}
		seen[idx] = true
		m.store.Set(m.CellAt(p), c.openness())
	}

	if err := m.placeEndpoints(e.Start, e.Goal); err != nil {
		return nil, err
	}
	if err := m.Verify(); err != nil {
		return nil, err
	}
	return m, nil
}
