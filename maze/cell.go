package maze

import "strconv"

// CellID is an opaque handle for a cell. Regular cells are numbered by their
// arena index; Start and Goal are reserved handles.
type CellID int

const (
	// Start marks the cell a walker enters the maze from.
	Start CellID = -1 - iota
	// Goal marks the cell a walker must reach.
	Goal
)

// Reserved reports whether id is the Start or Goal handle.
func (id CellID) Reserved() bool {
	return id == Start || id == Goal
}

func (id CellID) String() string {
	switch id {
	case Start:
		return "S"
	case Goal:
		return "G"
	}
	return strconv.Itoa(int(id))
}

// Passage is the state of one wall of a cell.
type Passage uint8

const (
	// Unset is only legal while a generator is still running.
	Unset Passage = iota
	Closed
	Open
)

func (p Passage) String() string {
	switch p {
	case Closed:
		return "closed"
	case Open:
		return "open"
	}
	return "unset"
}

// Openness records, for each direction, whether movement out of a cell is
// unobstructed.
type Openness [NumDirections]Passage

// IsOpen reports whether the passage in direction d is open.
func (o Openness) IsOpen(d Direction) bool {
	return o[d] == Open
}

// Complete reports whether every passage has been decided.
func (o Openness) Complete() bool {
	for _, p := range o {
		if p == Unset {
			return false
		}
	}
	return true
}

// OpenCount returns the number of open passages.
func (o Openness) OpenCount() int {
	n := 0
	for _, p := range o {
		if p == Open {
			n++
		}
	}
	return n
}

// passageOf converts a flag to a decided passage.
func passageOf(open bool) Passage {
	if open {
		return Open
	}
	return Closed
}

// Store maps cell identities to their Openness records. It performs no
// validation; callers keep the reciprocity and boundary invariants.
type Store struct {
	records map[CellID]Openness
}

// NewStore returns an empty store sized for n cells.
func NewStore(n int) *Store {
	return &Store{records: make(map[CellID]Openness, n)}
}

// Get returns the record for id.
func (s *Store) Get(id CellID) (Openness, bool) {
	o, ok := s.records[id]
	return o, ok
}

// Set replaces the record for id.
func (s *Store) Set(id CellID, o Openness) {
	s.records[id] = o
}

// Delete removes the record for id.
func (s *Store) Delete(id CellID) {
	delete(s.records, id)
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// setPassage updates a single passage of id's record.
func (s *Store) setPassage(id CellID, d Direction, p Passage) {
	o := s.records[id]
	o[d] = p
	s.records[id] = o
}

// Relabel moves the record stored under from to the key to.
func (s *Store) Relabel(from, to CellID) {
	o, ok := s.records[from]
	if !ok {
		return
	}
	s.Delete(from)
	s.Set(to, o)
}
