package maze

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// RenderOptions controls terminal output of Render.
type RenderOptions struct {
	// Profile is the color profile of the target terminal. Only consulted
	// when Color is set.
	Profile termenv.Profile
	// Color enables coloring of the Start and Goal glyphs.
	Color bool
	// StartColor and GoalColor are hex or ANSI color codes.
	StartColor string
	GoalColor  string
}

const (
	defaultStartColor = "#22c55e"
	defaultGoalColor  = "#ef4444"
)

// String renders every level of the maze as plain text.
func (m *Maze) String() string {
	return Render(m, RenderOptions{})
}

// Render draws m level by level. Each cell shows S or G for the endpoints,
// an arrow for vertical passages and a space otherwise, followed by its
// right wall. Lines between rows show the backward walls.
func Render(m *Maze, opts RenderOptions) string {
	glyph := func(s string, _ CellID) string { return s }
	if opts.Color {
		startColor := opts.Profile.Color(orDefault(opts.StartColor, defaultStartColor))
		goalColor := opts.Profile.Color(orDefault(opts.GoalColor, defaultGoalColor))
		glyph = func(s string, id CellID) string {
			switch id {
			case Start:
				return termenv.String(s).Foreground(startColor).Bold().String()
			case Goal:
				return termenv.String(s).Foreground(goalColor).Bold().String()
			}
			return s
		}
	}

	header := strings.Repeat("_", m.dim.Cols*2+1)
	footer := strings.Repeat("¯", m.dim.Cols*2+1)

	var b strings.Builder
	for l := 0; l < m.dim.Levels; l++ {
		b.WriteString("Level ")
		b.WriteString(strconv.Itoa(l))
		b.WriteString("\n\n")
		b.WriteString(header)
		b.WriteByte('\n')
		for r := 0; r < m.dim.Rows; r++ {
			cells := []string{"|"}
			spacing := []string{"|"}
			for c := 0; c < m.dim.Cols; c++ {
				p := Position{Level: l, Row: r, Col: c}
				id := m.CellAt(p)
				o := m.RecordAt(p)

				cells = append(cells, glyph(cellGlyph(id, o), id))
				if o.IsOpen(Right) {
					cells = append(cells, " ")
				} else {
					cells = append(cells, "|")
				}

				if o.IsOpen(Backward) {
					spacing = append(spacing, " ")
				} else {
					spacing = append(spacing, "-")
				}
				if c == m.dim.Cols-1 {
					spacing = append(spacing, "|")
				} else {
					spacing = append(spacing, "+")
				}
			}
			b.WriteString(strings.Join(cells, ""))
			b.WriteByte('\n')
			if r != m.dim.Rows-1 {
				b.WriteString(strings.Join(spacing, ""))
				b.WriteByte('\n')
			}
		}
		b.WriteString(footer)
		b.WriteByte('\n')
	}
	return b.String()
}

func cellGlyph(id CellID, o Openness) string {
	switch {
	case id.Reserved():
		return id.String()
	case o.IsOpen(Up) && o.IsOpen(Down):
		return "↕"
	case o.IsOpen(Up):
		return "↑"
	case o.IsOpen(Down):
		return "↓"
	}
	return " "
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
