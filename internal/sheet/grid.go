// internal/sheet/grid.go

// Package sheet models the sparse spreadsheet grids that legacy joint
// definitions arrive in: addressed cells, grouped per column, plus the
// FreeCAD cells-XML reader that produces them.
package sheet

import (
	"sort"
	"strings"
)

// Cell is one non-empty spreadsheet cell.
type Cell struct {
	Address Address
	Content string
}

// Grid is a sparse spreadsheet: non-empty cells grouped per column in
// ascending row order. A Grid is immutable once built.
type Grid struct {
	cols   map[string][]Cell
	maxRow int
}

// NewGrid groups cells into a Grid. Blank cells are dropped; when the same
// address appears twice the later cell wins.
func NewGrid(cells []Cell) *Grid {
	byAddr := make(map[Address]string, len(cells))
	for _, c := range cells {
		if strings.TrimSpace(c.Content) == "" {
			continue
		}
		byAddr[c.Address] = c.Content
	}

	g := &Grid{cols: make(map[string][]Cell)}
	for addr, content := range byAddr {
		g.cols[addr.Column] = append(g.cols[addr.Column], Cell{Address: addr, Content: content})
		if addr.Row > g.maxRow {
			g.maxRow = addr.Row
		}
	}
	for col := range g.cols {
		cells := g.cols[col]
		sort.Slice(cells, func(i, j int) bool { return cells[i].Address.Row < cells[j].Address.Row })
	}
	return g
}

// Column returns the column's cells in ascending row order.
func (g *Grid) Column(name string) []Cell {
	return g.cols[name]
}

// ColumnRange returns the column's cells with lo <= row <= hi, ascending.
func (g *Grid) ColumnRange(name string, lo, hi int) []Cell {
	var out []Cell
	for _, c := range g.cols[name] {
		if c.Address.Row < lo {
			continue
		}
		if c.Address.Row > hi {
			break
		}
		out = append(out, c)
	}
	return out
}

// MaxRow returns the highest row holding any non-empty cell, 0 when the grid
// is empty.
func (g *Grid) MaxRow() int {
	return g.maxRow
}
