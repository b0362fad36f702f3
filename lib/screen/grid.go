// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package screen

import "fmt"

// Cell is one character position in a terminal grid.
type Cell struct {
	// Char is a single Unicode scalar optionally followed by zero-width
	// combining runes. Empty for the stub that follows a double-width
	// glyph.
	Char string

	// Reverse is the reverse-video display attribute.
	Reverse bool
}

// Blank is the content of an untouched cell.
var Blank = Cell{Char: " "}

// Grid is a snapshot of a terminal screen. Cells are stored row-major.
// A Grid handed out by an emulator is never modified afterwards.
type Grid struct {
	Columns int
	Lines   int
	cells   []Cell
}

// NewGrid returns a grid of the given geometry filled with [Blank] cells.
func NewGrid(columns, lines int) *Grid {
	if columns < 0 || lines < 0 {
		panic(fmt.Sprintf("screen: invalid geometry %dx%d", columns, lines))
	}
	cells := make([]Cell, columns*lines)
	for i := range cells {
		cells[i] = Blank
	}
	return &Grid{Columns: columns, Lines: lines, cells: cells}
}

// GridFromLines builds a grid from plain text, one string per row. Each
// rune occupies one cell; rows shorter than columns are padded with
// blanks and longer rows are truncated. Missing rows are blank.
func GridFromLines(columns, lines int, rows ...string) *Grid {
	grid := NewGrid(columns, lines)
	for row, text := range rows {
		if row >= lines {
			break
		}
		column := 0
		for _, r := range text {
			if column >= columns {
				break
			}
			grid.Set(row, column, Cell{Char: string(r)})
			column++
		}
	}
	return grid
}

// Cell returns the cell at (row, column).
func (g *Grid) Cell(row, column int) Cell {
	return g.cells[g.index(row, column)]
}

// Set stores a cell at (row, column). Only the producer of a grid calls
// Set, before the grid is published.
func (g *Grid) Set(row, column int, cell Cell) {
	g.cells[g.index(row, column)] = cell
}

// Row returns the cells of one row. The returned slice aliases the grid
// and must not be modified.
func (g *Grid) Row(row int) []Cell {
	start := g.index(row, 0)
	return g.cells[start : start+g.Columns]
}

// Equal reports whether two grids have the same geometry and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Columns != other.Columns || g.Lines != other.Lines {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid) index(row, column int) int {
	if row < 0 || row >= g.Lines || column < 0 || column >= g.Columns {
		panic(fmt.Sprintf("screen: cell (%d, %d) outside %dx%d grid", row, column, g.Columns, g.Lines))
	}
	return row*g.Columns + column
}
