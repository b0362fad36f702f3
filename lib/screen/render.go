// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package screen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SGR tokens wrapped around reverse-video cells.
const (
	sgrReset   = "\x1b[0m"
	sgrReverse = "\x1b[7m"
)

// WidthViolation is the panic value raised when a cell holds continuation
// runes that occupy columns. Such a cell cannot be serialized without
// shifting every following column of the row.
type WidthViolation struct {
	Row    int
	Column int
	Char   string
}

func (v *WidthViolation) Error() string {
	return fmt.Sprintf("screen: cell (%d, %d) %q has continuation runes with nonzero width", v.Row, v.Column, v.Char)
}

// RenderCell returns the text token for one cell.
func RenderCell(cell Cell) string {
	if !cell.Reverse {
		return cell.Char
	}
	return sgrReset + sgrReverse + cell.Char + sgrReset
}

// Renderer serializes grids using a fixed width oracle.
type Renderer struct {
	width WidthFunc
}

// NewRenderer returns a Renderer using width. A nil width selects
// [DefaultWidth].
func NewRenderer(width WidthFunc) *Renderer {
	if width == nil {
		width = DefaultWidth
	}
	return &Renderer{width: width}
}

// RenderRow renders the cells of one row left to right. The cell after a
// double-width glyph is its stub and produces no output.
func (r *Renderer) RenderRow(row []Cell) string {
	return r.renderRow(-1, row)
}

// RenderGrid renders every row of grid, top to bottom. The result has
// grid.Lines entries.
func (r *Renderer) RenderGrid(grid *Grid) []string {
	rows := make([]string, grid.Lines)
	for line := range grid.Lines {
		rows[line] = r.renderRow(line, grid.Row(line))
	}
	return rows
}

func (r *Renderer) renderRow(line int, row []Cell) string {
	var builder strings.Builder
	skipNext := false
	for column, cell := range row {
		if skipNext {
			skipNext = false
			continue
		}
		first, size := utf8.DecodeRuneInString(cell.Char)
		if size > 0 && r.continuationWidth(cell.Char[size:]) != 0 {
			panic(&WidthViolation{Row: line, Column: column, Char: cell.Char})
		}
		skipNext = size > 0 && r.width(first) == 2
		builder.WriteString(RenderCell(cell))
	}
	return builder.String()
}

func (r *Renderer) continuationWidth(rest string) int {
	total := 0
	for _, continuation := range rest {
		total += r.width(continuation)
	}
	return total
}

// IsBlank reports whether rendered rows contain nothing but whitespace.
// An empty rendering is not blank. Reverse-video cells are never blank
// because their SGR tokens are not whitespace. Besides unicode.IsSpace,
// the information separators U+001C..U+001F count as whitespace.
func IsBlank(rows []string) bool {
	empty := true
	for _, row := range rows {
		for _, r := range row {
			if !isSpace(r) {
				return false
			}
			empty = false
		}
	}
	return !empty
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
