// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package screen

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderCell(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{name: "plain", cell: Cell{Char: "a"}, want: "a"},
		{name: "blank", cell: Blank, want: " "},
		{name: "reverse", cell: Cell{Char: "a", Reverse: true}, want: "\x1b[0m\x1b[7ma\x1b[0m"},
		{name: "reverse blank", cell: Cell{Char: " ", Reverse: true}, want: "\x1b[0m\x1b[7m \x1b[0m"},
		{name: "combining", cell: Cell{Char: "e\u0301"}, want: "e\u0301"},
		{name: "stub", cell: Cell{}, want: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := RenderCell(test.cell); got != test.want {
				t.Errorf("RenderCell(%+v) = %q, want %q", test.cell, got, test.want)
			}
		})
	}
}

func TestRenderRowSkipsWideGlyphStub(t *testing.T) {
	const columns = 10
	grid := NewGrid(columns, 1)
	grid.Set(0, 0, Cell{Char: "中"})
	grid.Set(0, 1, Cell{Char: "X"}) // stub content is never rendered
	for column := 2; column < columns; column++ {
		grid.Set(0, column, Cell{Char: "a"})
	}

	row := NewRenderer(nil).RenderRow(grid.Row(0))

	if tokens := utf8.RuneCountInString(row); tokens != columns-1 {
		t.Fatalf("token count = %d, want %d (row %q)", tokens, columns-1, row)
	}
	if want := "中" + strings.Repeat("a", columns-2); row != want {
		t.Fatalf("RenderRow = %q, want %q", row, want)
	}
}

func TestRenderRowWideGlyphsBackToBack(t *testing.T) {
	grid := GridFromLines(6, 1, "中.文.ab")
	// GridFromLines stores one rune per cell, so the "." cells play the
	// role of stubs.
	got := NewRenderer(nil).RenderRow(grid.Row(0))
	if want := "中文ab"; got != want {
		t.Fatalf("RenderRow = %q, want %q", got, want)
	}
}

func TestRenderRowWideGlyphInLastColumn(t *testing.T) {
	grid := GridFromLines(3, 1, "ab中")
	got := NewRenderer(nil).RenderRow(grid.Row(0))
	if want := "ab中"; got != want {
		t.Fatalf("RenderRow = %q, want %q", got, want)
	}
}

func TestRenderRowReverseWideGlyph(t *testing.T) {
	grid := NewGrid(3, 1)
	grid.Set(0, 0, Cell{Char: "中", Reverse: true})
	grid.Set(0, 1, Cell{Reverse: true})
	got := NewRenderer(nil).RenderRow(grid.Row(0))
	if want := "\x1b[0m\x1b[7m中\x1b[0m "; got != want {
		t.Fatalf("RenderRow = %q, want %q", got, want)
	}
}

func TestRenderRowUsesInjectedWidth(t *testing.T) {
	// Treat 'W' as double width to show the renderer consults the
	// oracle rather than any built-in table.
	width := func(r rune) int {
		if r == 'W' {
			return 2
		}
		return 1
	}
	grid := GridFromLines(4, 1, "WxWy")
	got := NewRenderer(width).RenderRow(grid.Row(0))
	if want := "WW"; got != want {
		t.Fatalf("RenderRow = %q, want %q", got, want)
	}
}

func TestRenderRowCombiningMarks(t *testing.T) {
	grid := NewGrid(3, 1)
	grid.Set(0, 0, Cell{Char: "e\u0301"})
	got := NewRenderer(nil).RenderRow(grid.Row(0))
	if want := "e\u0301  "; got != want {
		t.Fatalf("RenderRow = %q, want %q", got, want)
	}
}

func TestRenderGridWidthViolationPanics(t *testing.T) {
	grid := NewGrid(4, 2)
	grid.Set(1, 2, Cell{Char: "a中"})

	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatal("RenderGrid did not panic on a cell with a wide continuation rune")
		}
		err, ok := recovered.(error)
		if !ok {
			t.Fatalf("panic value %T is not an error", recovered)
		}
		var violation *WidthViolation
		if !errors.As(err, &violation) {
			t.Fatalf("panic value %v is not a *WidthViolation", err)
		}
		if violation.Row != 1 || violation.Column != 2 {
			t.Errorf("violation at (%d, %d), want (1, 2)", violation.Row, violation.Column)
		}
	}()
	NewRenderer(nil).RenderGrid(grid)
}

func TestRenderGrid(t *testing.T) {
	grid := GridFromLines(5, 3, "hello", "", "ab")
	grid.Set(1, 4, Cell{Char: "!", Reverse: true})

	rows := NewRenderer(nil).RenderGrid(grid)

	want := []string{
		"hello",
		"    \x1b[0m\x1b[7m!\x1b[0m",
		"ab   ",
	}
	if len(rows) != len(want) {
		t.Fatalf("RenderGrid returned %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{name: "spaces", rows: []string{"   ", "   "}, want: true},
		{name: "text", rows: []string{"   ", " x "}, want: false},
		{name: "reverse space", rows: []string{"\x1b[0m\x1b[7m \x1b[0m"}, want: false},
		{name: "no rows", rows: nil, want: false},
		{name: "empty rows", rows: []string{"", ""}, want: false},
		{name: "tabs and spaces", rows: []string{"\t ", " "}, want: true},
		{name: "information separators", rows: []string{" \x1c\x1d", "\x1e\x1f "}, want: true},
		{name: "other control character", rows: []string{" \x1b "}, want: false},
		{name: "no-break space", rows: []string{"\u00a0 "}, want: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsBlank(test.rows); got != test.want {
				t.Errorf("IsBlank(%q) = %v, want %v", test.rows, got, test.want)
			}
		})
	}
}

func TestRenderBlankGridIsBlank(t *testing.T) {
	rows := NewRenderer(nil).RenderGrid(NewGrid(90, 20))
	if !IsBlank(rows) {
		t.Fatal("rendered blank grid is not blank")
	}
	for i, row := range rows {
		if row != strings.Repeat(" ", 90) {
			t.Fatalf("row %d = %q, want 90 spaces", i, row)
		}
	}
}
