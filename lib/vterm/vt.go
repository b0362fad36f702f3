// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package vterm

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/hinshun/vt10x"

	"github.com/bureau-foundation/flipbook/lib/screen"
)

// glyphReverse is vt10x's reverse-video bit in Glyph.Mode.
const glyphReverse = 1

// maxPending caps the bytes held back while waiting for the rest of an
// escape sequence. An unterminated string sequence (OSC, DCS) larger than
// this is passed through as-is so output never stalls.
const maxPending = 4096

// stubFill is printed into the column after a double-width glyph. The
// renderer never shows that column, but printing (rather than moving the
// cursor) lets vt10x apply its own wrap rules at the right margin.
var stubFill = []byte(" ")

// wrapLine moves a double-width glyph that would start in the last column
// to the start of the next line, scrolling if needed.
var wrapLine = []byte("\r\n")

// VT is an [Emulator] backed by vt10x.
//
// vt10x stores one rune per cell and advances the cursor by one column
// for every printed rune, while a real terminal advances by the glyph's
// display width. To keep the grid aligned with what the child program
// intended, VT splits the stream into escape sequences and printable text
// (charmbracelet/x/ansi), and for printable text:
//
//   - after a rune of width 2 it prints a blank into the following
//     column, the stub that screen.Renderer skips; a width-2 rune that
//     would start in the last column is moved to the next line first,
//     as a real terminal wraps it
//   - runes of width 0 are not written, because vt10x would give them a
//     column of their own
//
// The width function must be the one the renderer uses.
type VT struct {
	terminal vt10x.Terminal
	columns  int
	lines    int
	width    screen.WidthFunc

	pending []byte
	current *screen.Grid
	dirty   bool
}

// New returns a VT of the given fixed geometry. A nil width selects
// screen.DefaultWidth.
func New(columns, lines int, width screen.WidthFunc) *VT {
	if width == nil {
		width = screen.DefaultWidth
	}
	vt := &VT{
		terminal: vt10x.New(vt10x.WithSize(columns, lines)),
		columns:  columns,
		lines:    lines,
		width:    width,
	}
	vt.current = vt.capture()
	return vt
}

// Feed writes data to the emulator and marks the grid dirty when any
// cell changed.
func (vt *VT) Feed(data []byte) error {
	if err := vt.align(data); err != nil {
		return err
	}
	next := vt.capture()
	if !next.Equal(vt.current) {
		vt.dirty = true
	}
	vt.current = next
	return nil
}

// Snapshot returns the grid as of the last Feed.
func (vt *VT) Snapshot() *screen.Grid { return vt.current }

// Dirty reports whether the grid changed since the last ClearDirty.
func (vt *VT) Dirty() bool { return vt.dirty }

// ClearDirty resets the dirty flag.
func (vt *VT) ClearDirty() { vt.dirty = false }

// capture copies the vt10x cells into a new grid.
func (vt *VT) capture() *screen.Grid {
	grid := screen.NewGrid(vt.columns, vt.lines)

	vt.terminal.Lock()
	defer vt.terminal.Unlock()

	for row := range vt.lines {
		for column := range vt.columns {
			glyph := vt.terminal.Cell(column, row)
			char := glyph.Char
			if char == 0 {
				char = ' '
			}
			grid.Set(row, column, screen.Cell{
				Char:    string(char),
				Reverse: glyph.Mode&glyphReverse != 0,
			})
		}
	}
	return grid
}

// align rewrites data for vt10x as described on VT and writes it to the
// terminal. Bytes that end in the middle of an escape sequence or a UTF-8
// encoding are held back until the next call.
func (vt *VT) align(data []byte) error {
	buffer := make([]byte, 0, len(vt.pending)+len(data))
	buffer = append(buffer, vt.pending...)
	buffer = append(buffer, data...)
	vt.pending = nil

	if tail := incompleteRune(buffer); tail > 0 {
		vt.pending = append(vt.pending, buffer[len(buffer)-tail:]...)
		buffer = buffer[:len(buffer)-tail]
	}

	out := make([]byte, 0, len(buffer)+len(stubFill))
	for len(buffer) > 0 {
		sequence, _, consumed, state := ansi.DecodeSequence(buffer, ansi.NormalState, nil)
		if consumed <= 0 {
			out = append(out, buffer...)
			break
		}
		if consumed == len(buffer) && state != ansi.NormalState && len(buffer)+len(vt.pending) <= maxPending {
			vt.pending = append(append([]byte{}, buffer...), vt.pending...)
			break
		}
		var err error
		if out, err = vt.appendSequence(out, sequence); err != nil {
			return err
		}
		buffer = buffer[consumed:]
	}
	return vt.write(out)
}

// appendSequence copies one decoded sequence to out, adjusting printable
// text for vt10x. Before a double-width rune it writes out to the
// terminal so the cursor column is known. It returns the bytes still to
// be written.
func (vt *VT) appendSequence(out, sequence []byte) ([]byte, error) {
	if !printable(sequence) {
		return append(out, sequence...), nil
	}
	for len(sequence) > 0 {
		r, size := utf8.DecodeRune(sequence)
		if r == utf8.RuneError && size <= 1 {
			out = append(out, sequence[:size]...)
			sequence = sequence[size:]
			continue
		}
		switch width := vt.width(r); {
		case width == 0:
		case width == 2 && vt.columns >= 2:
			if err := vt.write(out); err != nil {
				return nil, err
			}
			out = out[:0]
			if vt.cursorColumn() >= vt.columns-1 {
				out = append(out, wrapLine...)
			}
			out = append(out, sequence[:size]...)
			out = append(out, stubFill...)
		default:
			out = append(out, sequence[:size]...)
		}
		sequence = sequence[size:]
	}
	return out, nil
}

// write hands aligned bytes to vt10x.
func (vt *VT) write(aligned []byte) error {
	if len(aligned) == 0 {
		return nil
	}
	if _, err := vt.terminal.Write(aligned); err != nil {
		return fmt.Errorf("write to terminal emulator: %w", err)
	}
	return nil
}

// cursorColumn returns the vt10x cursor column. With a wrap pending after
// a print into the last column the cursor still reports that column.
func (vt *VT) cursorColumn() int {
	vt.terminal.Lock()
	defer vt.terminal.Unlock()
	return vt.terminal.Cursor().X
}

// printable reports whether a decoded sequence is text rather than a
// control character or escape sequence.
func printable(sequence []byte) bool {
	first := sequence[0]
	if first < 0x20 || first == 0x7f {
		return false
	}
	if first < utf8.RuneSelf {
		return true
	}
	r, _ := utf8.DecodeRune(sequence)
	return r < 0x80 || r > 0x9f
}

// incompleteRune returns the length of a truncated UTF-8 encoding at the
// end of b, or 0.
func incompleteRune(b []byte) int {
	for back := 1; back < utf8.UTFMax && back <= len(b); back++ {
		start := len(b) - back
		if !utf8.RuneStart(b[start]) {
			continue
		}
		if b[start] >= utf8.RuneSelf && !utf8.FullRune(b[start:]) {
			return back
		}
		return 0
	}
	return 0
}
