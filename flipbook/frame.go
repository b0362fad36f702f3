// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flipbook

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Frame is one rendered terminal screen.
type Frame struct {
	// Number is 1 for the first frame of a session and increases by one
	// per emitted frame.
	Number int

	Columns int
	Lines   int

	// Rows holds one rendered string per terminal line, top to bottom.
	Rows []string
}

// Format returns the frame in its fixture form: a geometry and frame
// number header, the rows inside a box, and a trailing blank line.
//
//	[4x2] Frame 1:
//	+----+
//	|ab  |
//	|    |
//	+----+
func (f Frame) Format() string {
	var builder strings.Builder
	border := "+" + strings.Repeat("-", f.Columns) + "+\n"

	fmt.Fprintf(&builder, "[%dx%d] Frame %d:\n", f.Columns, f.Lines, f.Number)
	builder.WriteString(border)
	for _, row := range f.Rows {
		builder.WriteString("|")
		builder.WriteString(row)
		builder.WriteString("|\n")
	}
	builder.WriteString(border)
	builder.WriteString("\n")
	return builder.String()
}

// FrameWriter writes frames to an output and flushes after each one, so a
// fixture is complete up to the last frame even if the process is killed.
type FrameWriter struct {
	buffered *bufio.Writer
	flusher  interface{ Flush() error }
	count    int
}

// NewFrameWriter returns a FrameWriter on w. If w has a Flush() error
// method (a compressing writer, for example), it is called after every
// frame as well.
func NewFrameWriter(w io.Writer) *FrameWriter {
	writer := &FrameWriter{buffered: bufio.NewWriter(w)}
	if flusher, ok := w.(interface{ Flush() error }); ok {
		writer.flusher = flusher
	}
	return writer
}

// WriteFrame writes and flushes one frame.
func (w *FrameWriter) WriteFrame(frame Frame) error {
	if _, err := w.buffered.WriteString(frame.Format()); err != nil {
		return fmt.Errorf("write frame %d: %w", frame.Number, err)
	}
	if err := w.buffered.Flush(); err != nil {
		return fmt.Errorf("flush frame %d: %w", frame.Number, err)
	}
	if w.flusher != nil {
		if err := w.flusher.Flush(); err != nil {
			return fmt.Errorf("flush frame %d: %w", frame.Number, err)
		}
	}
	w.count++
	return nil
}

// Count returns the number of frames written.
func (w *FrameWriter) Count() int { return w.count }
