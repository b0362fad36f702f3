// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package vterm adapts a terminal emulation engine to the small capability
// surface flipbook needs: feed raw pty output in, read an immutable grid
// snapshot out, and track whether anything visible changed.
//
// The emulation itself (escape sequence parsing, cursor movement,
// scrolling, attribute tracking) is delegated to github.com/hinshun/vt10x.
// The adapter only reconciles vt10x's one-rune-per-column model with the
// double-width glyph convention used by lib/screen; see [VT].
package vterm

import "github.com/bureau-foundation/flipbook/lib/screen"

// Emulator is a terminal engine that maintains a grid of cells from a raw
// byte stream.
type Emulator interface {
	// Feed processes output read from the pty. Sequences split across
	// Feed calls are handled.
	Feed(data []byte) error

	// Snapshot returns the current grid. The returned grid is not
	// modified by later Feed calls.
	Snapshot() *screen.Grid

	// Dirty reports whether at least one cell changed since the last
	// ClearDirty (or since construction).
	Dirty() bool

	// ClearDirty resets the dirty flag.
	ClearDirty()
}
