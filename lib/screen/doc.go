// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package screen holds the terminal grid data model and its text
// rendering.
//
// A [Grid] is an immutable snapshot of Columns x Lines [Cell] values
// produced by a terminal emulator. [Renderer] turns a grid into one
// string per row:
//
//   - ordinary cells render as their character
//   - reverse-video cells are wrapped as ESC[0m ESC[7m <char> ESC[0m
//   - the stub cell following a double-width glyph renders as nothing
//
// Glyph widths come from a [WidthFunc]. [DefaultWidth] memoizes
// go-runewidth lookups. The width function must be consistent across
// calls: the renderer decides which column is a stub from the width of
// the glyph before it, and the emulator adapter in lib/vterm uses the
// same function to place those stubs.
//
// A cell whose continuation runes (after the first) have nonzero total
// width cannot be serialized safely. The renderer panics with a
// [*WidthViolation] in that case rather than producing a row of the wrong
// width.
package screen
