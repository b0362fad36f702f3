// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package flipbook records an interactive terminal program as a sequence
// of rendered text frames, for use as test fixtures that can be diffed by
// eye.
//
// [Record] starts the program on a pty of fixed geometry, feeds its
// output through a terminal emulator (lib/vterm) and asks a [Cadence]
// after every poll and every read whether the current screen should
// become a frame. The cadence rules keep fixtures stable across machines
// of different speed:
//
//   - at most one frame per interval (one second by default)
//   - no frame unless the screen changed since the previous frame
//   - an all-blank screen is never the first or the last frame, but a
//     blank screen between two others is kept, so intentional clears
//     show up in the fixture
//   - a session always has at least one frame: a program that prints
//     nothing produces a single blank frame
//
// Frames are written with [FrameWriter] in this form:
//
//	[90x20] Frame 1:
//	+------ ... ------+
//	|<row 1>          |
//	...
//	+------ ... ------+
//
// followed by a blank line. Reverse-video cells keep their SGR escapes;
// no other attribute is rendered.
//
// [Drain] is the headless counterpart: it runs a program on a pty and
// discards its output without rendering anything.
//
// The capture loop is single-threaded. Waiting on the pty is the only
// blocking step; reading, feeding, rendering and writing all complete
// before the next wait. Cancelling the context (SIGINT, SIGTERM in the
// binaries) ends the session the same way end of output does: the child
// is terminated and a final cadence check runs.
package flipbook
