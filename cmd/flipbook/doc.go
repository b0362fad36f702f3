// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Flipbook runs a terminal program on a fixed-size pty and writes what
// its screen shows as a sequence of text frames, at most one per second,
// for use as diffable test fixtures:
//
//	flipbook [flags] <command> [args...]
//
// Flags end at the first positional argument, so the recorded program's
// own flags pass through untouched. Without a command, flipbook prints
// usage and exits with status 2.
//
// Settings come from, in increasing precedence: built-in defaults (90x20,
// TERM=linux), the YAML file named by --config or FLIPBOOK_CONFIG, and
// flags given on the command line.
package main
