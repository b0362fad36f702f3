// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the flipbook
// binaries.
//
// The central type is [Command]: a single command with a [pflag.FlagSet]
// factory, help text with examples, and a Run function. [Command.Execute]
// parses flags up to the first positional argument, so everything after
// the program name is passed to the recorded program untouched, and
// formats usage errors with a suggestion when an unknown flag is close
// to a defined one (Levenshtein distance <= 3, see suggest.go).
//
// Usage errors are reported on the command's error output and returned
// as an [ExitError] with [ExitUsage], so main exits with status 2
// without printing the message twice. [NewCommandLogger] builds the slog
// logger every binary uses for diagnostics.
package cli
