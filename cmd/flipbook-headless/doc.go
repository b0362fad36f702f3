// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Flipbook-headless runs a terminal program on a pty and discards its
// output, for smoke-testing that a program starts and exits on a real
// terminal without recording anything:
//
//	flipbook-headless [flags] <command> [args...]
//
// The program sees TERM=xterm-256color unless --term or the config file
// says otherwise. Without a command it exits 0 silently.
package main
