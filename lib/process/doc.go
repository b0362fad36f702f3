// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers for the flipbook
// binaries. These functions centralize the raw I/O that happens after
// the structured logger is gone: reporting the error returned from
// run() and choosing the process exit status.
//
// Exit status follows the error:
//
//   - nil: 0
//   - an error with an ExitCode() int method (cli.ExitError): that code,
//     with no message, since the command already reported it
//   - any other error: "error: <err>" on stderr and status 1
package process
