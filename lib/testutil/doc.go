// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for flipbook packages.
//
// [RequireReceive] encapsulates the timeout safety valve pattern (select
// with a time.After fallback) so that tests driving a real pty do not
// hang when a child process misbehaves. It is the only place in the test
// suite where a real wall-clock timeout is used; everything else runs on
// lib/clock's fake clock.
//
// [RequireProgram] resolves a program on PATH for tests that spawn real
// children, and skips the test when the program is unavailable or when
// running with -short.
//
// All helpers call t.Fatalf or t.Skipf rather than returning errors,
// since test setup failures are not recoverable.
package testutil
