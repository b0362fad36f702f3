// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os/exec"
	"testing"
)

// RequireProgram returns the absolute path of name on PATH. It skips the
// test under -short, since callers start real processes on a pty, and
// when name cannot be found.
func RequireProgram(t *testing.T, name string) string {
	t.Helper()
	if testing.Short() {
		t.Skipf("skipping %s child process test in short mode", name)
	}
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
	return path
}
