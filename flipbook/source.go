// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flipbook

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Source is the readable side of a capture: normally the pty master.
type Source interface {
	// Wait blocks until data is available or timeout elapses, and
	// reports whether a Read would not block. Hangup and error
	// conditions count as readable so that Read can report them.
	Wait(timeout time.Duration) (bool, error)

	// Read reads at most len(p) available bytes.
	Read(p []byte) (int, error)
}

// ptySource polls and reads a pty master.
type ptySource struct {
	master *os.File
	fd     int32
}

func newPTYSource(master *os.File) *ptySource {
	return &ptySource{master: master, fd: int32(master.Fd())}
}

func (s *ptySource) Wait(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: s.fd, Events: unix.POLLIN}}
	ready, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if err != nil {
		return false, err
	}
	return ready > 0, nil
}

func (s *ptySource) Read(p []byte) (int, error) {
	return s.master.Read(p)
}
