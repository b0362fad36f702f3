// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flipbook

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"

	"github.com/bureau-foundation/flipbook/lib/clock"
)

// child is a process attached to the slave side of a pty.
type child struct {
	command *exec.Cmd
	master  *os.File
	clock   clock.Clock
	grace   time.Duration
	logger  *slog.Logger

	terminated bool
}

// startChild runs argv on a new pty of the given geometry. environment
// replaces the child's environment entirely.
func startChild(argv []string, columns, lines int, environment []string, clk clock.Clock, grace time.Duration, logger *slog.Logger) (*child, error) {
	command := exec.Command(argv[0], argv[1:]...)
	command.Env = environment

	master, err := pty.StartWithSize(command, &pty.Winsize{
		Cols: uint16(columns),
		Rows: uint16(lines),
	})
	if err != nil {
		return nil, fmt.Errorf("start %s on a pty: %w", argv[0], err)
	}
	return &child{
		command: command,
		master:  master,
		clock:   clk,
		grace:   grace,
		logger:  logger,
	}, nil
}

// terminate sends SIGTERM and reaps the child, escalating to SIGKILL
// after the grace period. Safe to call more than once.
func (c *child) terminate() {
	if c.terminated {
		return
	}
	c.terminated = true

	// The child may already have exited; the signal then fails harmlessly.
	_ = c.command.Process.Signal(syscall.SIGTERM)

	exited := make(chan error, 1)
	go func() { exited <- c.command.Wait() }()

	select {
	case err := <-exited:
		c.logger.Debug("child exited", "pid", c.command.Process.Pid, "status", exitStatus(err))
	case <-c.clock.After(c.grace):
		c.logger.Warn("child ignored SIGTERM, killing", "pid", c.command.Process.Pid, "grace", c.grace)
		_ = c.command.Process.Kill()
		<-exited
	}
}

// close terminates the child and releases the pty master.
func (c *child) close() {
	c.terminate()
	c.master.Close()
}

func exitStatus(err error) string {
	if err == nil {
		return "exit status 0"
	}
	return err.Error()
}

// childEnvironment returns base with the KEY=VALUE pairs of overrides
// replacing any existing entries for the same keys.
func childEnvironment(base []string, overrides ...string) []string {
	replaced := make(map[string]bool, len(overrides))
	for _, override := range overrides {
		key, _, _ := strings.Cut(override, "=")
		replaced[key] = true
	}

	environment := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		key, _, _ := strings.Cut(entry, "=")
		if replaced[key] {
			continue
		}
		environment = append(environment, entry)
	}
	return append(environment, overrides...)
}
