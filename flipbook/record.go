// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flipbook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/flipbook/lib/clock"
	"github.com/bureau-foundation/flipbook/lib/config"
	"github.com/bureau-foundation/flipbook/lib/screen"
	"github.com/bureau-foundation/flipbook/lib/vterm"
)

// Record runs argv on a pty of the configured geometry and writes the
// frames of its session to output.
//
// The child inherits the parent environment with TERM, COLUMNS and LINES
// overridden. Record returns nil when the session ends by end of output,
// a read or poll failure, or cancellation of ctx; the child is always
// terminated and the pty closed before Record returns, including when
// rendering panics.
func Record(ctx context.Context, recording config.Recording, argv []string, output io.Writer, logger *slog.Logger) error {
	if len(argv) == 0 {
		return errors.New("no command to record")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	environment := childEnvironment(os.Environ(),
		"TERM="+recording.Term,
		"COLUMNS="+strconv.Itoa(recording.Columns),
		"LINES="+strconv.Itoa(recording.Lines),
	)
	clk := clock.Real()

	process, err := startChild(argv, recording.Columns, recording.Lines, environment, clk, recording.TerminateGrace, logger)
	if err != nil {
		return err
	}
	defer process.close()

	logger.Info("recording started",
		"command", argv,
		"pid", process.command.Process.Pid,
		"columns", recording.Columns,
		"lines", recording.Lines,
		"term", recording.Term,
	)

	width := screen.NewWidthCache().Width
	session := NewSession(SessionConfig{
		Emulator:     vterm.New(recording.Columns, recording.Lines, width),
		Cadence:      NewCadence(clk, recording.Interval, screen.NewRenderer(width)),
		Frames:       NewFrameWriter(output),
		Logger:       logger,
		PollInterval: recording.PollInterval,
		ReadSize:     recording.ReadSize,
	})
	return session.Run(ctx, newPTYSource(process.master), process.terminate)
}

// Drain runs argv on a pty and discards its output until end of output,
// a read failure or cancellation of ctx, then terminates the child. It
// produces no frames; it exists to run terminal programs headlessly, for
// example to smoke-test that they start and exit on a real terminal.
//
// Only TERM is overridden in the child environment.
func Drain(ctx context.Context, recording config.Recording, argv []string, logger *slog.Logger) error {
	if len(argv) == 0 {
		return errors.New("no command to run")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	environment := childEnvironment(os.Environ(), "TERM="+recording.Term)
	process, err := startChild(argv, recording.Columns, recording.Lines, environment, clock.Real(), recording.TerminateGrace, logger)
	if err != nil {
		return err
	}
	defer process.close()

	total, reason := drain(ctx, newPTYSource(process.master), recording.PollInterval, recording.ReadSize)
	logger.Info("drain ended", "reason", reason, "bytes", total)
	process.terminate()
	return nil
}

// drain reads and discards source until the session ends. It returns the
// number of bytes read and why it stopped.
func drain(ctx context.Context, source Source, pollInterval time.Duration, readSize int) (int64, string) {
	buffer := make([]byte, readSize)
	var total int64
	for {
		if ctx.Err() != nil {
			return total, "interrupted"
		}
		readable, err := source.Wait(pollInterval)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return total, fmt.Sprintf("poll failed: %v", err)
		}
		if !readable {
			continue
		}
		count, err := source.Read(buffer)
		total += int64(count)
		if count == 0 || err != nil {
			return total, "end of output"
		}
	}
}
