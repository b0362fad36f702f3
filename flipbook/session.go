// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flipbook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/flipbook/lib/vterm"
)

// Defaults for the capture loop.
const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultReadSize     = 1024
)

// SessionConfig holds the collaborators of a capture Session.
type SessionConfig struct {
	// Emulator receives everything read from the source.
	Emulator vterm.Emulator

	// Cadence decides which screens become frames.
	Cadence *Cadence

	// Frames receives emitted frames.
	Frames *FrameWriter

	// Logger receives session lifecycle events. Nil discards them.
	Logger *slog.Logger

	// PollInterval bounds how long the loop waits for output before
	// checking the cadence again. Zero selects DefaultPollInterval.
	PollInterval time.Duration

	// ReadSize is the largest chunk read at once. Zero selects
	// DefaultReadSize.
	ReadSize int
}

// Session is one capture: a single-threaded loop that alternates between
// waiting for pty output and asking the cadence engine for a frame.
type Session struct {
	emulator     vterm.Emulator
	cadence      *Cadence
	frames       *FrameWriter
	logger       *slog.Logger
	pollInterval time.Duration
	readSize     int
}

// NewSession returns a Session for config.
func NewSession(config SessionConfig) *Session {
	session := &Session{
		emulator:     config.Emulator,
		cadence:      config.Cadence,
		frames:       config.Frames,
		logger:       config.Logger,
		pollInterval: config.PollInterval,
		readSize:     config.ReadSize,
	}
	if session.logger == nil {
		session.logger = slog.New(slog.DiscardHandler)
	}
	if session.pollInterval <= 0 {
		session.pollInterval = DefaultPollInterval
	}
	if session.readSize <= 0 {
		session.readSize = DefaultReadSize
	}
	return session
}

// Run captures source until it reaches end of output, fails to read or
// poll, or ctx is cancelled. None of those are errors. Afterwards it
// calls terminate (if non-nil) and makes the final cadence check, which
// guarantees a session always produces at least one frame.
//
// Run returns an error only when writing a frame or feeding the emulator
// fails. In that case the final frame is skipped, but terminate still
// runs.
func (s *Session) Run(ctx context.Context, source Source, terminate func()) error {
	reason, err := s.loop(ctx, source)
	s.logger.Info("capture loop ended", "reason", reason)

	if terminate != nil {
		terminate()
	}
	if err != nil {
		return err
	}
	if err := s.emit(true); err != nil {
		return err
	}
	s.logger.Info("capture complete", "frames", s.frames.Count())
	return nil
}

// loop runs until the session ends and returns why.
func (s *Session) loop(ctx context.Context, source Source) (string, error) {
	buffer := make([]byte, s.readSize)
	for {
		if err := s.emit(false); err != nil {
			return "output failed", err
		}
		if ctx.Err() != nil {
			return "interrupted", nil
		}

		readable, err := source.Wait(s.pollInterval)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			s.logger.Warn("polling output failed", "error", err)
			return "poll failed", nil
		}
		if !readable {
			continue
		}

		count, err := source.Read(buffer)
		if count > 0 {
			if feedErr := s.emulator.Feed(buffer[:count]); feedErr != nil {
				return "emulator failed", fmt.Errorf("feed %d bytes: %w", count, feedErr)
			}
		}
		if count == 0 || err != nil {
			if err != nil {
				s.logger.Debug("read ended session", "error", err)
			}
			return "end of output", nil
		}

		if err := s.emit(false); err != nil {
			return "output failed", err
		}
	}
}

func (s *Session) emit(final bool) error {
	frame, ok := s.cadence.MaybeEmit(s.emulator, final)
	if !ok {
		return nil
	}
	s.logger.Debug("frame emitted", "frame", frame.Number, "final", final)
	return s.frames.WriteFrame(frame)
}
