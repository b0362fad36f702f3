// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file when --config is not given.
const EnvironmentVariable = "FLIPBOOK_CONFIG"

// Recording configures one capture session.
type Recording struct {
	// Columns and Lines are the fixed pty geometry. The child sees them
	// through TIOCGWINSZ and, in rhythmic mode, COLUMNS and LINES.
	Columns int `yaml:"columns"`
	Lines   int `yaml:"lines"`

	// Term is exported to the child as TERM.
	Term string `yaml:"term"`

	// Interval is the minimum time between two frames.
	Interval time.Duration `yaml:"interval"`

	// PollInterval bounds each wait for pty output.
	PollInterval time.Duration `yaml:"poll_interval"`

	// ReadSize is the largest chunk read from the pty at once.
	ReadSize int `yaml:"read_size"`

	// TerminateGrace is how long the child may take to exit after
	// SIGTERM before it is killed.
	TerminateGrace time.Duration `yaml:"terminate_grace"`

	// Output is where frames are written: "" or "-" for stdout, a
	// ".zst" path for compressed output, any other path for a file.
	Output string `yaml:"output"`
}

// Default returns the configuration of the rhythmic recorder.
func Default() Recording {
	return Recording{
		Columns:        90,
		Lines:          20,
		Term:           "linux",
		Interval:       time.Second,
		PollInterval:   100 * time.Millisecond,
		ReadSize:       1024,
		TerminateGrace: 2 * time.Second,
		Output:         "-",
	}
}

// HeadlessDefault returns the configuration of the headless drainer.
func HeadlessDefault() Recording {
	recording := Default()
	recording.Term = "xterm-256color"
	return recording
}

// Path returns the config file to load: flagValue when set, otherwise
// the FLIPBOOK_CONFIG environment variable. Empty means no file.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvironmentVariable)
}

// LoadFile merges the YAML file at path onto base. Keys absent from the
// file keep their base values; unknown keys are an error.
func LoadFile(path string, base Recording) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, fmt.Errorf("read config %s: %w", path, err)
	}
	recording, err := Parse(data, base)
	if err != nil {
		return Recording{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return recording, nil
}

// Parse merges YAML data onto base and expands variables in Output.
func Parse(data []byte, base Recording) (Recording, error) {
	recording := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&recording); err != nil && !errors.Is(err, io.EOF) {
		return Recording{}, err
	}
	recording.Output = expandVars(recording.Output)
	return recording, nil
}

// Validate checks the configuration for errors.
func (r Recording) Validate() error {
	var errs []error

	if r.Columns <= 0 || r.Columns > 0xffff {
		errs = append(errs, fmt.Errorf("columns must be between 1 and 65535, got %d", r.Columns))
	}
	if r.Lines <= 0 || r.Lines > 0xffff {
		errs = append(errs, fmt.Errorf("lines must be between 1 and 65535, got %d", r.Lines))
	}
	if r.Term == "" {
		errs = append(errs, fmt.Errorf("term is required"))
	}
	if r.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %v", r.Interval))
	}
	if r.PollInterval < time.Millisecond {
		errs = append(errs, fmt.Errorf("poll_interval must be at least 1ms, got %v", r.PollInterval))
	}
	if r.ReadSize <= 0 {
		errs = append(errs, fmt.Errorf("read_size must be positive, got %d", r.ReadSize))
	}
	if r.TerminateGrace < 0 {
		errs = append(errs, fmt.Errorf("terminate_grace must not be negative, got %v", r.TerminateGrace))
	}

	return errors.Join(errs...)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}
