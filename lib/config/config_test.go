// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	recording := Default()

	if recording.Columns != 90 || recording.Lines != 20 {
		t.Errorf("expected 90x20 geometry, got %dx%d", recording.Columns, recording.Lines)
	}
	if recording.Term != "linux" {
		t.Errorf("expected term=linux, got %s", recording.Term)
	}
	if recording.Interval != time.Second {
		t.Errorf("expected interval=1s, got %v", recording.Interval)
	}
	if recording.PollInterval != 100*time.Millisecond {
		t.Errorf("expected poll_interval=100ms, got %v", recording.PollInterval)
	}
	if recording.ReadSize != 1024 {
		t.Errorf("expected read_size=1024, got %d", recording.ReadSize)
	}
	if err := recording.Validate(); err != nil {
		t.Errorf("default configuration is invalid: %v", err)
	}
}

func TestHeadlessDefault(t *testing.T) {
	recording := HeadlessDefault()
	if recording.Term != "xterm-256color" {
		t.Errorf("expected term=xterm-256color, got %s", recording.Term)
	}
	if err := recording.Validate(); err != nil {
		t.Errorf("headless default configuration is invalid: %v", err)
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvironmentVariable, "/from/env.yaml")

	if got := Path("/from/flag.yaml"); got != "/from/flag.yaml" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := Path(""); got != "/from/env.yaml" {
		t.Errorf("environment fallback not used, got %q", got)
	}

	t.Setenv(EnvironmentVariable, "")
	if got := Path(""); got != "" {
		t.Errorf("expected no config file, got %q", got)
	}
}

func TestLoadFileMergesOntoBase(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "flipbook.yaml")
	content := `
columns: 120
term: xterm
interval: 250ms
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	recording, err := LoadFile(configPath, Default())
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if recording.Columns != 120 {
		t.Errorf("expected columns=120, got %d", recording.Columns)
	}
	if recording.Lines != 20 {
		t.Errorf("expected lines to keep default 20, got %d", recording.Lines)
	}
	if recording.Term != "xterm" {
		t.Errorf("expected term=xterm, got %s", recording.Term)
	}
	if recording.Interval != 250*time.Millisecond {
		t.Errorf("expected interval=250ms, got %v", recording.Interval)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("colums: 80\n"), Default())
	if err == nil {
		t.Fatal("expected error for misspelled key")
	}
	if !strings.Contains(err.Error(), "colums") {
		t.Errorf("error should name the unknown key, got %v", err)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	recording, err := Parse(nil, Default())
	if err != nil {
		t.Fatalf("Parse of empty document failed: %v", err)
	}
	if recording != Default() {
		t.Errorf("empty document changed the configuration: %+v", recording)
	}
}

func TestParseExpandsOutput(t *testing.T) {
	t.Setenv("FIXTURE_DIR", "/tmp/fixtures")

	recording, err := Parse([]byte("output: ${FIXTURE_DIR}/plot.txt\n"), Default())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if recording.Output != "/tmp/fixtures/plot.txt" {
		t.Errorf("expected expanded output, got %q", recording.Output)
	}

	recording, err = Parse([]byte("output: ${FLIPBOOK_UNSET_DIR:-out}/plot.txt\n"), Default())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if recording.Output != "out/plot.txt" {
		t.Errorf("expected default expansion, got %q", recording.Output)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Recording)
		wantErr string
	}{
		{name: "zero columns", modify: func(r *Recording) { r.Columns = 0 }, wantErr: "columns"},
		{name: "negative lines", modify: func(r *Recording) { r.Lines = -1 }, wantErr: "lines"},
		{name: "empty term", modify: func(r *Recording) { r.Term = "" }, wantErr: "term"},
		{name: "zero interval", modify: func(r *Recording) { r.Interval = 0 }, wantErr: "interval"},
		{name: "tiny poll", modify: func(r *Recording) { r.PollInterval = time.Microsecond }, wantErr: "poll_interval"},
		{name: "zero read size", modify: func(r *Recording) { r.ReadSize = 0 }, wantErr: "read_size"},
		{name: "negative grace", modify: func(r *Recording) { r.TerminateGrace = -time.Second }, wantErr: "terminate_grace"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			recording := Default()
			test.modify(&recording)
			err := recording.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("error %q does not mention %q", err, test.wantErr)
			}
		})
	}
}
