// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flipbook

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func writeFrames(t *testing.T, path string, frames ...Frame) {
	t.Helper()
	output, err := OpenOutput(path, io.Discard)
	if err != nil {
		t.Fatalf("OpenOutput(%q): %v", path, err)
	}
	writer := NewFrameWriter(output)
	for _, frame := range frames {
		if err := writer.WriteFrame(frame); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
	}
	if err := output.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

var sampleFrame = Frame{Number: 1, Columns: 3, Lines: 1, Rows: []string{"hey"}}

func TestOpenOutputPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.txt")
	if err := os.WriteFile(path, []byte("stale content that must go away"), 0o644); err != nil {
		t.Fatal(err)
	}

	writeFrames(t, path, sampleFrame)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sampleFrame.Format() {
		t.Fatalf("file content = %q, want %q", data, sampleFrame.Format())
	}
}

func TestOpenOutputCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.txt.zst")
	second := Frame{Number: 2, Columns: 3, Lines: 1, Rows: []string{"you"}}
	writeFrames(t, path, sampleFrame, second)

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	decoder, err := zstd.NewReader(file)
	if err != nil {
		t.Fatalf("zstd.NewReader: %v", err)
	}
	defer decoder.Close()

	data, err := io.ReadAll(decoder)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if want := sampleFrame.Format() + second.Format(); string(data) != want {
		t.Fatalf("decompressed = %q, want %q", data, want)
	}
}

func TestOpenOutputStandardOutput(t *testing.T) {
	for _, path := range []string{"", "-"} {
		var stdout bytes.Buffer
		output, err := OpenOutput(path, &stdout)
		if err != nil {
			t.Fatalf("OpenOutput(%q): %v", path, err)
		}
		if err := NewFrameWriter(output).WriteFrame(sampleFrame); err != nil {
			t.Fatalf("WriteFrame(%q): %v", path, err)
		}
		if err := output.Close(); err != nil {
			t.Fatalf("Close(%q): %v", path, err)
		}
		if stdout.String() != sampleFrame.Format() {
			t.Errorf("OpenOutput(%q) wrote %q to stdout, want %q", path, stdout.String(), sampleFrame.Format())
		}
	}
}

func TestOpenOutputMissingDirectory(t *testing.T) {
	_, err := OpenOutput(filepath.Join(t.TempDir(), "missing", "fixture.txt"), io.Discard)
	if err == nil {
		t.Fatal("expected error for a missing directory")
	}
}
