// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flipbook

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// OpenOutput opens the destination for frames. stdout is the writer
// standing in for standard output:
//
//   - "" or "-": stdout (Close leaves it open)
//   - a path ending in ".zst": a zstd stream written to that file
//   - any other path: a plain file, truncated
//
// The returned writer implements Flush() error when buffering is
// involved; FrameWriter uses it to push every frame through.
func OpenOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".zst") {
		return file, nil
	}

	encoder, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("create zstd encoder for %s: %w", path, err)
	}
	return &compressedOutput{encoder: encoder, file: file}, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// compressedOutput owns both the encoder and the file beneath it.
type compressedOutput struct {
	encoder *zstd.Encoder
	file    *os.File
}

func (c *compressedOutput) Write(p []byte) (int, error) { return c.encoder.Write(p) }

// Flush ends the current zstd block so everything written so far can be
// decoded.
func (c *compressedOutput) Flush() error { return c.encoder.Flush() }

func (c *compressedOutput) Close() error {
	return errors.Join(c.encoder.Close(), c.file.Close())
}
