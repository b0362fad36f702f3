// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flipbook

import (
	"slices"
	"testing"
)

func TestChildEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		base      []string
		overrides []string
		want      []string
	}{
		{
			name:      "appends new keys",
			base:      []string{"HOME=/home/ben"},
			overrides: []string{"TERM=linux"},
			want:      []string{"HOME=/home/ben", "TERM=linux"},
		},
		{
			name:      "replaces existing keys",
			base:      []string{"TERM=xterm", "HOME=/home/ben", "COLUMNS=200"},
			overrides: []string{"TERM=linux", "COLUMNS=90", "LINES=20"},
			want:      []string{"HOME=/home/ben", "TERM=linux", "COLUMNS=90", "LINES=20"},
		},
		{
			name:      "does not match key prefixes",
			base:      []string{"TERMINFO=/usr/share/terminfo"},
			overrides: []string{"TERM=linux"},
			want:      []string{"TERMINFO=/usr/share/terminfo", "TERM=linux"},
		},
		{
			name:      "empty base",
			overrides: []string{"TERM=xterm-256color"},
			want:      []string{"TERM=xterm-256color"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := childEnvironment(test.base, test.overrides...)
			if !slices.Equal(got, test.want) {
				t.Errorf("childEnvironment() = %v, want %v", got, test.want)
			}
		})
	}
}
