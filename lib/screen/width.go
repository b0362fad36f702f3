// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package screen

import (
	"sync"

	"github.com/mattn/go-runewidth"
)

// WidthFunc reports how many terminal columns a rune occupies: 0, 1 or 2.
type WidthFunc func(r rune) int

// widthCacheSize bounds the memo. Terminal output draws from a small
// alphabet, so a few thousand entries cover real sessions.
const widthCacheSize = 4096

// WidthCache memoizes a go-runewidth condition. It is safe for concurrent
// use so that independent capture sessions can share one instance.
type WidthCache struct {
	condition *runewidth.Condition

	mu     sync.Mutex
	widths map[rune]int
}

// NewWidthCache returns a memoizing width oracle. East Asian ambiguous
// characters are treated as narrow, matching a non-CJK locale.
func NewWidthCache() *WidthCache {
	condition := runewidth.NewCondition()
	condition.EastAsianWidth = false
	return &WidthCache{
		condition: condition,
		widths:    make(map[rune]int),
	}
}

// Width returns the column width of r, clamped to 0..2.
func (c *WidthCache) Width(r rune) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if width, ok := c.widths[r]; ok {
		return width
	}
	width := c.condition.RuneWidth(r)
	switch {
	case width < 0:
		width = 0
	case width > 2:
		width = 2
	}
	if len(c.widths) >= widthCacheSize {
		clear(c.widths)
	}
	c.widths[r] = width
	return width
}

// defaultCache backs DefaultWidth.
var defaultCache = NewWidthCache()

// DefaultWidth is the process-wide memoized width oracle.
func DefaultWidth(r rune) int { return defaultCache.Width(r) }
