// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the time operations used by the capture loop.
type Clock interface {
	// Now returns the current time. Values returned by the real clock
	// carry a monotonic reading, so differences between them are
	// immune to wall-clock steps.
	Now() time.Time

	// After returns a channel that receives the current time once d has
	// elapsed. If d <= 0, the channel receives immediately.
	After(d time.Duration) <-chan time.Time
}
