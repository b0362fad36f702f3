// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for flipbook.
//
// Frame cadence is defined in terms of elapsed monotonic time, so every
// component that reads the time accepts a Clock instead of calling
// time.Now directly. Production code uses Real(); tests use Fake(), which
// only moves when Advance is called:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	cadence := flipbook.NewCadence(c, time.Second)
//	c.Advance(time.Second) // the next MaybeEmit passes the rate gate
package clock
