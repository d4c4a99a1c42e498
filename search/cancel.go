// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search implements the two-stage (D_max, α) search: a grid sweep
// followed by a Nelder-Mead simplex refinement, plus the progress and
// cancellation machinery both stages observe.
package search

import "sync/atomic"

// Cancel is an immutable handle to a process-wide cancellation flag,
// passed down the call stack instead of exposing a true global. The zero
// value is ready to use.
type Cancel struct {
	flag int32
}

// Set requests cancellation. Safe to call from any goroutine.
func (c *Cancel) Set() {
	atomic.StoreInt32(&c.flag, 1)
}

// IsSet reports whether cancellation has been requested.
func (c *Cancel) IsSet() bool {
	return atomic.LoadInt32(&c.flag) == 1
}
