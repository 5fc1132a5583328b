// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spscqtest provides small test-support helpers for exercising
// spscq.Queue end to end, grounded on original_source/testsuite/runfifo.cpp's
// producer/consumer/assert pattern: push a known range, drain it into a
// recorder, compare against what was expected.
package spscqtest

import "sync"

// Recorder accumulates a sequence of consumed items for assertion in
// tests, the role original_source's runfifo.cpp plays by appending every
// popped value to a plain vector before comparing it to the expected
// range.
type Recorder[T any] struct {
	mu    sync.Mutex
	items []T
}

// Record appends item to the recorded sequence.
func (r *Recorder[T]) Record(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
}

// Items returns a copy of the recorded sequence.
func (r *Recorder[T]) Items() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of recorded items.
func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
