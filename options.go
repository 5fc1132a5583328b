// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"time"
	"unsafe"

	"code.hybscloud.com/spscq/monitor"
)

// Builder configures and constructs a Queue, composing an optional
// instrumentation overlay in rather than inheriting it — see SPEC_FULL.md
// §3.2.
type Builder[T any] struct {
	capacity  uint64
	alignment int
	shared    bool
	key       string
	side      Side
	grace     time.Duration
	infinite  bool
	monitored bool
	frameWidth time.Duration
}

// New creates a queue builder for the given capacity, defaulting to the
// heap-backed deployment mode with DefaultAlignment and a one-second
// handshake grace period.
func New[T any](capacity uint64) *Builder[T] {
	return &Builder[T]{
		capacity:   capacity,
		alignment:  DefaultAlignment,
		grace:      time.Second,
		frameWidth: 100 * time.Microsecond,
	}
}

// Alignment overrides the slot alignment, which must be a multiple of the
// machine pointer size.
func (b *Builder[T]) Alignment(n int) *Builder[T] {
	b.alignment = n
	return b
}

// Shared selects the shared-memory deployment mode, keyed by key, with
// this process playing side.
func (b *Builder[T]) Shared(key string, side Side) *Builder[T] {
	b.shared, b.key, b.side = true, key, side
	return b
}

// Grace overrides the shared-memory handshake's grace period.
func (b *Builder[T]) Grace(d time.Duration) *Builder[T] {
	b.grace = d
	return b
}

// Infinite selects the calibration sink/source deployment mode.
func (b *Builder[T]) Infinite() *Builder[T] {
	b.infinite = true
	return b
}

// Monitored requests a *monitor.Sampler wrapping the constructed queue.
func (b *Builder[T]) Monitored() *Builder[T] {
	b.monitored = true
	return b
}

// InitialFrameWidth overrides the Sampler's starting frame width, before
// FrameResolver convergence. Only meaningful alongside Monitored.
func (b *Builder[T]) InitialFrameWidth(d time.Duration) *Builder[T] {
	b.frameWidth = d
	return b
}

// Build constructs the configured Queue[T]. If Monitored was set, Build
// also starts a *monitor.Sampler bound to the queue and returns it
// alongside; unmonitored builds get a nil sampler.
func (b *Builder[T]) Build() (*Queue[T], *monitor.Sampler, error) {
	var (
		q   *Queue[T]
		err error
	)
	switch {
	case b.infinite:
		q, err = NewInfinite[T](b.capacity)
	case b.shared:
		q, err = NewShared[T](b.capacity, b.key, b.side, b.alignment, b.grace)
	default:
		q, err = NewHeapAligned[T](b.capacity, b.alignment)
	}
	if err != nil {
		return nil, nil, err
	}
	if !b.monitored {
		return q, nil, nil
	}

	var zero T
	sampler := monitor.NewSampler(q, nil, float64(unsafe.Sizeof(zero)), b.frameWidth)
	sampler.Start()
	return q, sampler, nil
}
