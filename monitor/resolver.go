// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monitor implements the background instrumentation subsystem
// layered atop a queue: FrameResolver converges a sampling window to the
// producer/consumer cycle time, Sampler drives the measurement loop, and
// Stats derives arrival rate, departure rate, mean occupancy and
// utilization from what it accumulates.
package monitor

// Direction distinguishes the producer side from the consumer side when
// FrameResolver tracks per-direction blocked history.
type Direction int

const (
	Write Direction = iota
	Read
)

const (
	// NumFrames is the length of the blocked-history ring kept per
	// direction.
	NumFrames = 5
	// Convergence is the fractional tolerance current_width must land
	// within before the resolver accepts it as converged.
	Convergence = 0.05
)

type acceptRange struct {
	lower, upper float64
}

// FrameResolver chooses a sampling window "slow enough to see many items
// yet fast enough to resolve changes" by doubling the frame width until
// the realized frame time lands within ±Convergence of it, then fixes an
// acceptance window around that width for classifying future frames.
type FrameResolver struct {
	currentWidth float64
	frameIndex   int
	blocked      [NumFrames][2]bool
	rng          acceptRange
	converged    bool
}

// NewFrameResolver starts a resolver at the given initial frame width in
// nanoseconds, which must be > 0.
func NewFrameResolver(initialWidth float64) *FrameResolver {
	return &FrameResolver{currentWidth: initialWidth}
}

// Width returns the resolver's current frame width.
func (r *FrameResolver) Width() float64 {
	return r.currentWidth
}

// Converged reports whether the resolver has settled on a width.
func (r *FrameResolver) Converged() bool {
	return r.converged
}

// Update folds in one realized frame's duration. While the percent error
// against the current width exceeds Convergence, it doubles the width and
// reports not converged; otherwise it fixes the acceptance range at
// [0.75, 1.25] × current_width and reports converged.
func (r *FrameResolver) Update(realizedFrameTime float64) (converged bool) {
	pDiff := (realizedFrameTime - r.currentWidth) / r.currentWidth
	if pDiff < -Convergence || pDiff > Convergence {
		r.currentWidth *= 2
		r.converged = false
		return false
	}
	r.rng = acceptRange{lower: 0.75 * r.currentWidth, upper: 1.25 * r.currentWidth}
	r.converged = true
	return true
}

// AcceptEntry reports whether realizedFrameTime itself falls within the
// resolver's acceptance window.
//
// The original source (original_source/resolution.cpp) tests
// diff = realizedFrameTime - currentWidth against the same window, which
// is centered near currentWidth while diff is centered near zero — the
// check as written almost never accepts. This implements the natural
// reading instead, testing realizedFrameTime directly; see DESIGN.md.
func (r *FrameResolver) AcceptEntry(realizedFrameTime float64) bool {
	return realizedFrameTime >= r.rng.lower && realizedFrameTime <= r.rng.upper
}

// SetBlocked records whether direction was blocked during the current
// frame and advances the ring index.
func (r *FrameResolver) SetBlocked(dir Direction, blocked bool) {
	r.blocked[r.frameIndex][dir] = blocked
	r.frameIndex = (r.frameIndex + 1) % NumFrames
}

// WasBlocked reports whether any tracked frame, in either direction, was
// marked blocked.
func (r *FrameResolver) WasBlocked() bool {
	for _, frame := range r.blocked {
		if frame[Write] || frame[Read] {
			return true
		}
	}
	return false
}
