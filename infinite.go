// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

// infiniteSlotStore backs the "infinite" calibration sink/source: it
// accepts Allocate/Push exactly like LocalSlotStore, but every index
// addresses the same single slot, so nothing popped or peeked reflects
// what was actually pushed. The queue exists to give the Sampler a
// known-shape load to converge against, not to move real data — see
// DESIGN.md's Open Question #3 on why this drops the original source's
// "samples = 1" rate-math special case instead of reproducing it.
type infiniteSlotStore[T any] struct {
	slot    T
	signals []Signal
	cap     uint64
}

func newInfiniteSlotStore[T any](capacity uint64) *infiniteSlotStore[T] {
	return &infiniteSlotStore[T]{signals: make([]Signal, capacity), cap: capacity}
}

func (s *infiniteSlotStore[T]) Item(uint64) *T {
	return &s.slot
}

func (s *infiniteSlotStore[T]) SetSignal(i uint64, sig Signal) {
	s.signals[i] = sig
}

func (s *infiniteSlotStore[T]) GetSignal(i uint64) Signal {
	return s.signals[i]
}

func (s *infiniteSlotStore[T]) Cap() uint64 {
	return s.cap
}

// NewInfinite constructs the "infinite" sink/source variant used only to
// calibrate the Sampler and measure rates: it accepts Allocate/Push and
// Pop/Peek calls without ever blocking on capacity or occupancy in either
// direction — there is no real peer on the other side guaranteed to ever
// run — and does not persist what is written through it.
func NewInfinite[T any](capacity uint64) (*Queue[T], error) {
	return newUnboundedQueue[T](newInfiniteSlotStore[T](capacity), capacity), nil
}
