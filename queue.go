// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "code.hybscloud.com/atomix"

// Queue is the single-producer single-consumer bounded ring buffer: the
// one concrete type returned by NewHeap, NewShared and NewInfinite alike.
// Exactly one goroutine (or, in the shared-memory deployment, process) may
// call the producer methods, and exactly one the consumer methods;
// violating that is undefined behavior and is not detected here.
type Queue[T any] struct {
	readPt  *Index
	writePt *Index

	capacity uint64
	store    SlotStore[T]

	readStats  BlockedCounter
	writeStats BlockedCounter

	// allocateCalled is writer-local: only the producer goroutine ever
	// reads or writes it, so it needs no atomic.
	allocateCalled bool
	writeFinished  atomix.Bool
	asyncSignal    atomix.Uint32

	// unbounded marks the "infinite" calibration sink/source: Allocate and
	// Pop (and their siblings) never wait on capacity or occupancy, since
	// there is no real peer ever guaranteed to run on the other side. Only
	// NewInfinite sets this; every other constructor leaves it false.
	unbounded bool

	closeFn func() error
}

func newQueue[T any](store SlotStore[T], capacity uint64, closeFn func() error) *Queue[T] {
	return newQueueWithIndex[T](store, capacity, NewIndex(capacity), NewIndex(capacity), closeFn)
}

func newQueueWithIndex[T any](store SlotStore[T], capacity uint64, readPt, writePt *Index, closeFn func() error) *Queue[T] {
	return &Queue[T]{
		readPt:   readPt,
		writePt:  writePt,
		capacity: capacity,
		store:    store,
		closeFn:  closeFn,
	}
}

func newUnboundedQueue[T any](store SlotStore[T], capacity uint64) *Queue[T] {
	q := newQueue[T](store, capacity, nil)
	q.unbounded = true
	return q
}

// size returns the occupancy derived from the write/read index pair, per
// spec.md §4.1: equal value+wrap means empty, equal value with differing
// wrap means full, otherwise the difference (wrapping through capacity
// when the reader is ahead of the writer in raw value terms).
func (q *Queue[T]) size() uint64 {
	wv, ww := q.writePt.Value(), q.writePt.Wrap()
	rv, rw := q.readPt.Value(), q.readPt.Wrap()
	switch {
	case wv == rv && ww == rw:
		return 0
	case wv == rv:
		return q.capacity
	case rv < wv:
		return wv - rv
	default:
		return q.capacity - rv + wv
	}
}

// Size returns an instantaneous, approximate occupancy: by the time it
// returns, the peer side may already have changed it.
func (q *Queue[T]) Size() uint64 {
	return q.size()
}

// SpaceAvail returns capacity minus the current occupancy, with the same
// instantaneous caveat as Size.
func (q *Queue[T]) SpaceAvail() uint64 {
	return q.capacity - q.size()
}

// Capacity returns the queue's fixed capacity.
func (q *Queue[T]) Capacity() uint64 {
	return q.capacity
}

// full reports whether the queue has no space for another Allocate. The
// unbounded (infinite) variant never reports full: it has no real peer on
// the other side guaranteed to ever advance readPt.
func (q *Queue[T]) full() bool {
	return !q.unbounded && q.capacity-q.size() == 0
}

// empty reports whether the queue has nothing available to Pop. The
// unbounded (infinite) variant never reports empty, for the same reason.
func (q *Queue[T]) empty() bool {
	return !q.unbounded && q.size() == 0
}

// Allocate blocks while the queue is full, then returns a pointer to the
// slot at the current write position for the caller to fill in. Must be
// followed by Push; the pointer is only valid until the matching Push. On
// an unbounded queue this never blocks.
func (q *Queue[T]) Allocate() *T {
	if q.full() {
		q.writeStats.SetBlocked(true)
		sw := newSpinWait()
		for q.full() {
			blockingWait(sw)
		}
	}
	q.allocateCalled = true
	return q.store.Item(q.writePt.Value())
}

// TryAllocate is the non-blocking form of Allocate: it returns
// ErrWouldBlock immediately instead of spinning if the queue is full.
func (q *Queue[T]) TryAllocate() (*T, error) {
	if q.full() {
		return nil, ErrWouldBlock
	}
	q.allocateCalled = true
	return q.store.Item(q.writePt.Value()), nil
}

// Push completes the slot obtained from the most recent Allocate: it
// writes signal into the paired signal slot, advances the write index,
// and counts the push toward write_stats. If allocateCalled is false
// (Push called without a preceding Allocate), Push silently returns — per
// spec.md §4.3, this is a writer-local contract the queue does not
// enforce with an error. SignalEOF sets write_finished permanently.
func (q *Queue[T]) Push(signal Signal) {
	if !q.allocateCalled {
		return
	}
	q.store.SetSignal(q.writePt.Value(), signal)
	q.writePt.Inc()
	q.writeStats.AddCount(1)
	q.allocateCalled = false
	if signal == SignalEOF {
		q.writeFinished.StoreRelease(true)
	}
}

// PushValue allocates a slot, copies item into it, and pushes signal, in
// one call — equivalent to Allocate, assign, Push.
func (q *Queue[T]) PushValue(item T, signal Signal) {
	ref := q.Allocate()
	*ref = item
	q.Push(signal)
}

// TryPushValue is the non-blocking form of PushValue.
func (q *Queue[T]) TryPushValue(item T, signal Signal) error {
	ref, err := q.TryAllocate()
	if err != nil {
		return err
	}
	*ref = item
	q.Push(signal)
	return nil
}

// Insert writes items in order, blocking on a full queue between elements
// under the same discipline as Allocate. The outbound signal is attached
// only to the last element; every predecessor carries SignalNone.
func (q *Queue[T]) Insert(items []T, signal Signal) {
	for i, item := range items {
		ref := q.Allocate()
		*ref = item
		sig := SignalNone
		if i == len(items)-1 {
			sig = signal
		}
		q.Push(sig)
	}
}

// Pop blocks while the queue is empty, then returns the item and signal
// at the current read position and advances it. On an unbounded queue
// this never blocks.
func (q *Queue[T]) Pop() (T, Signal) {
	if q.empty() {
		q.readStats.SetBlocked(true)
		sw := newSpinWait()
		for q.empty() {
			blockingWait(sw)
		}
	}
	idx := q.readPt.Value()
	item := *q.store.Item(idx)
	signal := q.store.GetSignal(idx)
	q.readPt.Inc()
	q.readStats.AddCount(1)
	return item, signal
}

// TryPop is the non-blocking form of Pop.
func (q *Queue[T]) TryPop() (T, Signal, error) {
	if q.empty() {
		var zero T
		return zero, SignalNone, ErrWouldBlock
	}
	idx := q.readPt.Value()
	item := *q.store.Item(idx)
	signal := q.store.GetSignal(idx)
	q.readPt.Inc()
	q.readStats.AddCount(1)
	return item, signal, nil
}

// PopRange blocks until at least len(items) elements are available, then
// copies that many consecutive items (and, if signals is non-nil, their
// paired signals) into the caller's slices, advancing the read index by
// len(items). A zero-length items is a no-op. On an unbounded queue this
// never waits, regardless of len(items).
func (q *Queue[T]) PopRange(items []T, signals []Signal) {
	n := uint64(len(items))
	if n == 0 {
		return
	}
	if !q.unbounded && q.size() < n {
		q.readStats.SetBlocked(true)
		sw := newSpinWait()
		for q.size() < n {
			blockingWait(sw)
		}
	}
	idx := q.readPt.Value()
	for i := range items {
		items[i] = *q.store.Item(idx)
		if signals != nil {
			signals[i] = q.store.GetSignal(idx)
		}
		idx = (idx + 1) % q.capacity
	}
	q.readPt.IncBy(n)
	q.readStats.AddCount(uint32(n))
}

// Peek blocks until the queue is non-empty, then returns a pointer to the
// head slot and its signal without advancing the read index. Pair with
// Recycle to discard items already consumed in place. On an unbounded
// queue this never blocks.
func (q *Queue[T]) Peek() (*T, Signal) {
	if q.empty() {
		q.readStats.SetBlocked(true)
		sw := newSpinWait()
		for q.empty() {
			blockingWait(sw)
		}
	}
	idx := q.readPt.Value()
	return q.store.Item(idx), q.store.GetSignal(idx)
}

// TryPeek is the non-blocking form of Peek.
func (q *Queue[T]) TryPeek() (*T, Signal, error) {
	if q.empty() {
		return nil, SignalNone, ErrWouldBlock
	}
	idx := q.readPt.Value()
	return q.store.Item(idx), q.store.GetSignal(idx), nil
}

// Recycle advances the read index by rng (1 if rng == 0) without reading,
// discarding items already examined via Peek. rng must not exceed
// capacity; violating this returns KindCapacityExceeded.
func (q *Queue[T]) Recycle(rng uint64) error {
	if rng == 0 {
		rng = 1
	}
	if rng > q.capacity {
		return newError(KindCapacityExceeded, "recycle range %d exceeds capacity %d", rng, q.capacity)
	}
	q.readPt.IncBy(rng)
	q.readStats.AddCount(uint32(rng))
	return nil
}

// SendSignal writes sig into the queue-global asynchronous signal cell,
// observable by the peer at any time independent of payload flow.
func (q *Queue[T]) SendSignal(sig Signal) bool {
	q.asyncSignal.StoreRelease(uint32(sig))
	return true
}

// GetSignal reads the queue-global asynchronous signal cell.
func (q *Queue[T]) GetSignal() Signal {
	return Signal(q.asyncSignal.LoadAcquire())
}

// GetWriteFinished reports whether a SignalEOF push has ever occurred.
// Sticky: once true, it never reverts for the queue's lifetime.
func (q *Queue[T]) GetWriteFinished() bool {
	return q.writeFinished.LoadAcquire()
}

// GetAndZeroReadStats is a Sampler-only observer: it atomically reads and
// resets the read-side blocked counter.
func (q *Queue[T]) GetAndZeroReadStats() (count uint32, blocked bool) {
	return q.readStats.ReadAndZero()
}

// GetAndZeroWriteStats is a Sampler-only observer: it atomically reads and
// resets the write-side blocked counter.
func (q *Queue[T]) GetAndZeroWriteStats() (count uint32, blocked bool) {
	return q.writeStats.ReadAndZero()
}

// Close releases any resources this queue's deployment mode owns
// exclusively — for the shared-memory variant, unmapping its three
// segments. Heap and Infinite queues need no teardown and treat Close as
// a no-op.
func (q *Queue[T]) Close() error {
	if q.closeFn == nil {
		return nil
	}
	return q.closeFn()
}
