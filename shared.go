// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"time"
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/spscq/internal/shm"
)

// Side identifies which endpoint of a shared-memory queue this process
// plays. Exactly one process on each side may attach to a given key.
type Side int

const (
	// Producer is the writing endpoint.
	Producer Side = iota
	// Consumer is the reading endpoint.
	Consumer
)

func (s Side) String() string {
	if s == Producer {
		return "Producer"
	}
	return "Consumer"
}

// handshakeMagic is the cookie value each side writes into its half of the
// two-field handshake cookie to announce liveness, per spec.md §6.
const handshakeMagic = 0x1337

// ptrSegment is the layout of the "<key>_ptr" shared-memory segment: the
// write and read Index cells, followed by the two-field handshake cookie.
// Field order matters — this struct is mapped directly onto shared bytes.
type ptrSegment struct {
	writePt atomix.Uint64
	readPt  atomix.Uint64
	cookieA atomix.Uint32
	cookieB atomix.Uint32
}

// SharedSlotStore is the shared-memory SlotStore variant: the payload and
// signal arrays, plus the index pair and handshake cookie, live in three
// named POSIX shared-memory segments mapped by both the producer and the
// consumer process, keyed by one base string shared by both sides.
type SharedSlotStore[T any] struct {
	store  *shm.Segment
	sigSeg *shm.Segment
	ptrSeg *shm.Segment

	items   []T
	signals []Signal
	layout  *ptrSegment
	cap     uint64
}

// NewSharedSlotStore opens (creating if this is the first arrival) the
// three named segments for key, sized for capacity items of type T, and
// runs the two-party handshake described in spec.md §4.4: each side
// writes its half of the cookie and spin-waits for both halves to match,
// surfacing KindPeerNotReady if that does not happen within grace.
func NewSharedSlotStore[T any](key string, capacity uint64, side Side, grace time.Duration) (*SharedSlotStore[T], error) {
	var zero T
	itemSize := int(unsafe.Sizeof(zero))

	storeSeg, err := shm.Open(key+"_store", itemSize*int(capacity))
	if err != nil {
		return nil, newError(KindBadSharedMemory, "store segment %q: %v", key+"_store", err)
	}
	sigSeg, err := shm.Open(key+"_key", 4*int(capacity))
	if err != nil {
		_ = storeSeg.Close()
		return nil, newError(KindBadSharedMemory, "signal segment %q: %v", key+"_key", err)
	}
	ptrSeg, err := shm.Open(key+"_ptr", int(unsafe.Sizeof(ptrSegment{})))
	if err != nil {
		_ = storeSeg.Close()
		_ = sigSeg.Close()
		return nil, newError(KindBadSharedMemory, "pointer segment %q: %v", key+"_ptr", err)
	}

	s := &SharedSlotStore[T]{
		store:   storeSeg,
		sigSeg:  sigSeg,
		ptrSeg:  ptrSeg,
		items:   unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(storeSeg.Data))), capacity),
		signals: unsafe.Slice((*Signal)(unsafe.Pointer(unsafe.SliceData(sigSeg.Data))), capacity),
		layout:  (*ptrSegment)(unsafe.Pointer(unsafe.SliceData(ptrSeg.Data))),
		cap:     capacity,
	}

	if err := s.handshake(side, grace); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *SharedSlotStore[T]) handshake(side Side, grace time.Duration) error {
	switch side {
	case Producer:
		s.layout.cookieA.StoreRelease(handshakeMagic)
	case Consumer:
		s.layout.cookieB.StoreRelease(handshakeMagic)
	}

	deadline := time.Now().Add(grace)
	sw := spin.Wait{}
	for s.layout.cookieA.LoadAcquire() != handshakeMagic || s.layout.cookieB.LoadAcquire() != handshakeMagic {
		if time.Now().After(deadline) {
			return newError(KindPeerNotReady, "peer did not complete handshake within %v", grace)
		}
		sw.Once()
	}
	return nil
}

func (s *SharedSlotStore[T]) Item(i uint64) *T {
	return &s.items[i]
}

func (s *SharedSlotStore[T]) SetSignal(i uint64, sig Signal) {
	s.signals[i] = sig
}

func (s *SharedSlotStore[T]) GetSignal(i uint64) Signal {
	return s.signals[i]
}

func (s *SharedSlotStore[T]) Cap() uint64 {
	return s.cap
}

// Index returns Index cells bound to this store's shared write/read
// position cells, so the Queue built atop it shares position state with
// its peer process instead of owning private cells.
func (s *SharedSlotStore[T]) Index() (writePt, readPt *Index) {
	return NewIndexAt(&s.layout.writePt, s.cap), NewIndexAt(&s.layout.readPt, s.cap)
}

// Close unmaps all three segments. It does not unlink their names — the
// caller decides, typically once it knows its peer has also detached,
// whether to call Unlink.
func (s *SharedSlotStore[T]) Close() error {
	errs := [3]error{s.store.Close(), s.sigSeg.Close(), s.ptrSeg.Close()}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Unlink removes the three named segments backing key from the
// shared-memory namespace. Call only after both endpoints have closed
// their mappings.
func Unlink(key string) error {
	errs := [3]error{shm.Unlink(key + "_store"), shm.Unlink(key + "_key"), shm.Unlink(key + "_ptr")}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// NewShared constructs a shared-memory-backed queue for two processes on
// the same host: same key on both sides, one side Producer and the other
// Consumer. alignment must be a multiple of the machine pointer size, but
// shared-memory slots are not independently over-allocated the way the
// heap variant's are — the backing segment itself is sized exactly to
// capacity items, so alignment here only validates the caller's
// expectation rather than shifting a buffer; the payload array starts at
// the beginning of its mapped segment.
func NewShared[T any](capacity uint64, key string, side Side, alignment int, grace time.Duration) (*Queue[T], error) {
	if alignment <= 0 || alignment%ptrSize != 0 {
		return nil, newError(KindBadAlignment, "alignment %d is not a multiple of pointer size %d", alignment, ptrSize)
	}
	store, err := NewSharedSlotStore[T](key, capacity, side, grace)
	if err != nil {
		return nil, err
	}
	writePt, readPt := store.Index()
	return newQueueWithIndex[T](store, capacity, readPt, writePt, store.Close), nil
}
