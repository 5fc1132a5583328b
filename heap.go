// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

// DefaultAlignment is the slot alignment used by NewHeap and NewShared
// when the caller has no specific requirement — a multiple of the machine
// pointer size on every supported platform.
const DefaultAlignment = 16

// NewHeap constructs a process-local, heap-backed queue for two
// goroutines in the same process, aligned to DefaultAlignment.
func NewHeap[T any](capacity uint64) (*Queue[T], error) {
	return NewHeapAligned[T](capacity, DefaultAlignment)
}

// NewHeapAligned is NewHeap with an explicit slot alignment, which must be
// a multiple of the machine pointer size.
func NewHeapAligned[T any](capacity uint64, alignment int) (*Queue[T], error) {
	store, err := NewLocalSlotStore[T](capacity, alignment)
	if err != nil {
		return nil, err
	}
	return newQueue[T](store, capacity, nil), nil
}
