// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

// SlotStore owns the fixed-capacity storage for a queue's payload array
// and its parallel signal array. Local and Shared deployments satisfy this
// with different backing memory — process heap vs. mapped shared-memory
// segments — but identical semantics, so Queue[T] never needs to know
// which one it was built on.
type SlotStore[T any] interface {
	// Item returns a pointer to the payload slot at position i, where
	// i < Cap(). The pointer is valid for the lifetime of the store.
	Item(i uint64) *T
	// SetSignal writes the signal tag paired with slot i.
	SetSignal(i uint64, s Signal)
	// GetSignal reads the signal tag paired with slot i.
	GetSignal(i uint64) Signal
	// Cap returns the number of slots this store holds.
	Cap() uint64
}
