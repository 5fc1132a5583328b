// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "code.hybscloud.com/atomix"

// indexWrapBit marks a full traversal of the ring in the packed index
// cell; the low 32 bits hold the position.
const indexWrapBit = uint64(1) << 32

const indexValueMask = uint64(1)<<32 - 1

// Index encodes a read or write ring position as a (value, wrap) pair
// packed into a single 64-bit cell, so the owning side's mutation and the
// peer's observation each cost one aligned load or store.
//
// Exactly one bit of wrap is needed: value equality between the writer and
// reader is ambiguous only between empty and full, and one flip per full
// traversal of the ring disambiguates the two.
type Index struct {
	cell     *atomix.Uint64
	capacity uint64
}

// NewIndex returns an Index bound to the given ring capacity, starting at
// position 0 with wrap 0, backed by its own cell.
func NewIndex(capacity uint64) *Index {
	return &Index{cell: new(atomix.Uint64), capacity: capacity}
}

// NewIndexAt returns an Index bound to the given ring capacity, backed by
// an existing cell — used for the shared-memory variant, where the cell
// lives in a segment mapped by both endpoints rather than owned locally.
func NewIndexAt(cell *atomix.Uint64, capacity uint64) *Index {
	return &Index{cell: cell, capacity: capacity}
}

// Value returns the current position in [0, capacity). Safe to call from
// the peer side: uses an acquire load.
func (ix *Index) Value() uint64 {
	return ix.cell.LoadAcquire() & indexValueMask
}

// Wrap returns the current wrap indicator, 0 or 1. Safe to call from the
// peer side: uses an acquire load.
func (ix *Index) Wrap() uint64 {
	if ix.cell.LoadAcquire()&indexWrapBit != 0 {
		return 1
	}
	return 0
}

// load reads the index as seen by its own owner, who never needs to
// synchronize with itself.
func (ix *Index) load() (value, wrap uint64) {
	raw := ix.cell.LoadRelaxed()
	value = raw & indexValueMask
	if raw&indexWrapBit != 0 {
		wrap = 1
	}
	return value, wrap
}

func (ix *Index) store(value, wrap uint64) {
	raw := value & indexValueMask
	if wrap&1 != 0 {
		raw |= indexWrapBit
	}
	ix.cell.StoreRelease(raw)
}

// Inc advances the index by one position, toggling wrap if that crosses
// the capacity boundary. Must only be called by the owning side (the
// writer for write_pt, the reader for read_pt).
func (ix *Index) Inc() {
	ix.IncBy(1)
}

// IncBy advances the index by n positions in one step, toggling wrap if
// the addition crosses the capacity boundary an odd number of times.
func (ix *Index) IncBy(n uint64) {
	value, wrap := ix.load()
	total := value + n
	crossings := total / ix.capacity
	value = total % ix.capacity
	if crossings&1 != 0 {
		wrap ^= 1
	}
	ix.store(value, wrap)
}
