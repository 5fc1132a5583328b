// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "code.hybscloud.com/atomix"

// BlockedCounter packs a 32-bit item count and a 32-bit blocked flag into
// one 64-bit cell, so the Sampler can read and reset both with a single
// aligned load/store pair rather than coordinating two separate fields.
//
// Field updates from the owning producer or consumer may tear across a
// concurrent Sampler reset — a brief under-count the Sampler already
// tolerates (see monitor.Sampler) — but the reset itself always lands on
// an aligned 64-bit boundary.
type BlockedCounter struct {
	cell atomix.Uint64
}

func packBlocked(count, blocked uint32) uint64 {
	return uint64(count) | uint64(blocked)<<32
}

func unpackBlocked(raw uint64) (count, blocked uint32) {
	return uint32(raw), uint32(raw >> 32)
}

// AddCount increments the owner-local item count. Called only by the
// owning producer (write_stats) or consumer (read_stats), never by the
// Sampler.
func (b *BlockedCounter) AddCount(n uint32) {
	raw := b.cell.LoadRelaxed()
	count, blocked := unpackBlocked(raw)
	b.cell.StoreRelease(packBlocked(count+n, blocked))
}

// SetBlocked records whether the owner is currently spinning on a
// full/empty observation.
func (b *BlockedCounter) SetBlocked(blocked bool) {
	raw := b.cell.LoadRelaxed()
	count, _ := unpackBlocked(raw)
	var flag uint32
	if blocked {
		flag = 1
	}
	b.cell.StoreRelease(packBlocked(count, flag))
}

// ReadAndZero is the Sampler-only observer: it reads the current count and
// blocked flag, then resets the cell to zero in one aligned store.
func (b *BlockedCounter) ReadAndZero() (count uint32, blocked bool) {
	raw := b.cell.LoadAcquire()
	b.cell.StoreRelease(0)
	count, flag := unpackBlocked(raw)
	return count, flag != 0
}
