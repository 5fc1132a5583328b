// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq_test

import (
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spscq"
)

func TestIndexIncWraps(t *testing.T) {
	ix := spscq.NewIndex(4)
	for i := uint64(0); i < 4; i++ {
		if ix.Value() != i {
			t.Fatalf("Value: got %d, want %d", ix.Value(), i)
		}
		if ix.Wrap() != 0 {
			t.Fatalf("Wrap before full traversal: got %d, want 0", ix.Wrap())
		}
		ix.Inc()
	}
	if ix.Value() != 0 {
		t.Fatalf("Value after capacity increments: got %d, want 0", ix.Value())
	}
	if ix.Wrap() != 1 {
		t.Fatalf("Wrap after one full traversal: got %d, want 1", ix.Wrap())
	}
}

func TestIndexIncByCrossesCapacityMultipleTimes(t *testing.T) {
	ix := spscq.NewIndex(4)
	ix.IncBy(10) // 2 full traversals (8) + 2
	if ix.Value() != 2 {
		t.Fatalf("Value: got %d, want 2", ix.Value())
	}
	if ix.Wrap() != 0 {
		t.Fatalf("Wrap after an even number of traversals: got %d, want 0", ix.Wrap())
	}

	ix.IncBy(4) // 1 more traversal
	if ix.Value() != 2 {
		t.Fatalf("Value: got %d, want 2", ix.Value())
	}
	if ix.Wrap() != 1 {
		t.Fatalf("Wrap after an odd total of traversals: got %d, want 1", ix.Wrap())
	}
}

func TestIndexAtSharesCellAcrossOwners(t *testing.T) {
	var cell atomix.Uint64
	owner := spscq.NewIndexAt(&cell, 4)
	peer := spscq.NewIndexAt(&cell, 4)

	owner.IncBy(3)
	if peer.Value() != 3 {
		t.Fatalf("peer observing the same cell: got %d, want 3", peer.Value())
	}
}
