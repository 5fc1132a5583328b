// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "testing"

func TestBlockedCounterAddAndReadZero(t *testing.T) {
	var b BlockedCounter
	b.AddCount(3)
	b.AddCount(4)
	b.SetBlocked(true)

	count, blocked := b.ReadAndZero()
	if count != 7 {
		t.Fatalf("count: got %d, want 7", count)
	}
	if !blocked {
		t.Fatalf("blocked: got false, want true")
	}

	count, blocked = b.ReadAndZero()
	if count != 0 || blocked {
		t.Fatalf("after reset: got (%d, %v), want (0, false)", count, blocked)
	}
}

func TestBlockedCounterSetBlockedPreservesCount(t *testing.T) {
	var b BlockedCounter
	b.AddCount(5)
	b.SetBlocked(true)
	b.SetBlocked(false)

	count, blocked := b.ReadAndZero()
	if count != 5 {
		t.Fatalf("count: got %d, want 5", count)
	}
	if blocked {
		t.Fatalf("blocked: got true, want false")
	}
}
