// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monitor_test

import (
	"testing"

	"code.hybscloud.com/spscq/monitor"
)

func TestFrameResolverDoublesUntilWithinTolerance(t *testing.T) {
	r := monitor.NewFrameResolver(100)

	if converged := r.Update(1000); converged {
		t.Fatal("Update with a realized time far outside tolerance must not converge")
	}
	if r.Width() != 200 {
		t.Fatalf("Width after one miss: got %v, want 200", r.Width())
	}

	if converged := r.Update(1000); converged {
		t.Fatal("still far outside tolerance, must not converge")
	}
	if r.Width() != 400 {
		t.Fatalf("Width after two misses: got %v, want 400", r.Width())
	}
}

func TestFrameResolverConvergesWithinTolerance(t *testing.T) {
	r := monitor.NewFrameResolver(1000)

	if converged := r.Update(1040); !converged {
		t.Fatal("realized time within ±5% of current width must converge")
	}
	if !r.Converged() {
		t.Fatal("Converged() must report true after a converging Update")
	}
	if r.Width() != 1000 {
		t.Fatalf("Width must not change on a converging Update: got %v", r.Width())
	}
}

func TestFrameResolverAcceptEntryTestsRealizedValueDirectly(t *testing.T) {
	r := monitor.NewFrameResolver(1000)
	r.Update(1000) // converges, fixing the acceptance range to [750, 1250]

	cases := []struct {
		realized float64
		accept   bool
	}{
		{750, true},
		{1000, true},
		{1250, true},
		{749, false},
		{1251, false},
	}
	for _, c := range cases {
		if got := r.AcceptEntry(c.realized); got != c.accept {
			t.Fatalf("AcceptEntry(%v): got %v, want %v", c.realized, got, c.accept)
		}
	}
}

func TestFrameResolverAcceptEntryBeforeConvergenceRejectsEverything(t *testing.T) {
	r := monitor.NewFrameResolver(1000)
	// Never converged: the zero-value acceptRange accepts nothing.
	if r.AcceptEntry(1000) {
		t.Fatal("AcceptEntry before any converging Update must reject")
	}
}

func TestFrameResolverWasBlockedReflectsEitherDirection(t *testing.T) {
	r := monitor.NewFrameResolver(1000)
	if r.WasBlocked() {
		t.Fatal("a fresh resolver must report no blocked history")
	}

	r.SetBlocked(monitor.Write, true)
	if !r.WasBlocked() {
		t.Fatal("WasBlocked must report true once any direction was blocked")
	}
}

func TestFrameResolverWasBlockedRingEventuallyClears(t *testing.T) {
	r := monitor.NewFrameResolver(1000)
	r.SetBlocked(monitor.Write, true)
	for i := 0; i < monitor.NumFrames; i++ {
		r.SetBlocked(monitor.Write, false)
		r.SetBlocked(monitor.Read, false)
	}
	if r.WasBlocked() {
		t.Fatal("after NumFrames clean frames, the blocked entry must have rotated out")
	}
}
