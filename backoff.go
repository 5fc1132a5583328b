// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !nice

package spscq

import "code.hybscloud.com/spin"

// newSpinWait and blockingWait implement the default blocking policy for
// every suspension point in Queue: an architecture pause hint, retried
// until the condition clears. Build with the "nice" tag to substitute a
// cooperative yield instead (see backoff_nice.go) — both are
// correctness-neutral per spec.md §4.3; the choice is a build-time policy.
func newSpinWait() *spin.Wait {
	return &spin.Wait{}
}

func blockingWait(sw *spin.Wait) {
	sw.Once()
}
