// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build nice

package spscq

import "runtime"

// spinWait stands in for spin.Wait under the "nice" build: there is
// nothing to track between yields, but newSpinWait/blockingWait must keep
// the same shape as the default policy in backoff.go.
type spinWait struct{}

func newSpinWait() *spinWait {
	return &spinWait{}
}

// blockingWait yields the current goroutine instead of spinning with a
// pause hint. Opt in with -tags nice on oversubscribed or virtualized
// hosts where cooperative yielding outperforms busy-waiting.
func blockingWait(_ *spinWait) {
	runtime.Gosched()
}
