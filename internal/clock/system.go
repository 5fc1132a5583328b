// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clock

import "time"

// System is the default Clock, backed directly by time.Now.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// Resolution returns one nanosecond, the nominal granularity of
// time.Now's monotonic reading on every platform Go supports — the actual
// hardware tick may be coarser, but the runtime gives no portable way to
// query it.
func (System) Resolution() time.Duration {
	return time.Nanosecond
}
