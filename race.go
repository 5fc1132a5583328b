// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package spscq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests that rely on atomix's
// ordering-only synchronization, which the race detector cannot observe
// and so reports as false positives.
const RaceEnabled = true
