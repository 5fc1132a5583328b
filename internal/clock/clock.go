// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package clock abstracts the monotonic time source a Sampler measures
// frames against (spec.md §9 "Global clock handle": the source relies on
// a module-level clock pointer; this expresses the same capability as an
// explicit interface instead).
package clock

import "time"

// Clock is the time source capability a Sampler is handed at construction,
// rather than reaching for time.Now directly — letting tests substitute a
// deterministic implementation.
type Clock interface {
	// Now returns the current time. Callers only ever subtract one Now()
	// result from another; there is no contract about its relationship to
	// wall-clock time beyond monotonic advancement.
	Now() time.Time
	// Resolution returns the smallest interval between two distinct
	// values Now can return. A caller choosing a sampling frame width
	// should keep it well above this to avoid measuring clock quantization
	// noise instead of the queue's actual cycle time.
	Resolution() time.Duration
}
