// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscqtest

import "code.hybscloud.com/spscq"

// Queue is the narrow consumer-side view spscqtest needs, satisfied by
// *spscq.Queue[T].
type Queue[T any] interface {
	Pop() (T, spscq.Signal)
}

// DrainUntilEOF pops from q into rec until a SignalEOF is observed,
// returning the number of items popped including the EOF-carrying one.
// Mirrors original_source/testsuite/runfifo.cpp's consumer loop, which
// pops until it sees the EOF-equivalent sentinel.
func DrainUntilEOF[T any](q Queue[T], rec *Recorder[T]) int {
	count := 0
	for {
		item, signal := q.Pop()
		rec.Record(item)
		count++
		if signal == spscq.SignalEOF {
			return count
		}
	}
}
