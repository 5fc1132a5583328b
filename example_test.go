// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package spscq_test

import (
	"fmt"

	"code.hybscloud.com/spscq"
)

// ExampleNewHeap demonstrates a serial producer/consumer exchange over a
// heap-backed queue, draining through SignalEOF.
func ExampleNewHeap() {
	q, err := spscq.NewHeap[int](8)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i := 1; i <= 5; i++ {
		signal := spscq.SignalNone
		if i == 5 {
			signal = spscq.SignalEOF
		}
		q.PushValue(i*10, signal)
	}

	for {
		v, signal := q.Pop()
		fmt.Println(v)
		if signal == spscq.SignalEOF {
			break
		}
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleQueue_Recycle demonstrates examining an item with Peek and
// discarding it without copying, the pattern a consumer uses when it only
// needs to inspect a header before moving on.
func ExampleQueue_Recycle() {
	q, err := spscq.NewHeap[string](4)
	if err != nil {
		fmt.Println(err)
		return
	}

	q.PushValue("alpha", spscq.SignalNone)
	q.PushValue("beta", spscq.SignalNone)

	ref, _ := q.Peek()
	fmt.Println(*ref)
	if err := q.Recycle(1); err != nil {
		fmt.Println(err)
		return
	}

	v, _ := q.Pop()
	fmt.Println(v)

	// Output:
	// alpha
	// beta
}

// ExampleBuilder demonstrates constructing a monitored heap queue through
// the fluent Builder and moving items through it while its sampler runs.
func ExampleBuilder() {
	q, sampler, err := spscq.New[int](64).Monitored().Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer sampler.Stop()

	for i := 0; i < 10; i++ {
		q.PushValue(i, spscq.SignalNone)
	}
	for i := 0; i < 10; i++ {
		q.Pop()
	}

	fmt.Println(q.Size())

	// Output:
	// 0
}
