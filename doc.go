// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spscq provides a lock-free single-producer/single-consumer
// bounded queue in three deployment flavors behind one interface, plus an
// instrumentation subsystem that estimates a running queue's arrival rate,
// departure rate, mean occupancy and utilization without touching its
// critical path.
//
// # Quick Start
//
// Heap-backed, two goroutines in one process:
//
//	q, err := spscq.NewHeap[Event](1024)
//
// Shared-memory, two processes on the same host:
//
//	q, err := spscq.NewShared[Event](1024, "pipeline-stage-1", spscq.Producer, spscq.DefaultAlignment, time.Second)
//	// peer process:
//	q, err := spscq.NewShared[Event](1024, "pipeline-stage-1", spscq.Consumer, spscq.DefaultAlignment, time.Second)
//
// Infinite sink/source, for rate calibration only:
//
//	q, err := spscq.NewInfinite[Event](1024)
//
// All three return the same *Queue[T] and share the same operations.
//
// # Basic Usage
//
//	// Producer
//	ref := q.Allocate()
//	*ref = Event{ID: 1}
//	q.Push(spscq.SignalNone)
//
//	// Consumer
//	item, signal := q.Pop()
//	if signal == spscq.SignalEOF {
//	    // producer is done
//	}
//
// Allocate, Push, Pop, PopRange and Peek block (spin) while the queue is
// full or empty; there is no timeout and no condition variable, only
// cooperative spinning with a CPU pause hint. Non-blocking counterparts
// (TryAllocate, TryPushValue, TryPop, TryPeek) return [ErrWouldBlock] immediately
// instead:
//
//	backoff := iox.Backoff{}
//	for {
//	    if err := q.TryPushValue(Event{ID: 1}, spscq.SignalNone); err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    backoff.Wait()
//	}
//
// # Monitoring
//
// Wrap construction in a Builder to get live statistics alongside the
// queue:
//
//	q, sampler, err := spscq.New[Event](1024).Monitored().Build()
//	defer sampler.Stop()
//	...
//	stats := sampler.Stats()
//	fmt.Println(stats.ArrivalRate(monitor.MB), stats.Utilization())
//
// The sampler runs in its own goroutine, reads only the owner-reported
// counters the queue exposes for this purpose, and converges its sampling
// frame width to the producer/consumer cycle time automatically — see
// package monitor.
//
// # Deployment Modes
//
//	NewHeap[T]     - process-local heap storage, two goroutines
//	NewShared[T]   - named shared-memory segments, two processes
//	NewInfinite[T] - sink/source used only to calibrate the sampler
//
// Violating the single-producer/single-consumer contract on any of the
// three — more than one goroutine or process enqueueing, or more than one
// dequeueing — is undefined behavior and is not detected at runtime. Of
// the other misuses, Recycle beyond capacity returns an [*Error] with
// [KindCapacityExceeded], and Push without a prior Allocate is ignored
// silently.
//
// # Error Handling
//
// Blocking operations never fail; they wait. Construction can fail with a
// [*Error] carrying one of the [Kind] values (bad alignment, allocation
// failure, shared-memory failure, handshake timeout). Non-blocking
// operations return [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox] for ecosystem consistency:
//
//	if err := q.Recycle(1); err != nil {
//	    var e *spscq.Error
//	    if errors.As(err, &e) && e.Kind == spscq.KindCapacityExceeded {
//	        // range exceeded capacity
//	    }
//	}
//
// # Length
//
// Size returns an instantaneous, approximate count: by the time it
// returns, the peer side may have already changed it. Use SpaceAvail for
// the same caveat in the opposite direction. Neither requires
// cross-core synchronization beyond the ordinary index loads the queue
// already performs on every operation.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering, [code.hybscloud.com/spin] for CPU pause
// instructions on the default spin policy, [code.hybscloud.com/iox] for
// semantic errors, and [golang.org/x/sys/unix] for the POSIX shared-memory
// segments backing the shared-memory deployment mode.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established purely through atomic memory orderings. This package's
// cross-goroutine visibility rests entirely on acquire/release pairs on
// the index cells, so the race detector reports false positives on
// otherwise-correct concurrent tests; those tests are excluded via
// //go:build !race and guarded with [RaceEnabled] where inline skipping is
// clearer.
package spscq
