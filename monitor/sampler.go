// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monitor

import (
	"sync"
	"time"

	"code.hybscloud.com/spin"

	"code.hybscloud.com/spscq/internal/clock"
)

// Clock is the time source a Sampler measures frames against.
type Clock = clock.Clock

// Instrumented is the narrow view of a queue the Sampler needs: enough to
// read and reset the blocked counters, check EOF, and observe size,
// without this package importing the queue package back. Queue[T]
// satisfies this structurally; composition over inheritance for the
// overlay (see SPEC_FULL.md §3.2).
type Instrumented interface {
	GetAndZeroReadStats() (count uint32, blocked bool)
	GetAndZeroWriteStats() (count uint32, blocked bool)
	GetWriteFinished() bool
	Size() uint64
}

// Sampler is the background instrumentation task. It periodically
// snapshots and zeros a queue's blocked counters, classifies each frame as
// blocked, non-converged, or accepted, accumulates arrival, departure and
// occupancy statistics, and drives a FrameResolver to converge the
// sampling width to the queue's actual producer/consumer cycle time —
// reading, never mutating, queue payload state.
type Sampler struct {
	queue    Instrumented
	clock    Clock
	resolver *FrameResolver

	mu             sync.RWMutex
	stats          *Stats
	arrivalStarted bool

	stop    chan struct{}
	done    chan struct{}
	started sync.Once
	stopped sync.Once
}

// NewSampler creates a Sampler over queue, reading time from clk (the
// system clock if clk is nil), measuring item size as itemUnitBytes bytes
// for the derived byte rates, and starting with an initial sampling frame
// width of initialWidth.
func NewSampler(queue Instrumented, clk Clock, itemUnitBytes float64, initialWidth time.Duration) *Sampler {
	if clk == nil {
		clk = clock.System{}
	}
	return &Sampler{
		queue:    queue,
		clock:    clk,
		resolver: NewFrameResolver(float64(initialWidth)),
		stats:    NewStats(itemUnitBytes),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start spawns the Sampler's background goroutine. Safe to call only
// once; later calls are no-ops.
func (s *Sampler) Start() {
	s.started.Do(func() {
		go s.run()
	})
}

// Stop signals the Sampler to terminate and blocks until its goroutine
// has exited, leaving Stats in a state safe to read.
func (s *Sampler) Stop() {
	s.stopped.Do(func() {
		close(s.stop)
	})
	<-s.done
}

// Stats returns a point-in-time copy of the Sampler's accumulated
// statistics, safe to read concurrently with the running Sampler.
func (s *Sampler) Stats() *Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := *s.stats
	return &cp
}

func (s *Sampler) run() {
	defer close(s.done)

	prev := s.clock.Now()
	sw := spin.Wait{}
	for {
		target := prev.Add(time.Duration(s.resolver.Width()))
		for s.clock.Now().Before(target) {
			select {
			case <-s.stop:
				return
			default:
				sw.Once()
			}
		}

		now := s.clock.Now()
		realized := float64(now.Sub(prev))

		writeCount, writeBlocked := s.queue.GetAndZeroWriteStats()
		readCount, readBlocked := s.queue.GetAndZeroReadStats()
		writeFinished := s.queue.GetWriteFinished()
		occupancy := s.queue.Size()

		s.mu.Lock()
		if writeCount > 0 {
			s.arrivalStarted = true
		}
		if !writeBlocked && s.arrivalStarted && !writeFinished {
			s.resolver.SetBlocked(Write, false)
			if s.resolver.Converged() && s.resolver.AcceptEntry(realized) {
				s.stats.addArrival(uint64(writeCount), s.resolver.Width())
			}
		} else {
			s.resolver.SetBlocked(Write, true)
		}

		if !readBlocked {
			s.resolver.SetBlocked(Read, false)
			if s.resolver.Converged() && s.resolver.AcceptEntry(realized) {
				s.stats.addDeparture(uint64(readCount), s.resolver.Width())
			}
		} else {
			s.resolver.SetBlocked(Read, true)
		}

		s.stats.addOccupancy(occupancy)
		s.resolver.Update(realized)
		s.mu.Unlock()

		prev = now

		select {
		case <-s.stop:
			return
		default:
		}
	}
}
