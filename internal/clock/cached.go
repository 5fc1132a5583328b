// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clock

import (
	"sync"
	"time"
)

// Cached refreshes its notion of now on a fixed background tick instead of
// calling time.Now on every read, trading precision for fewer syscalls —
// useful for a caller that polls the clock far more often than its timing
// decisions need resolution for.
type Cached struct {
	mu       sync.RWMutex
	now      time.Time
	interval time.Duration
	stop     chan struct{}
	once     sync.Once
}

// NewCached starts a Cached clock that refreshes every interval.
func NewCached(interval time.Duration) *Cached {
	c := &Cached{now: time.Now(), interval: interval, stop: make(chan struct{})}
	go c.run(interval)
	return c
}

func (c *Cached) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.now = time.Now()
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}

// Now returns the most recently cached time.
func (c *Cached) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Resolution returns the refresh interval: two Now calls inside the same
// interval are indistinguishable.
func (c *Cached) Resolution() time.Duration {
	return c.interval
}

// Close stops the background refresh goroutine. Safe to call more than
// once.
func (c *Cached) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}
