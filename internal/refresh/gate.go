// Package refresh implements the alert-feed polling cadence: a wall-clock
// gate that opens at most once per interval no matter how often it is asked.
package refresh

import (
	"sync"
	"time"
)

// Gate rate-limits a timer-triggered re-read. The first Due call after
// construction reports true so a fresh feed is fetched immediately.
type Gate struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func NewGate(interval time.Duration) *Gate {
	return &Gate{interval: interval}
}

// Due reports whether the interval has elapsed since the last granted
// refresh, and if so consumes it. Callers polling faster than the interval
// get false and should serve their cached view.
func (g *Gate) Due(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.last.IsZero() && now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	return true
}
