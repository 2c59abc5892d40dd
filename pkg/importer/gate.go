package importer

import "sync/atomic"

// Gate is a single-flight guard around a long-running import. TryAcquire is a
// non-blocking poll: there is no queue and no fairness, the loser simply
// reports busy.
type Gate struct {
	busy atomic.Bool
}

// TryAcquire claims the gate. It reports false when another holder is active.
func (g *Gate) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

// Release frees the gate for the next caller.
func (g *Gate) Release() {
	g.busy.Store(false)
}
