package usecase

import "sync"

// Gate serializes every operation that touches the mutable configuration
// surface. Apply and restore share one Gate: a restore running concurrently
// with the backup phase of the next apply would corrupt state, so both sides
// acquire the same lock and fail fast with ErrApplyInProgress when busy.
type Gate struct {
	mu sync.Mutex
}

// NewGate creates an idle gate.
func NewGate() *Gate {
	return &Gate{}
}

// TryAcquire takes the gate without blocking. It returns false when another
// operation holds it.
func (g *Gate) TryAcquire() bool {
	return g.mu.TryLock()
}

// Release frees the gate.
func (g *Gate) Release() {
	g.mu.Unlock()
}
