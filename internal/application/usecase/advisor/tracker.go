package advisor

import "sync"

// PendingTracker gates advice requests so each client has at most one in flight.
// It also remembers the last failure per client for the status endpoint.
type PendingTracker struct {
	mu       sync.RWMutex
	pending  map[string]struct{}
	failures map[string]*FailureReason
}

// NewPendingTracker creates a new in-memory pending tracker.
func NewPendingTracker() *PendingTracker {
	return &PendingTracker{
		pending:  make(map[string]struct{}),
		failures: make(map[string]*FailureReason),
	}
}

// TryStart marks the client as pending. It returns false if the client
// already has a request in flight.
func (t *PendingTracker) TryStart(clientID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.pending[clientID]; ok {
		return false
	}
	t.pending[clientID] = struct{}{}
	return true
}

// Finish clears the pending mark for the client.
func (t *PendingTracker) Finish(clientID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, clientID)
}

// IsPending checks if the client has a request in flight.
func (t *PendingTracker) IsPending(clientID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.pending[clientID]
	return ok
}

// SetFailure stores the last failure for the client.
func (t *PendingTracker) SetFailure(clientID string, reason *FailureReason) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[clientID] = reason
}

// LastFailure retrieves the last failure for the client, or nil.
func (t *PendingTracker) LastFailure(clientID string) *FailureReason {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.failures[clientID]
}

// ClearFailure removes the stored failure for the client.
func (t *PendingTracker) ClearFailure(clientID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.failures, clientID)
}
