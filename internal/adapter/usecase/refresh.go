package usecase

import "sync"

// Refresh is a broadcast signal with no payload. Orchestrators notify it
// after a successful write so that listing consumers re-fetch; subscribers
// that are not draining their channel miss beats instead of blocking the
// orchestrator.
type Refresh struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewRefresh() *Refresh {
	return &Refresh{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a listener. The returned cancel func must be called
// when the listener goes away.
func (r *Refresh) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	r.mu.Lock()
	r.subs[ch] = struct{}{}
	r.mu.Unlock()
	cancel := func() {
		r.mu.Lock()
		delete(r.subs, ch)
		r.mu.Unlock()
	}
	return ch, cancel
}

// Notify signals every subscriber without blocking.
func (r *Refresh) Notify() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for ch := range r.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
