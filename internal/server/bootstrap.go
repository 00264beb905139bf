package server

import (
	"net/http"
	"sync"
)

// Bootstrap guards one-time handler construction in serverless
// deployments, where several cold-start requests can arrive before
// initialization finishes. All of them share a single in-flight
// attempt; a failed attempt is retried by the next request instead of
// being cached forever.
type Bootstrap struct {
	mu      sync.RWMutex
	handler http.Handler
	initFn  func() (http.Handler, error)
}

// NewBootstrap wraps the given initializer.
func NewBootstrap(initFn func() (http.Handler, error)) *Bootstrap {
	return &Bootstrap{initFn: initFn}
}

// Handler returns the initialized handler, running the initializer at
// most once across concurrent callers. Uses double-checked locking so
// the steady state is a read lock.
func (b *Bootstrap) Handler() (http.Handler, error) {
	b.mu.RLock()
	h := b.handler
	b.mu.RUnlock()
	if h != nil {
		return h, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Double-check after acquiring the write lock: another request may
	// have finished initialization while this one was blocked.
	if b.handler != nil {
		return b.handler, nil
	}

	h, err := b.initFn()
	if err != nil {
		return nil, err
	}
	b.handler = h
	return h, nil
}
