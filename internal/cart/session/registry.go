// Package session keeps one cart store per client session.
package session

import (
	"context"
	"sync"
	"time"

	"givehope_backend/internal/cart/domain"
	"givehope_backend/internal/cart/storage"
	"givehope_backend/platform/logger"
)

// Registry lazily creates a domain.Store per session id, scoped to its own
// namespace in the backend. A store is created once per session, which is
// the point where persisted state gets loaded.
type Registry struct {
	backend storage.Backend
	idle    time.Duration
	log     *logger.Logger
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	once     sync.Once
	mu       sync.Mutex
	store    *domain.Store
	lastUsed time.Time
}

// New creates a registry. A zero idle duration disables eviction.
func New(backend storage.Backend, idle time.Duration, log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Discard()
	}
	return &Registry{
		backend: backend,
		idle:    idle,
		log:     log,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Store returns the session's cart store, creating it on first use.
func (r *Registry) Store(ctx context.Context, sessionID string) *domain.Store {
	return r.entry(ctx, sessionID).store
}

// With runs fn against the session's store while holding the session lock,
// so a read-then-dispatch sequence is not interleaved with other requests
// on the same session.
func (r *Registry) With(ctx context.Context, sessionID string, fn func(*domain.Store) (domain.State, error)) (domain.State, error) {
	e := r.entry(ctx, sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.store)
}

func (r *Registry) entry(ctx context.Context, sessionID string) *entry {
	r.mu.Lock()
	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{}
		r.entries[sessionID] = e
	}
	e.lastUsed = r.now()
	r.mu.Unlock()

	e.once.Do(func() {
		// The initial load must not be cut short by the first request going away.
		initCtx := context.WithoutCancel(ctx)
		scoped := storage.Scope(r.backend, "session", sessionID)
		e.store = domain.NewStore(initCtx, scoped, r.log)
	})
	return e
}

// Sweep drops stores idle since before now-idle and returns how many were
// dropped. Their state stays in the backend and is reloaded on next use.
func (r *Registry) Sweep(now time.Time) int {
	if r.idle <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, e := range r.entries {
		if now.Sub(e.lastUsed) > r.idle {
			delete(r.entries, id)
			dropped++
		}
	}
	return dropped
}

// Run sweeps on every tick until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if r.idle <= 0 || interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			if n := r.Sweep(t); n > 0 {
				r.log.Debug("cart sessions evicted", "count", n)
			}
		}
	}
}

// Len returns the number of live stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
