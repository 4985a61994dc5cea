package directory

import (
	"sync"
	"time"
)

const (
	// sessionTTL matches the profile cookie lifetime; a directory idle that
	// long belongs to a session whose key the browser can no longer present.
	sessionTTL = 30 * 24 * time.Hour

	sweepInterval = time.Hour
)

type registryEntry struct {
	dir      *Directory
	lastUsed time.Time
}

// Registry keeps one Directory per browser session so the cached page
// survives navigation and mutation-triggered refetches land in the right
// cache. Abandoned sessions age out after the session lifetime; logout drops
// them eagerly.
type Registry struct {
	mu        sync.Mutex
	dirs      map[string]*registryEntry
	newFn     func() *Directory
	now       func() time.Time
	lastSweep time.Time
}

func NewRegistry(newFn func() *Directory) *Registry {
	return &Registry{
		dirs:  make(map[string]*registryEntry),
		newFn: newFn,
		now:   time.Now,
	}
}

// For returns the directory for a session key, creating it on first use or
// when the previous one has aged out.
func (r *Registry) For(key string) *Directory {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.sweepLocked(now)

	e, ok := r.dirs[key]
	if !ok || now.Sub(e.lastUsed) > sessionTTL {
		e = &registryEntry{dir: r.newFn()}
		r.dirs[key] = e
	}
	e.lastUsed = now
	return e.dir
}

// Drop discards a session's directory, e.g. on logout.
func (r *Registry) Drop(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.dirs, key)
}

// sweepLocked drops aged-out sessions, at most once per sweep interval.
func (r *Registry) sweepLocked(now time.Time) {
	if now.Sub(r.lastSweep) < sweepInterval {
		return
	}
	r.lastSweep = now
	for key, e := range r.dirs {
		if now.Sub(e.lastUsed) > sessionTTL {
			delete(r.dirs, key)
		}
	}
}
