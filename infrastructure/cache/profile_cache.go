package cache

import (
	"sync"
	"time"

	"github.com/MannavaSravanthi/user-management-ui/models"
)

const (
	// entryTTL matches the profile cookie lifetime: once the cookie has
	// expired the browser can never present its key again, so the entry is
	// unreachable garbage.
	entryTTL = 30 * 24 * time.Hour

	sweepInterval = time.Hour
)

type profileEntry struct {
	profile models.Profile
	addedAt time.Time
}

// ProfileCache keeps session profiles in memory in front of the sqlite store.
// Entries expire after the profile cookie lifetime; expired entries are
// dropped on access and swept opportunistically on writes.
type ProfileCache struct {
	mu        sync.Mutex
	profiles  map[string]profileEntry
	now       func() time.Time
	lastSweep time.Time
}

func NewProfileCache() *ProfileCache {
	return &ProfileCache{
		profiles: make(map[string]profileEntry),
		now:      time.Now,
	}
}

func (c *ProfileCache) Add(p models.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.profiles[p.ID] = profileEntry{profile: p, addedAt: now}
	c.sweepLocked(now)
}

func (c *ProfileCache) Find(id string) (models.Profile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.profiles[id]
	if !ok {
		return models.Profile{}, false
	}
	if c.now().Sub(e.addedAt) > entryTTL {
		delete(c.profiles, id)
		return models.Profile{}, false
	}
	return e.profile, true
}

func (c *ProfileCache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.profiles, id)
}

// sweepLocked drops expired entries, at most once per sweep interval.
func (c *ProfileCache) sweepLocked(now time.Time) {
	if now.Sub(c.lastSweep) < sweepInterval {
		return
	}
	c.lastSweep = now
	for id, e := range c.profiles {
		if now.Sub(e.addedAt) > entryTTL {
			delete(c.profiles, id)
		}
	}
}
