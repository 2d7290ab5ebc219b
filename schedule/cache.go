package schedule

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/lfmelo/agenda/caldate"
)

// cacheEntry is one cached expansion result.
type cacheEntry struct {
	instances  []EventInstance
	expiresAt  time.Time
	accessedAt time.Time
}

// ExpansionCache memoizes Expand results. The key is a hash of the
// complete input tuple (every template field plus the range), so any
// change to any input yields a different key and the stale entry is
// simply never hit again.
type ExpansionCache struct {
	entries         map[string]*cacheEntry
	mutex           sync.RWMutex
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

// CacheConfig holds configuration for the expansion cache.
type CacheConfig struct {
	TTL             time.Duration // How long entries stay valid
	MaxEntries      int           // Maximum number of entries before cleanup
	CleanupInterval time.Duration // How often to run cleanup
}

// DefaultCacheConfig provides sensible defaults for expansion caching.
var DefaultCacheConfig = CacheConfig{
	TTL:             15 * time.Minute,
	MaxEntries:      256,
	CleanupInterval: 5 * time.Minute,
}

// NewExpansionCache creates a cache with the given configuration and
// starts its cleanup goroutine.
func NewExpansionCache(config CacheConfig) *ExpansionCache {
	cache := &ExpansionCache{
		entries:         make(map[string]*cacheEntry),
		ttl:             config.TTL,
		maxEntries:      config.MaxEntries,
		cleanupInterval: config.CleanupInterval,
		stopCleanup:     make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// cacheKey hashes the full expansion input tuple.
func cacheKey(templates []EventTemplate, rangeStart, rangeEnd caldate.Date) string {
	hasher := sha256.New()

	fmt.Fprintf(hasher, "%s/%s", rangeStart, rangeEnd)

	for _, t := range templates {
		fmt.Fprintf(hasher, "|%s;%s;%s;%s;%s;%s;%s;%s;%s;%t;%d",
			t.ID, t.Title, t.disciplineID(), t.Kind,
			t.StartDate, t.EndDate, t.StartTime, t.EndTime,
			t.Location, t.Recurring, t.RecurrenceDays)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil))
}

// Get retrieves a cached result if present and not expired. The
// returned slice is a copy; callers may mutate it freely.
func (c *ExpansionCache) Get(templates []EventTemplate, rangeStart, rangeEnd caldate.Date) ([]EventInstance, bool) {
	key := cacheKey(templates, rangeStart, rangeEnd)

	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, false
	}

	now := time.Now()
	if now.After(entry.expiresAt) {
		c.mutex.Lock()
		delete(c.entries, key)
		c.mutex.Unlock()
		return nil, false
	}

	c.mutex.Lock()
	entry.accessedAt = now
	c.mutex.Unlock()

	return cloneInstances(entry.instances), true
}

// Set stores an expansion result.
func (c *ExpansionCache) Set(templates []EventTemplate, rangeStart, rangeEnd caldate.Date, instances []EventInstance) {
	key := cacheKey(templates, rangeStart, rangeEnd)
	now := time.Now()

	entry := &cacheEntry{
		instances:  cloneInstances(instances),
		expiresAt:  now.Add(c.ttl),
		accessedAt: now,
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = entry

	if len(c.entries) > c.maxEntries {
		c.cleanup()
	}
}

func cloneInstances(in []EventInstance) []EventInstance {
	if in == nil {
		return nil
	}
	out := make([]EventInstance, len(in))
	copy(out, in)
	return out
}

// cleanup removes expired entries, then the least recently accessed
// ones while still over the limit. Caller must hold the write lock.
func (c *ExpansionCache) cleanup() {
	now := time.Now()

	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	for len(c.entries) > c.maxEntries {
		var oldestKey string
		var oldestAccess time.Time
		for key, entry := range c.entries {
			if oldestKey == "" || entry.accessedAt.Before(oldestAccess) {
				oldestKey = key
				oldestAccess = entry.accessedAt
			}
		}
		delete(c.entries, oldestKey)
	}
}

func (c *ExpansionCache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mutex.Lock()
			c.cleanup()
			c.mutex.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// Close stops the cleanup goroutine and clears the cache.
func (c *ExpansionCache) Close() {
	close(c.stopCleanup)
	c.mutex.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mutex.Unlock()
}

// Stats returns cache statistics.
func (c *ExpansionCache) Stats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entryCount := len(c.entries)
	expiredCount := 0
	now := time.Now()

	for _, entry := range c.entries {
		if now.After(entry.expiresAt) {
			expiredCount++
		}
	}

	return CacheStats{
		TotalEntries:   entryCount,
		ExpiredEntries: expiredCount,
		ActiveEntries:  entryCount - expiredCount,
	}
}

// CacheStats provides information about cache occupancy.
type CacheStats struct {
	TotalEntries   int
	ExpiredEntries int
	ActiveEntries  int
}
