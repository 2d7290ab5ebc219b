package schedule

import "time"

// EngineConfig holds configuration options for the recurrence engine.
type EngineConfig struct {
	CacheEnabled bool
	Cache        CacheConfig
}

// DefaultEngineConfig provides sensible defaults: a reactive UI tends
// to re-request the same month repeatedly while the user navigates, so
// caching is on.
var DefaultEngineConfig = EngineConfig{
	CacheEnabled: true,
	Cache:        DefaultCacheConfig,
}

// LowMemoryConfig keeps only a handful of cached windows around.
var LowMemoryConfig = EngineConfig{
	CacheEnabled: true,
	Cache: CacheConfig{
		TTL:             5 * time.Minute,
		MaxEntries:      16,
		CleanupInterval: 2 * time.Minute,
	},
}

// DisabledCacheConfig turns off caching entirely; every Expand call
// recomputes from the raw templates.
var DisabledCacheConfig = EngineConfig{
	CacheEnabled: false,
}
