package share

import (
	"slices"
	"time"

	ttlworker "github.com/FloatTech/ttl"

	"github.com/moyoez/portfolio-resolver/tool"
	"github.com/moyoez/portfolio-resolver/types"
)

// ListingCache keeps successful directory listings for a fixed TTL.
type ListingCache struct {
	ttl   time.Duration
	cache *ttlworker.Cache[string, []types.Entry]
}

// NewListingCache returns nil for a non-positive ttl; a nil cache never hits.
func NewListingCache(ttl time.Duration) *ListingCache {
	if ttl <= 0 {
		return nil
	}
	return &ListingCache{
		ttl:   ttl,
		cache: ttlworker.NewCache[string, []types.Entry](ttl),
	}
}

func (l *ListingCache) Get(dir string) ([]types.Entry, bool) {
	if l == nil {
		return nil, false
	}
	entries := l.cache.Get(dir)
	if entries == nil {
		return nil, false
	}
	tool.DefaultLogger.Debugf("Listing cache hit: %s", dir)
	return slices.Clone(entries), true
}

// Set stores a copy of entries. Empty listings are not cached.
func (l *ListingCache) Set(dir string, entries []types.Entry) {
	if l == nil || len(entries) == 0 {
		return
	}
	l.cache.Set(dir, slices.Clone(entries))
	tool.DefaultLogger.Debugf("Listing cached: %s (%d entries, ttl %s)", dir, len(entries), l.ttl)
}

func (l *ListingCache) Delete(dir string) {
	if l == nil {
		return
	}
	l.cache.Delete(dir)
}

// Keys lists the cached directories.
func (l *ListingCache) Keys() []string {
	if l == nil {
		return nil
	}
	keys := make([]string, 0)
	err := l.cache.Range(func(k string, _ []types.Entry) error {
		keys = append(keys, k)
		return nil
	})
	if err != nil {
		return nil
	}
	slices.Sort(keys)
	return keys
}
