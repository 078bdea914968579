package suggest

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
)

// ResultCache keeps the suggestions of recently corrected words. When full,
// the least recently used entry is evicted.
type ResultCache struct {
	entries    map[string][]string
	accessTime map[string]int64
	clock      int64
	hits       int
	misses     int
	maxEntries int
	mu         sync.Mutex
}

// NewResultCache returns a cache holding at most maxEntries words. A
// non-positive size returns nil, which disables caching.
func NewResultCache(maxEntries int) *ResultCache {
	if maxEntries <= 0 {
		return nil
	}
	return &ResultCache{
		entries:    make(map[string][]string, maxEntries),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns a copy of the cached suggestions for word.
func (rc *ResultCache) Get(word string) ([]string, bool) {
	if rc == nil {
		return nil, false
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	suggestions, ok := rc.entries[word]
	if !ok {
		rc.misses++
		return nil, false
	}
	rc.hits++
	rc.accessTime[word] = rc.tick()
	return append([]string(nil), suggestions...), true
}

// Put stores a copy of suggestions for word.
func (rc *ResultCache) Put(word string, suggestions []string) {
	if rc == nil {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if _, exists := rc.entries[word]; !exists && len(rc.entries) >= rc.maxEntries {
		rc.evictLRU()
	}
	rc.entries[word] = append([]string(nil), suggestions...)
	rc.accessTime[word] = rc.tick()
}

// Stats returns cache counters.
func (rc *ResultCache) Stats() map[string]int {
	if rc == nil {
		return map[string]int{"cacheEntries": 0, "maxCacheEntries": 0, "cacheHits": 0, "cacheMisses": 0}
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	return map[string]int{
		"cacheEntries":    len(rc.entries),
		"maxCacheEntries": rc.maxEntries,
		"cacheHits":       rc.hits,
		"cacheMisses":     rc.misses,
	}
}

func (rc *ResultCache) tick() int64 {
	rc.clock++
	return rc.clock
}

func (rc *ResultCache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = math.MaxInt64
	found := false

	for word, t := range rc.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldestWord = word
			found = true
		}
	}

	// "" is a valid key, so it cannot mark an empty scan
	if found {
		delete(rc.entries, oldestWord)
		delete(rc.accessTime, oldestWord)
		log.Debugf("Evicted '%s' from result cache", oldestWord)
	}
}
