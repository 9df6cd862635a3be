package suggest

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// HotCache keeps ranked completion results for recently queried prefixes.
// Keys live in a patricia trie so an insert can drop every cached prefix
// of the inserted word in one walk.
type HotCache struct {
	hotTrie     *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	misses      int64
	maxPrefixes int
	mu          sync.Mutex
}

// NewHotCache creates a cache holding at most maxPrefixes results.
func NewHotCache(maxPrefixes int) *HotCache {
	return &HotCache{
		hotTrie:     patricia.NewTrie(),
		accessTime:  make(map[string]int64, maxPrefixes),
		maxPrefixes: maxPrefixes,
	}
}

// Get returns the cached result for prefix.
func (hc *HotCache) Get(prefix string) (Result, bool) {
	if hc == nil || prefix == "" {
		return Result{}, false
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	item := hc.hotTrie.Get(patricia.Prefix(prefix))
	if item == nil {
		hc.misses++
		return Result{}, false
	}
	hc.hits++
	hc.markAccessed(prefix)
	return item.(Result), true
}

// Put stores result under prefix, evicting the least recently used
// entry when full. The empty prefix is never cached.
func (hc *HotCache) Put(prefix string, result Result) {
	if hc == nil || prefix == "" || hc.maxPrefixes <= 0 {
		return
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	if _, exists := hc.accessTime[prefix]; !exists && len(hc.accessTime) >= hc.maxPrefixes {
		hc.evictLRU()
	}
	hc.hotTrie.Set(patricia.Prefix(prefix), result)
	hc.markAccessed(prefix)
}

// Invalidate drops every cached prefix of word.
func (hc *HotCache) Invalidate(word string) int {
	if hc == nil || word == "" {
		return 0
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	var stale []patricia.Prefix
	err := hc.hotTrie.VisitPrefixes(patricia.Prefix(word), func(p patricia.Prefix, item patricia.Item) error {
		stale = append(stale, append(patricia.Prefix(nil), p...))
		return nil
	})
	if err != nil {
		log.Errorf("Error walking hot cache prefixes: %v", err)
	}

	for _, p := range stale {
		hc.hotTrie.Delete(p)
		delete(hc.accessTime, string(p))
	}
	if len(stale) > 0 {
		log.Debugf("Invalidated %d cached prefixes of '%s'", len(stale), word)
	}
	return len(stale)
}

// Len returns the number of cached prefixes.
func (hc *HotCache) Len() int {
	if hc == nil {
		return 0
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()
	return len(hc.accessTime)
}

// Stats returns cache counters.
func (hc *HotCache) Stats() map[string]int {
	if hc == nil {
		return map[string]int{}
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	return map[string]int{
		"hotCachePrefixes": len(hc.accessTime),
		"maxHotPrefixes":   hc.maxPrefixes,
		"hotCacheHits":     int(hc.hits),
		"hotCacheMisses":   int(hc.misses),
	}
}

func (hc *HotCache) markAccessed(prefix string) {
	hc.accessCount++
	hc.accessTime[prefix] = hc.accessCount
}

func (hc *HotCache) evictLRU() {
	var oldestPrefix string
	var oldestTime int64 = math.MaxInt64

	for prefix, accessTime := range hc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestPrefix = prefix
		}
	}

	if oldestPrefix != "" {
		hc.hotTrie.Delete(patricia.Prefix(oldestPrefix))
		delete(hc.accessTime, oldestPrefix)
		log.Debugf("Evicted prefix '%s' from hot cache", oldestPrefix)
	}
}
