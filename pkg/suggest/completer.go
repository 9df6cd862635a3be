package suggest

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

// DefaultCachePrefixes is the default hot cache size.
const DefaultCachePrefixes = 1024

// Completer owns one word index and answers completion and correction
// queries against it. Reads run concurrently; AddWord is exclusive.
type Completer struct {
	trie     *trie.Trie
	limits   Limits
	hotCache *HotCache
	queries  atomic.Int64
	mu       sync.RWMutex
}

// NewCompleter creates an empty completer. cachePrefixes <= 0 disables
// the hot cache.
func NewCompleter(limits Limits, cachePrefixes int) *Completer {
	c := &Completer{
		trie:   trie.New(),
		limits: limits.Normalize(),
	}
	if cachePrefixes > 0 {
		c.hotCache = NewHotCache(cachePrefixes)
	}
	return c
}

// AddWord inserts one occurrence of word and returns its new frequency.
func (c *Completer) AddWord(word string) int {
	key := trie.Key(word)
	if key == "" {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	freq := c.trie.Insert(key)
	c.hotCache.Invalidate(key)
	return freq
}

// IsWord reports whether word is in the dictionary.
func (c *Completer) IsWord(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trie.IsWord(word)
}

// Frequency returns how often word was added, 0 when it is unknown.
func (c *Completer) Frequency(word string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	freq, _ := c.trie.Lookup(word)
	return freq
}

// Complete returns completions for prefix; limit <= 0 returns every
// collected word.
func (c *Completer) Complete(prefix string, limit int) Result {
	start := time.Now()
	c.queries.Add(1)
	if cached, ok := c.hotCache.Get(prefix); ok {
		log.Debugf("Hot cache hit for '%s'", prefix)
		return cached.Limit(limit)
	}

	// the result is cached under the read lock so an insert cannot
	// slip in between computing and storing it
	c.mu.RLock()
	result := Complete(c.trie, prefix, c.limits.MaxSuggestions)
	c.hotCache.Put(prefix, result)
	c.mu.RUnlock()

	log.Debugf("Completed '%s' in %v: %d words (%s)", prefix, time.Since(start), len(result.Suggestions), result.Status)
	return result.Limit(limit)
}

// Correct returns spelling corrections for word; limit <= 0 returns every
// collected word.
func (c *Completer) Correct(word string, limit int) Result {
	start := time.Now()
	c.queries.Add(1)

	c.mu.RLock()
	result := Correct(c.trie, word, c.limits)
	c.mu.RUnlock()

	log.Debugf("Corrected '%s' in %v: %d words (%s)", word, time.Since(start), len(result.Suggestions), result.Status)
	return result.Limit(limit)
}

// Query completes text and, when text is not a dictionary word, also
// corrects it. correction is nil for a known word.
func (c *Completer) Query(text string, limit int) (completion Result, correction *Result) {
	completion = c.Complete(text, limit)
	if c.IsWord(text) {
		return completion, nil
	}
	corrected := c.Correct(text, limit)
	return completion, &corrected
}

// Limits returns the active capacity bounds.
func (c *Completer) Limits() Limits {
	return c.limits
}

// Stats returns counters about the dictionary and the cache.
func (c *Completer) Stats() map[string]int {
	c.mu.RLock()
	trieStats := c.trie.Stats()
	c.mu.RUnlock()

	stats := map[string]int{
		"totalWords":     trieStats.Words,
		"totalInserts":   trieStats.Inserts,
		"trieNodes":      trieStats.Nodes,
		"queries":        int(c.queries.Load()),
		"maxSuggestions": c.limits.MaxSuggestions,
	}
	for k, v := range c.hotCache.Stats() {
		stats[k] = v
	}
	return stats
}
