package suggest

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Index is the read side of the word index the collector validates against.
type Index interface {
	Lookup(word string) (int, bool)
}

// Collector accumulates distinct dictionary words up to a fixed capacity.
type Collector struct {
	index       Index
	capacity    int
	suggestions []Suggestion
	seen        mapset.Set[string]
	truncated   bool
}

// NewCollector creates a collector bounded by capacity.
func NewCollector(index Index, capacity int) *Collector {
	if capacity < 1 {
		capacity = DefaultMaxSuggestions
	}
	initial := capacity
	if initial > 64 {
		initial = 64
	}
	return &Collector{
		index:       index,
		capacity:    capacity,
		suggestions: make([]Suggestion, 0, initial),
		seen:        mapset.NewThreadUnsafeSet[string](),
	}
}

// Add collects word with its current frequency. Words that are not in the
// index, were already collected, or arrive once the collector is full are
// ignored. Returns true if the word was appended.
func (c *Collector) Add(word string) bool {
	freq, ok := c.index.Lookup(word)
	if !ok {
		return false
	}
	if c.seen.Contains(word) {
		return false
	}
	if c.Full() {
		c.truncated = true
		return false
	}
	c.seen.Add(word)
	c.suggestions = append(c.suggestions, Suggestion{Word: word, Frequency: freq})
	return true
}

// push appends an already validated, distinct word.
func (c *Collector) push(word string, freq int) bool {
	if c.Full() {
		c.truncated = true
		return false
	}
	c.seen.Add(word)
	c.suggestions = append(c.suggestions, Suggestion{Word: word, Frequency: freq})
	return true
}

// Len returns the number of collected words.
func (c *Collector) Len() int {
	return len(c.suggestions)
}

// Full reports whether the capacity is reached.
func (c *Collector) Full() bool {
	return len(c.suggestions) >= c.capacity
}

// Truncated reports whether a valid new word was refused for capacity.
func (c *Collector) Truncated() bool {
	return c.truncated
}

// Ranked returns the collected words sorted by descending frequency,
// equal frequencies in collection order.
func (c *Collector) Ranked() []Suggestion {
	out := make([]Suggestion, len(c.suggestions))
	copy(out, c.suggestions)
	rankByFrequency(out)
	return out
}
