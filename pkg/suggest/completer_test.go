package suggest

import (
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newTestCompleter(t *testing.T, ws ...string) *Completer {
	t.Helper()
	c := NewCompleter(DefaultLimits(), DefaultCachePrefixes)
	for _, w := range ws {
		c.AddWord(w)
	}
	return c
}

func TestCompleterAddWord(t *testing.T) {
	c := newTestCompleter(t)

	assert.Equal(t, 1, c.AddWord("apple"))
	assert.Equal(t, 2, c.AddWord("apple"))
	assert.Equal(t, 1, c.AddWord("it's"), "punctuation is dropped from the path")
	assert.Zero(t, c.AddWord("42"))

	assert.True(t, c.IsWord("apple"))
	assert.True(t, c.IsWord("its"))
	assert.Equal(t, 2, c.Frequency("apple"))
	assert.Zero(t, c.Frequency("pear"))

	stats := c.Stats()
	assert.Equal(t, 2, stats["totalWords"])
	assert.Equal(t, 3, stats["totalInserts"])
}

func TestCompleterInsertInvalidatesCache(t *testing.T) {
	c := newTestCompleter(t, "apple")

	first := c.Complete("ap", 0)
	require.Equal(t, []string{"apple"}, words(first.Suggestions))

	unknown := c.Complete("apr", 0)
	require.Equal(t, StatusPrefixUnknown, unknown.Status)

	cached := c.Complete("ap", 0)
	assert.Equal(t, first, cached)
	assert.Equal(t, 1, c.Stats()["hotCacheHits"])

	c.AddWord("apricot")
	c.AddWord("apricot")

	after := c.Complete("ap", 0)
	assert.Equal(t, []string{"apricot", "apple"}, words(after.Suggestions))

	known := c.Complete("apr", 0)
	assert.Equal(t, StatusOK, known.Status, "stale prefix-unknown result must be dropped")
}

func TestCompleterLimit(t *testing.T) {
	c := newTestCompleter(t, "cat", "car", "cart", "care", "cast")

	assert.Len(t, c.Complete("ca", 2).Suggestions, 2)
	assert.Len(t, c.Complete("ca", 0).Suggestions, 5)
	assert.Len(t, c.Correct("cst", 1).Suggestions, 1)
}

func TestCompleterQuery(t *testing.T) {
	c := newTestCompleter(t, "apple", "apple", "apple", "app", "test")

	completion, correction := c.Query("app", 10)
	assert.Equal(t, []string{"apple", "app"}, words(completion.Suggestions))
	assert.Nil(t, correction, "known words are not corrected")

	completion, correction = c.Query("tst", 10)
	assert.Equal(t, StatusPrefixUnknown, completion.Status)
	require.NotNil(t, correction)
	assert.Equal(t, []string{"test"}, words(correction.Suggestions))

	completion, correction = c.Query("xyzzy", 10)
	assert.Equal(t, StatusPrefixUnknown, completion.Status)
	require.NotNil(t, correction)
	assert.Equal(t, StatusNoCorrections, correction.Status)
}

func TestCompleterWithoutCache(t *testing.T) {
	c := NewCompleter(DefaultLimits(), 0)
	c.AddWord("zebra")

	assert.Equal(t, []string{"zebra"}, words(c.Complete("z", 0).Suggestions))
	_, hasCacheStats := c.Stats()["hotCachePrefixes"]
	assert.False(t, hasCacheStats)
}

func TestCompleterConcurrentAccess(t *testing.T) {
	c := newTestCompleter(t, "alpha", "beta", "gamma")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if i%4 == 0 {
					c.AddWord("alphabet")
					continue
				}
				c.Complete("al", 5)
				c.Correct("bta", 5)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, c.Frequency("alphabet"))
	assert.Equal(t, []string{"alphabet", "alpha"}, words(c.Complete("al", 0).Suggestions))
}
