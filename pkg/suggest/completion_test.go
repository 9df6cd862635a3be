package suggest

import (
	"fmt"
	"testing"

	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteRanksByFrequency(t *testing.T) {
	tr := trie.New()
	tr.Insert("apple")
	tr.Insert("apple")
	tr.Insert("apple")
	tr.Insert("app")

	result := Complete(tr, "app", DefaultMaxSuggestions)
	require.Equal(t, StatusOK, result.Status)
	assert.Equal(t, []Suggestion{
		{Word: "apple", Frequency: 3},
		{Word: "app", Frequency: 1},
	}, result.Suggestions)
	assert.False(t, result.Truncated)
}

func TestCompleteEmptyPrefix(t *testing.T) {
	tr := buildTrie(map[string]int{"a": 1, "b": 2, "c": 2, "ba": 4})

	result := Complete(tr, "", DefaultMaxSuggestions)
	require.Equal(t, StatusOK, result.Status)
	// ties keep alphabetical traversal order
	assert.Equal(t, []string{"ba", "b", "c", "a"}, words(result.Suggestions))
}

func TestCompleteEmptyConditions(t *testing.T) {
	testCases := []struct {
		description string
		words       map[string]int
		prefix      string
		status      Status
	}{
		{"unknown prefix", map[string]int{"cat": 1}, "dog", StatusPrefixUnknown},
		{"out-of-alphabet prefix", map[string]int{"cat": 1}, "c4", StatusPrefixUnknown},
		{"known prefix without words", map[string]int{}, "", StatusNoCompletions},
		{"prefix past every word", map[string]int{"cat": 1}, "cats", StatusPrefixUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			result := Complete(buildTrie(tc.words), tc.prefix, DefaultMaxSuggestions)
			assert.Equal(t, tc.status, result.Status)
			assert.True(t, result.Empty())
		})
	}
}

func TestCompleteCapacity(t *testing.T) {
	tr := buildTrie(map[string]int{"e": 9, "d": 1, "c": 1, "b": 1, "a": 1})

	result := Complete(tr, "", 3)
	assert.True(t, result.Truncated)
	// the first three words in traversal order, then ranked
	assert.Equal(t, []string{"a", "b", "c"}, words(result.Suggestions))

	exact := Complete(tr, "", 5)
	assert.False(t, exact.Truncated, "filling the capacity exactly drops nothing")
	assert.Len(t, exact.Suggestions, 5)
	assert.Equal(t, "e", exact.Suggestions[0].Word)
}

func TestCompleteWordIsOwnPrefix(t *testing.T) {
	tr := buildTrie(map[string]int{"car": 2, "cart": 1, "carton": 1, "cat": 5})

	result := Complete(tr, "car", DefaultMaxSuggestions)
	assert.Equal(t, []string{"car", "cart", "carton"}, words(result.Suggestions))
	for _, s := range result.Suggestions {
		assert.Zero(t, s.Distance)
	}
}

func TestResultLimit(t *testing.T) {
	r := Result{Suggestions: []Suggestion{{Word: "a"}, {Word: "b"}, {Word: "c"}}}

	assert.Len(t, r.Limit(2).Suggestions, 2)
	assert.Len(t, r.Limit(0).Suggestions, 3)
	assert.Len(t, r.Limit(10).Suggestions, 3)

	limited := r.Limit(0)
	limited.Suggestions[0].Word = "z"
	assert.Equal(t, "a", r.Suggestions[0].Word, "limit must copy")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "prefix_unknown", StatusPrefixUnknown.String())
	assert.Equal(t, "no_completions", StatusNoCompletions.String())
	assert.Equal(t, "no_corrections", StatusNoCorrections.String())
	assert.Equal(t, "status(42)", Status(42).String())
}

func BenchmarkComplete(b *testing.B) {
	tr := trie.New()
	for i := 0; i < 5000; i++ {
		tr.Insert(fmt.Sprintf("word%c%c", 'a'+i%26, 'a'+(i/26)%26))
	}
	prefixes := []string{"w", "wo", "wor", "word", "worda"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Complete(tr, prefixes[i%len(prefixes)], DefaultMaxSuggestions)
	}
}
