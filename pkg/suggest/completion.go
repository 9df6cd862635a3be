package suggest

import (
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

// Complete returns the words of t that start with prefix, ranked by
// descending frequency. At most capacity words are collected, in
// alphabetical order, before ranking.
func Complete(t *trie.Trie, prefix string, capacity int) Result {
	result := Result{Query: prefix}

	node, ok := t.FindPrefixNode(prefix)
	if !ok {
		result.Status = StatusPrefixUnknown
		return result
	}

	collector := NewCollector(t, capacity)
	buf := make([]byte, len(prefix), len(prefix)+16)
	copy(buf, prefix)
	collectSubtree(node, buf, collector)

	result.Suggestions = collector.Ranked()
	result.Truncated = collector.Truncated()
	if result.Empty() {
		result.Status = StatusNoCompletions
		return result
	}
	if result.Truncated {
		log.Debugf("Completion for '%s' stopped at %d words", prefix, collector.Len())
	}
	return result
}

// collectSubtree walks node depth first, children in alphabetical order,
// and pushes every word found. It returns false once the collector refuses
// a word so the walk stops early.
func collectSubtree(node *trie.Node, buf []byte, collector *Collector) bool {
	if node.IsEnd() {
		if !collector.push(string(buf), node.Frequency()) {
			return false
		}
	}
	for i := 0; i < trie.AlphabetSize; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if !collectSubtree(child, append(buf, byte('a'+i)), collector) {
			return false
		}
	}
	return true
}
