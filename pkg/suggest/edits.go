package suggest

import (
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/hbollon/go-edlib"
)

// editCount is the number of distance-1 edits of an n byte word:
// deletions, transpositions, substitutions and insertions.
func editCount(n int) int {
	if n == 0 {
		return AlphabetSize
	}
	return n + (n - 1) + n*(AlphabetSize-1) + (n+1)*AlphabetSize
}

// forEachEdit calls emit with every distance-1 edit of word, in the order
// deletions, adjacent transpositions, substitutions, insertions. Edits are
// not validated and may repeat. It stops as soon as emit returns false and
// reports whether it ran to completion.
func forEachEdit(word string, emit func(string) bool) bool {
	n := len(word)
	buf := make([]byte, 0, n+1)

	for i := 0; i < n; i++ {
		buf = append(buf[:0], word[:i]...)
		buf = append(buf, word[i+1:]...)
		if !emit(string(buf)) {
			return false
		}
	}

	for i := 0; i < n-1; i++ {
		buf = append(buf[:0], word...)
		buf[i], buf[i+1] = buf[i+1], buf[i]
		if !emit(string(buf)) {
			return false
		}
	}

	for i := 0; i < n; i++ {
		buf = append(buf[:0], word...)
		for c := byte('a'); c <= 'z'; c++ {
			if c == word[i] {
				continue
			}
			buf[i] = c
			if !emit(string(buf)) {
				return false
			}
		}
	}

	for i := 0; i <= n; i++ {
		buf = append(buf[:0], word[:i]...)
		buf = append(buf, 'a')
		buf = append(buf, word[i:]...)
		for c := byte('a'); c <= 'z'; c++ {
			buf[i] = c
			if !emit(string(buf)) {
				return false
			}
		}
	}
	return true
}

// Edits1 returns up to limit distance-1 edits of word. capped is true when
// edits were dropped to stay within limit; limit <= 0 means no cap.
func Edits1(word string, limit int) (edits []string, capped bool) {
	size := editCount(len(word))
	if limit > 0 && size > limit {
		size = limit
	}
	edits = make([]string, 0, size)
	forEachEdit(word, func(edit string) bool {
		if limit > 0 && len(edits) >= limit {
			capped = true
			return false
		}
		edits = append(edits, edit)
		return true
	})
	return edits, capped
}

// Correct finds the dictionary words within limits.MaxDistance edits of
// word, ranked by descending frequency. Distance-2 edits are validated as
// they are generated, never stored.
func Correct(t *trie.Trie, word string, limits Limits) Result {
	limits = limits.Normalize()
	result := Result{Query: word, Status: StatusNoCorrections}

	if len(word) >= limits.MaxWordLength-2 {
		log.Debugf("Skipping correction for '%s': %d bytes exceeds limit", word, len(word))
		return result
	}

	candidates, capped := Edits1(word, limits.MaxCandidates)
	result.CandidatesCapped = capped
	if capped {
		log.Debugf("Candidate cap (%d) reached for '%s'", limits.MaxCandidates, word)
	}

	collector := NewCollector(t, limits.MaxSuggestions)
	addEdit := func(edit string) bool {
		collector.Add(edit)
		return !collector.Truncated()
	}

	for _, candidate := range candidates {
		if !addEdit(candidate) {
			break
		}
		if limits.MaxDistance < 2 || len(candidate) >= limits.MaxWordLength-2 {
			continue
		}
		if !forEachEdit(candidate, addEdit) {
			break
		}
	}

	result.Suggestions = collector.Ranked()
	result.Truncated = collector.Truncated()
	for i := range result.Suggestions {
		result.Suggestions[i].Distance = edlib.DamerauLevenshteinDistance(word, result.Suggestions[i].Word)
	}
	if !result.Empty() {
		result.Status = StatusOK
	}
	return result
}
