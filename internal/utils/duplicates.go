package utils

// SuggestionFilter drops words already seen, used when merging several
// ranked lists into one.
type SuggestionFilter struct {
	seenWords map[string]struct{}
}

// NewSuggestionFilter creates a filter that also rejects every word in exclude.
func NewSuggestionFilter(exclude ...string) *SuggestionFilter {
	f := &SuggestionFilter{seenWords: make(map[string]struct{})}
	for _, w := range exclude {
		f.seenWords[w] = struct{}{}
	}
	return f
}

// ShouldInclude returns true the first time word is seen.
func (f *SuggestionFilter) ShouldInclude(word string) bool {
	if _, seen := f.seenWords[word]; seen {
		return false
	}
	f.seenWords[word] = struct{}{}
	return true
}
