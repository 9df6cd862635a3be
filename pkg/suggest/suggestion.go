package suggest

import (
	"fmt"
	"sort"
)

// Suggestion is one ranked query result.
type Suggestion struct {
	Word      string
	Frequency int
	// Distance is the edit distance from the query; 0 for completions.
	Distance int `json:",omitempty"`
}

// String implements the stringer interface
func (s Suggestion) String() string {
	return fmt.Sprintf("{%s, %d, %d}", s.Word, s.Frequency, s.Distance)
}

// Status tells why a Result is empty, or StatusOK when it is not.
type Status int

const (
	StatusOK            Status = iota
	StatusPrefixUnknown        // no word starts with the prefix
	StatusNoCompletions        // prefix exists but no word lies under it
	StatusNoCorrections        // no dictionary word within reach
)

var statusNames = map[Status]string{
	StatusOK:            "ok",
	StatusPrefixUnknown: "prefix_unknown",
	StatusNoCompletions: "no_completions",
	StatusNoCorrections: "no_corrections",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Result is the output of a completion or correction query.
type Result struct {
	Query       string
	Status      Status
	Suggestions []Suggestion
	// Truncated is set when the suggestion cap dropped at least one word.
	Truncated bool
	// CandidatesCapped is set when distance-1 generation hit its cap.
	CandidatesCapped bool
}

// Empty reports whether the result holds no suggestions.
func (r Result) Empty() bool {
	return len(r.Suggestions) == 0
}

// Limit returns a copy of r keeping at most limit suggestions.
// limit <= 0 keeps everything. The suggestion slice is always copied.
func (r Result) Limit(limit int) Result {
	n := len(r.Suggestions)
	if limit > 0 && n > limit {
		n = limit
	}
	out := r
	out.Suggestions = append([]Suggestion(nil), r.Suggestions[:n]...)
	return out
}

// rankByFrequency orders suggestions by descending frequency.
// The sort is stable: equal frequencies keep their collection order.
func rankByFrequency(suggestions []Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Frequency > suggestions[j].Frequency
	})
}
