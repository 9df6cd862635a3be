package suggest

import "github.com/bastiangx/wordtrie/pkg/trie"

// Default capacity bounds.
const (
	DefaultMaxWordLength  = 100
	DefaultMaxSuggestions = 200
	DefaultMaxCandidates  = 2000
	DefaultMaxDistance    = 2
	AlphabetSize          = trie.AlphabetSize
)

// Limits bounds the work and output of every query.
type Limits struct {
	// MaxWordLength caps query words; correction is skipped for words
	// of MaxWordLength-2 bytes or more.
	MaxWordLength int
	// MaxSuggestions caps a single result list.
	MaxSuggestions int
	// MaxCandidates caps the distance-1 candidate list per correction.
	MaxCandidates int
	// MaxDistance is 1 or 2.
	MaxDistance int
}

// DefaultLimits returns the stock bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxWordLength:  DefaultMaxWordLength,
		MaxSuggestions: DefaultMaxSuggestions,
		MaxCandidates:  DefaultMaxCandidates,
		MaxDistance:    DefaultMaxDistance,
	}
}

// Normalize replaces out-of-range values with defaults.
func (l Limits) Normalize() Limits {
	def := DefaultLimits()
	if l.MaxWordLength < 3 {
		l.MaxWordLength = def.MaxWordLength
	}
	if l.MaxSuggestions < 1 {
		l.MaxSuggestions = def.MaxSuggestions
	}
	if l.MaxCandidates < 1 {
		l.MaxCandidates = def.MaxCandidates
	}
	if l.MaxDistance < 1 || l.MaxDistance > 2 {
		l.MaxDistance = def.MaxDistance
	}
	return l
}
