// Package suggest is the query core: subtree traversal for prefix
// completion, bounded edit generation for spelling correction, and the
// collector that dedups and ranks what both of them find.
package suggest

// ICompleter defines the interface for dictionary query engines
type ICompleter interface {
	// Complete returns ranked completions for a prefix with a limit
	Complete(prefix string, limit int) Result

	// Correct returns ranked spelling corrections for a word with a limit
	Correct(word string, limit int) Result

	// Query completes text and corrects it when it is not a word
	Query(text string, limit int) (Result, *Result)

	// AddWord inserts one occurrence of a word, returning its frequency
	AddWord(word string) int

	// IsWord reports whether a word is in the dictionary
	IsWord(word string) bool

	// Frequency returns how often a word was added, 0 when unknown
	Frequency(word string) int

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}

var _ ICompleter = (*Completer)(nil)
