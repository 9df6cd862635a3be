// Package trie is the word index: a 26-way prefix tree of lowercase ASCII
// words, each end node carrying how many times its word was inserted.
package trie

// AlphabetSize is the number of child slots per node (a-z).
const AlphabetSize = 26

// Node is one position in the prefix space.
// freq is only meaningful when end is set.
type Node struct {
	children [AlphabetSize]*Node
	end      bool
	freq     int
}

// Child returns the child for letter index i (0 = 'a'), or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= AlphabetSize {
		return nil
	}
	return n.children[i]
}

// IsEnd reports whether the path to n spells a complete word.
func (n *Node) IsEnd() bool {
	return n.end
}

// Frequency returns the insert count of the word ending at n.
func (n *Node) Frequency() int {
	return n.freq
}

// Stats holds basic counters of the index
type Stats struct {
	Words   int
	Inserts int
	Nodes   int
}

// Trie owns the whole node tree through its root.
type Trie struct {
	root  *Node
	stats Stats
}

// New creates an empty index.
func New() *Trie {
	return &Trie{
		root:  &Node{},
		stats: Stats{Nodes: 1},
	}
}

// Index maps a byte to its child slot. ok is false outside 'a'..'z'.
func Index(c byte) (int, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}

// Key returns the path Insert would follow for word, which is word
// with every out-of-alphabet byte removed.
func Key(word string) string {
	for i := 0; i < len(word); i++ {
		if _, ok := Index(word[i]); !ok {
			buf := make([]byte, 0, len(word))
			buf = append(buf, word[:i]...)
			for j := i + 1; j < len(word); j++ {
				if _, ok := Index(word[j]); ok {
					buf = append(buf, word[j])
				}
			}
			return string(buf)
		}
	}
	return word
}

// Insert adds one occurrence of word and returns its new frequency.
// Bytes outside a-z are skipped instead of rejecting the word; a word
// with no letters at all is ignored and 0 is returned.
func (t *Trie) Insert(word string) int {
	crawler := t.root
	depth := 0
	for i := 0; i < len(word); i++ {
		idx, ok := Index(word[i])
		if !ok {
			continue
		}
		if crawler.children[idx] == nil {
			crawler.children[idx] = &Node{}
			t.stats.Nodes++
		}
		crawler = crawler.children[idx]
		depth++
	}
	if depth == 0 {
		return 0
	}
	if !crawler.end {
		crawler.end = true
		t.stats.Words++
	}
	crawler.freq++
	t.stats.Inserts++
	return crawler.freq
}

// FindPrefixNode returns the node reached by text. Any missing child or
// out-of-alphabet byte is a miss; the empty text returns the root.
func (t *Trie) FindPrefixNode(text string) (*Node, bool) {
	crawler := t.root
	for i := 0; i < len(text); i++ {
		idx, ok := Index(text[i])
		if !ok {
			return nil, false
		}
		if crawler.children[idx] == nil {
			return nil, false
		}
		crawler = crawler.children[idx]
	}
	return crawler, true
}

// IsWord reports whether word was inserted.
func (t *Trie) IsWord(word string) bool {
	node, ok := t.FindPrefixNode(word)
	return ok && node.end
}

// Lookup returns the frequency of word and whether it is a complete word.
func (t *Trie) Lookup(word string) (int, bool) {
	node, ok := t.FindPrefixNode(word)
	if !ok || !node.end {
		return 0, false
	}
	return node.freq, true
}

// Root returns the root node.
func (t *Trie) Root() *Node {
	return t.root
}

// Stats returns the current counters.
func (t *Trie) Stats() Stats {
	return t.stats
}
