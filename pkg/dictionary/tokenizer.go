package dictionary

import (
	"bufio"
	"io"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits a text stream into lowercase a-z words.
// Accented letters are folded to their base letter; every other
// character separates words.
type Tokenizer struct {
	reader  *bufio.Reader
	maxLen  int
	buf     []byte
	dropped int
}

// NewTokenizer reads words from r. Words are cut at maxLen letters;
// maxLen <= 0 keeps them whole.
func NewTokenizer(r io.Reader, maxLen int) *Tokenizer {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	return &Tokenizer{
		reader: bufio.NewReader(transform.NewReader(r, fold)),
		maxLen: maxLen,
		buf:    make([]byte, 0, 32),
	}
}

// Next returns the next word, or io.EOF once the input is exhausted.
func (t *Tokenizer) Next() (string, error) {
	t.buf = t.buf[:0]
	for {
		r, _, err := t.reader.ReadRune()
		if err != nil {
			if len(t.buf) > 0 && err == io.EOF {
				return string(t.buf), nil
			}
			return "", err
		}

		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		default:
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
			continue
		}

		if t.maxLen > 0 && len(t.buf) >= t.maxLen {
			t.dropped++
			continue
		}
		t.buf = append(t.buf, byte(r))
	}
}

// Dropped returns how many letters were cut from overlong words so far.
func (t *Tokenizer) Dropped() int {
	return t.dropped
}
