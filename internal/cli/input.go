// Package cli runs the interactive prompt used to try the dictionary by hand.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/cheynewallace/tabby"
)

const (
	exitCommand  = "exit"
	addCommand   = "!add"
	statsCommand = "!stats"
)

// InputHandler reads queries line by line and prints completions and
// spelling suggestions for each.
type InputHandler struct {
	completer    suggest.ICompleter
	in           *bufio.Reader
	out          io.Writer
	suggestLimit int
	noFilter     bool
	requestCount int
}

// NewInputHandler creates a handler reading from in and printing to out.
// limit <= 0 prints every collected suggestion.
func NewInputHandler(completer suggest.ICompleter, in io.Reader, out io.Writer, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		completer:    completer,
		in:           bufio.NewReader(in),
		out:          out,
		suggestLimit: limit,
		noFilter:     noFilter,
	}
}

// Start runs the prompt until "exit" or the end of input.
func (h *InputHandler) Start() error {
	fmt.Fprintf(h.out, "Enter a prefix/word, '%s <word>', '%s' or '%s' to quit:\n", addCommand, statsCommand, exitCommand)

	for {
		fmt.Fprint(h.out, "> ")
		line, err := h.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil

		line = strings.TrimSpace(line)
		if line == exitCommand {
			break
		}
		if line != "" {
			h.handleInput(line)
		}
		if eof {
			fmt.Fprintln(h.out)
			break
		}
	}
	log.Debugf("CLI handled %d requests", h.requestCount)
	return nil
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	switch {
	case line == statsCommand:
		h.printStats()
		return
	case line == addCommand || strings.HasPrefix(line, addCommand+" "):
		h.addWord(strings.TrimSpace(strings.TrimPrefix(line, addCommand)))
		return
	}

	query := strings.ToLower(line)
	if !h.noFilter && !utils.IsValidInput(query) {
		fmt.Fprintf(h.out, "'%s' is not a word: only letters a-z are accepted\n\n", line)
		return
	}

	start := time.Now()
	completion, correction := h.completer.Query(query, h.suggestLimit)
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), query)

	h.printCompletions(completion)
	fmt.Fprintln(h.out, "---")
	if correction == nil {
		fmt.Fprintf(h.out, "'%s' is spelled correctly\n", query)
	} else {
		h.printCorrections(*correction)
	}
	fmt.Fprintln(h.out)
}

func (h *InputHandler) addWord(word string) {
	if word == "" {
		fmt.Fprintf(h.out, "Usage: %s <word_to_add>\n\n", addCommand)
		return
	}
	word = strings.ToLower(word)
	freq := h.completer.AddWord(word)
	if freq == 0 {
		fmt.Fprintf(h.out, "'%s' holds no letters, nothing added\n\n", word)
		return
	}
	fmt.Fprintf(h.out, "Added/updated '%s' in the dictionary (freq: %s)\n\n", word, utils.FormatWithCommas(freq))
}

func (h *InputHandler) printCompletions(r suggest.Result) {
	switch r.Status {
	case suggest.StatusPrefixUnknown:
		fmt.Fprintln(h.out, "Autocomplete: No suggestions found.")
		return
	case suggest.StatusNoCompletions:
		fmt.Fprintln(h.out, "Autocomplete Suggestions (sorted by frequency):")
		fmt.Fprintln(h.out, "  (Prefix is valid, but no complete words match.)")
		return
	}

	fmt.Fprintln(h.out, "Autocomplete Suggestions (sorted by frequency):")
	table := h.newTable()
	table.AddHeader("RANK", "WORD", "FREQ")
	for i, s := range r.Suggestions {
		table.AddLine(i+1, s.Word, utils.FormatWithCommas(s.Frequency))
	}
	table.Print()
	h.printTruncation(r)
}

func (h *InputHandler) printCorrections(r suggest.Result) {
	fmt.Fprintln(h.out, "Spell-Check Suggestions:")
	if r.Empty() {
		fmt.Fprintln(h.out, "  No spell-check suggestions found.")
		return
	}

	table := h.newTable()
	table.AddHeader("RANK", "WORD", "FREQ", "DISTANCE")
	for i, s := range r.Suggestions {
		table.AddLine(i+1, s.Word, utils.FormatWithCommas(s.Frequency), s.Distance)
	}
	table.Print()
	h.printTruncation(r)
}

func (h *InputHandler) printTruncation(r suggest.Result) {
	if r.Truncated {
		fmt.Fprintln(h.out, "  (suggestion cap reached, more words exist)")
	}
	if r.CandidatesCapped {
		fmt.Fprintln(h.out, "  (candidate cap reached, search was partial)")
	}
}

func (h *InputHandler) printStats() {
	stats := h.completer.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := h.newTable()
	table.AddHeader("STAT", "VALUE")
	for _, k := range keys {
		table.AddLine(k, utils.FormatWithCommas(stats[k]))
	}
	table.Print()
	fmt.Fprintln(h.out)
}

func (h *InputHandler) newTable() *tabby.Tabby {
	return tabby.NewCustom(tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0))
}
