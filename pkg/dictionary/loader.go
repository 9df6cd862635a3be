package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultPattern matches corpus files inside a directory.
const DefaultPattern = "*.txt"

// Inserter receives the words of a corpus.
type Inserter interface {
	AddWord(word string) int
}

// LoaderStats provides statistics about a load.
type LoaderStats struct {
	Files        int
	Words        int
	Ignored      int
	DroppedChars int
	Duration     time.Duration
}

// Add accumulates other into s.
func (s *LoaderStats) Add(other LoaderStats) {
	s.Files += other.Files
	s.Words += other.Words
	s.Ignored += other.Ignored
	s.DroppedChars += other.DroppedChars
	s.Duration += other.Duration
}

// Loader feeds tokenized corpora into an Inserter.
type Loader struct {
	target    Inserter
	maxLength int
}

// NewLoader creates a loader. Words are cut to maxLength-1 letters so a
// stored word always fits the index bound; maxLength <= 1 disables the cut.
func NewLoader(target Inserter, maxLength int) *Loader {
	return &Loader{target: target, maxLength: maxLength}
}

// LoadReader tokenizes r and inserts every word.
func (l *Loader) LoadReader(r io.Reader) (LoaderStats, error) {
	start := time.Now()
	var stats LoaderStats

	tok := NewTokenizer(r, l.maxLength-1)
	for {
		word, err := tok.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read corpus: %w", err)
		}
		if l.target.AddWord(word) == 0 {
			stats.Ignored++
			continue
		}
		stats.Words++
	}

	stats.DroppedChars = tok.Dropped()
	stats.Duration = time.Since(start)
	if stats.DroppedChars > 0 {
		log.Debugf("Dropped %d letters from overlong words", stats.DroppedChars)
	}
	return stats, nil
}

// LoadFile loads a single corpus file.
func (l *Loader) LoadFile(path string) (LoaderStats, error) {
	if err := ValidateCorpusFile(path); err != nil {
		return LoaderStats{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return LoaderStats{}, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer file.Close()

	stats, err := l.LoadReader(file)
	if err != nil {
		return stats, fmt.Errorf("failed to load %s: %w", path, err)
	}
	stats.Files = 1
	log.Debugf("Loaded %d words from %s in %v", stats.Words, path, stats.Duration)
	return stats, nil
}

// LoadDir loads every file in dir matching pattern, in name order.
// An empty pattern means DefaultPattern.
func (l *Loader) LoadDir(dir, pattern string) (LoaderStats, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return LoaderStats{}, fmt.Errorf("failed to scan for corpus files: %w", err)
	}
	if len(files) == 0 {
		return LoaderStats{}, fmt.Errorf("no corpus files matching %s found in %s", pattern, dir)
	}
	sort.Strings(files)

	var total LoaderStats
	for _, file := range files {
		stats, err := l.LoadFile(file)
		if err != nil {
			return total, err
		}
		total.Add(stats)
	}
	return total, nil
}

// Load loads path as a directory or a single file.
func (l *Loader) Load(path string) (LoaderStats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return LoaderStats{}, fmt.Errorf("failed to stat corpus %s: %w", path, err)
	}
	if info.IsDir() {
		return l.LoadDir(path, DefaultPattern)
	}
	return l.LoadFile(path)
}
