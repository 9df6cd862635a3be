package dictionary

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// ValidateCorpusFile checks that path is a non-empty, readable regular file.
func ValidateCorpusFile(path string) error {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if !fileInfo.Mode().IsRegular() {
		return fmt.Errorf("corpus %s is not a regular file", path)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("corpus %s is empty", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	buffer := make([]byte, 1)
	if _, err := file.Read(buffer); err != nil {
		return fmt.Errorf("failed to read from corpus %s: %w", path, err)
	}

	log.Debugf("Corpus file %s validated (%d bytes)", path, fileInfo.Size())
	return nil
}
