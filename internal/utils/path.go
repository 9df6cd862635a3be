package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// ResolveCorpusPath finds a corpus file or directory. Absolute paths are
// used as given; relative ones are tried against the working directory and
// then the executable's directory.
func ResolveCorpusPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no corpus path given")
	}
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("corpus not found: %w", err)
		}
		return path, nil
	}

	candidates := corpusCandidates(path)
	for _, candidate := range candidates {
		if FileExists(candidate) {
			log.Debugf("Resolved corpus %s to %s", path, candidate)
			return candidate, nil
		}
	}
	return "", fmt.Errorf("corpus %s not found in %v: %w", path, candidates, os.ErrNotExist)
}

func corpusCandidates(path string) []string {
	candidates := []string{GetAbsolutePath(path)}
	if execDir, err := GetExecutableDir(); err == nil {
		candidates = append(candidates, filepath.Join(execDir, path))
	}
	return candidates
}
