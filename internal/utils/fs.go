package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DirCheckResult represents the result of dir checks
type DirCheckResult struct {
	Exists   bool
	Writable bool
	Error    error
}

// FileExists reports whether path can be stat'ed.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates dirPath and its parents when missing.
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// SaveTOMLFile encodes v as TOML into path, replacing any existing file.
func SaveTOMLFile(v any, path string) error {
	file, err := os.Create(path)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(v)
}

// GetAbsolutePath returns path made absolute, or "unknown" for "".
func GetAbsolutePath(path string) string {
	if path == "" {
		return "unknown"
	}
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	}
	return path
}

// GetExecutableDir returns the directory holding the running binary.
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Dir(execPath), nil
}

// CheckDirStatus tests whether dirPath exists (creating it if needed) and
// is writable.
func CheckDirStatus(dirPath string) DirCheckResult {
	result := DirCheckResult{}
	if _, err := os.Stat(dirPath); err != nil {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			result.Error = err
			log.Warnf("Cannot create directory %s: %v", dirPath, err)
			return result
		}
	}
	result.Exists = true
	result.Writable = testWriteAccess(dirPath)
	return result
}

func testWriteAccess(dirPath string) bool {
	probe, err := os.CreateTemp(dirPath, ".write_test*")
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dirPath, err)
		return false
	}
	probe.Close()
	os.Remove(probe.Name())
	return true
}
