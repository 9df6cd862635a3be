package utils

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes a TOML file into v. Keys v does not know are logged.
func LoadTOMLFile(path string, v any) error {
	meta, err := toml.DecodeFile(path, v)
	if err != nil {
		log.Warnf("TOML parsing error in %s: %v. Attempting partial recovery...", path, err)
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Warnf("Ignoring unknown keys in %s: %v", path, undecoded)
	}
	return nil
}

// ParseTOMLWithRecovery decodes a TOML file into a generic map, so sections
// that are well formed can be used even when the file does not fit the
// typed config.
func ParseTOMLWithRecovery(path string) (map[string]any, error) {
	raw := make(map[string]any)
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return raw, nil
}

// ExtractSection returns the table named section.
func ExtractSection(data map[string]any, section string) (map[string]any, bool) {
	table, ok := data[section].(map[string]any)
	return table, ok
}

// ExtractInt reads an integer key; TOML integers decode as int64.
func ExtractInt(data map[string]any, key string) (int, bool) {
	if val, ok := data[key].(int64); ok {
		return int(val), true
	}
	return 0, false
}

// ExtractBool reads a boolean key.
func ExtractBool(data map[string]any, key string) (bool, bool) {
	val, ok := data[key].(bool)
	return val, ok
}
