/*
Package config manages the TOML config for the wordtrie service.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/log"
)

// AppDir names the config directory under the user's config root.
const AppDir = "wordtrie"

// Config holds the entire config structure
type Config struct {
	Index  IndexConfig  `toml:"index"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// IndexConfig bounds the work done by the index and its queries.
type IndexConfig struct {
	MaxWordLength  int `toml:"max_word_length"`
	MaxSuggestions int `toml:"max_suggestions"`
	MaxCandidates  int `toml:"max_candidates"`
	MaxDistance    int `toml:"max_distance"`
}

// CacheConfig sizes the completion cache; 0 disables it.
type CacheConfig struct {
	MaxPrefixes int `toml:"max_prefixes"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int `toml:"max_limit"`
	DefaultLimit int `toml:"default_limit"`
	MaxQuery     int `toml:"max_query"`
}

// CliConfig holds cli interface options. A DefaultLimit of 0 prints every
// collected suggestion.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	NoFilter     bool `toml:"no_filter"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	limits := suggest.DefaultLimits()
	return &Config{
		Index: IndexConfig{
			MaxWordLength:  limits.MaxWordLength,
			MaxSuggestions: limits.MaxSuggestions,
			MaxCandidates:  limits.MaxCandidates,
			MaxDistance:    limits.MaxDistance,
		},
		Cache: CacheConfig{
			MaxPrefixes: suggest.DefaultCachePrefixes,
		},
		Server: ServerConfig{
			MaxLimit:     64,
			DefaultLimit: 10,
			MaxQuery:     60,
		},
		CLI: CliConfig{
			DefaultLimit: 24,
			NoFilter:     false,
		},
	}
}

// Limits converts the index section into completer limits.
func (c *Config) Limits() suggest.Limits {
	return suggest.Limits{
		MaxWordLength:  c.Index.MaxWordLength,
		MaxSuggestions: c.Index.MaxSuggestions,
		MaxCandidates:  c.Index.MaxCandidates,
		MaxDistance:    c.Index.MaxDistance,
	}.Normalize()
}

// Validate resets out of range values to their defaults and reports how
// many were reset.
func (c *Config) Validate() int {
	def := DefaultConfig()
	fixed := 0
	reset := func(name string, val *int, ok bool, fallback int) {
		if !ok {
			log.Warnf("Invalid config value %s=%d, using %d", name, *val, fallback)
			*val = fallback
			fixed++
		}
	}

	idx := &c.Index
	reset("index.max_word_length", &idx.MaxWordLength, idx.MaxWordLength >= 3, def.Index.MaxWordLength)
	reset("index.max_suggestions", &idx.MaxSuggestions, idx.MaxSuggestions >= 1, def.Index.MaxSuggestions)
	reset("index.max_candidates", &idx.MaxCandidates, idx.MaxCandidates >= 1, def.Index.MaxCandidates)
	reset("index.max_distance", &idx.MaxDistance, idx.MaxDistance == 1 || idx.MaxDistance == 2, def.Index.MaxDistance)
	reset("cache.max_prefixes", &c.Cache.MaxPrefixes, c.Cache.MaxPrefixes >= 0, def.Cache.MaxPrefixes)

	srv := &c.Server
	reset("server.max_limit", &srv.MaxLimit, srv.MaxLimit >= 1, def.Server.MaxLimit)
	reset("server.default_limit", &srv.DefaultLimit, srv.DefaultLimit >= 1 && srv.DefaultLimit <= srv.MaxLimit, min(def.Server.DefaultLimit, srv.MaxLimit))
	reset("server.max_query", &srv.MaxQuery, srv.MaxQuery >= 1, def.Server.MaxQuery)
	reset("cli.default_limit", &c.CLI.DefaultLimit, c.CLI.DefaultLimit >= 0, def.CLI.DefaultLimit)
	return fixed
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordtrie
// 2. ~/Library/Application Support/wordtrie (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", AppDir)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", AppDir)
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path: [UserConfigDir]/wordtrie/config.toml
// 3. Builtin defaults
//
// It also returns the path the config came from, "" for defaults.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using built-in defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. A file that does not decode into the
// typed config is recovered section by section; keys that fail keep their
// defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		config = tryPartialParse(configPath)
	}
	config.Validate()
	return config, nil
}

func tryPartialParse(configPath string) *Config {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config
	}

	if section, ok := utils.ExtractSection(raw, "index"); ok {
		extractInts(section, map[string]*int{
			"max_word_length": &config.Index.MaxWordLength,
			"max_suggestions": &config.Index.MaxSuggestions,
			"max_candidates":  &config.Index.MaxCandidates,
			"max_distance":    &config.Index.MaxDistance,
		})
	}
	if section, ok := utils.ExtractSection(raw, "cache"); ok {
		extractInts(section, map[string]*int{
			"max_prefixes": &config.Cache.MaxPrefixes,
		})
	}
	if section, ok := utils.ExtractSection(raw, "server"); ok {
		extractInts(section, map[string]*int{
			"max_limit":     &config.Server.MaxLimit,
			"default_limit": &config.Server.DefaultLimit,
			"max_query":     &config.Server.MaxQuery,
		})
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		extractInts(section, map[string]*int{
			"default_limit": &config.CLI.DefaultLimit,
		})
		if val, ok := utils.ExtractBool(section, "no_filter"); ok {
			config.CLI.NoFilter = val
		}
	}
	return config
}

func extractInts(section map[string]any, fields map[string]*int) {
	for key, dst := range fields {
		if val, ok := utils.ExtractInt(section, key); ok {
			*dst = val
		}
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
