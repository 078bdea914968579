/*
Package config manages the TOML config for wordfix.

A config file looks like:

	[dict]
	path = "words.txt"
	backend = "trie"
	cache_size = 1024

	[server]
	max_limit = 64
	max_word_len = 60

	[cli]
	default_limit = 40
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/charmbracelet/log"
)

const appDirName = "wordfix"

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// DictConfig holds vocabulary options.
type DictConfig struct {
	Path      string `toml:"path"`
	Backend   string `toml:"backend"`
	CacheSize int    `toml:"cache_size"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxLimit   int `toml:"max_limit"`
	MaxWordLen int `toml:"max_word_len"`
}

// CliConfig holds interactive loop options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:      "words.txt",
			Backend:   "trie",
			CacheSize: 1024,
		},
		Server: ServerConfig{
			MaxLimit:   64,
			MaxWordLen: 60,
		},
		CLI: CliConfig{
			DefaultLimit: 40,
		},
	}
}

// ConfigDir returns the config directory with fallback priority:
// 1. [UserConfigDir]/wordfix
// 2. ~/.config/wordfix
// 3. executable dir
func ConfigDir() (string, error) {
	if userDir, err := os.UserConfigDir(); err == nil {
		primary := filepath.Join(userDir, appDirName)
		if status := utils.CheckDir(primary); status.Writable {
			return primary, nil
		}
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		fallback := filepath.Join(homeDir, ".config", appDirName)
		if status := utils.CheckDir(fallback); status.Writable {
			return fallback, nil
		}
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}
	return utils.ExecutableDir()
}

// DefaultConfigPath returns the default path for config.toml
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path, created with defaults when missing
// 3. Builtin defaults
//
// The returned path is empty when builtin defaults are used.
func LoadConfigWithPriority(customPath string) (*Config, string) {
	if customPath != "" {
		if utils.FileExists(customPath) {
			log.Debugf("Loading config from custom path: %s", customPath)
			return LoadConfig(customPath), customPath
		}
		log.Warnf("Config file not found at %s. Trying default path...", customPath)
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using builtin defaults...", err)
		return DefaultConfig(), ""
	}
	return InitConfig(defaultPath), defaultPath
}

// InitConfig loads config from file or writes the defaults there if missing.
func InitConfig(configPath string) *Config {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using builtin defaults...", configPath, err)
		return DefaultConfig()
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to write default config at %s: %v. Using builtin defaults...", configPath, err)
		} else {
			log.Debugf("Created default config file at: %s", configPath)
		}
		return config
	}
	return LoadConfig(configPath)
}

// LoadConfig loads a TOML file over the defaults. When the file does not
// decode cleanly, each section is recovered separately and anything that
// cannot be read keeps its default.
func LoadConfig(configPath string) *Config {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config
}

// tryPartialParse pulls well-typed values out of a file the typed decode rejected.
func tryPartialParse(configPath string) *Config {
	config := DefaultConfig()

	sections, err := utils.ParseTOMLSections(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config
	}

	if section, ok := utils.ExtractSection(sections, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(sections, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(sections, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractString(data, "backend"); ok {
		dict.Backend = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		dict.CacheSize = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		server.MaxWordLen = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
