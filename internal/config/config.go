package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the parsed haski.yaml. Everything is optional; zero values
// fall back to the constants in this package.
type Config struct {
	// Prompt overrides the REPL prompt.
	Prompt string `yaml:"prompt,omitempty"`

	// HistoryFile overrides the REPL history file name (relative paths
	// resolve against the user's home directory).
	HistoryFile string `yaml:"history_file,omitempty"`

	// Color forces colored error output on or off. When unset, color
	// follows terminal detection.
	Color *bool `yaml:"color,omitempty"`

	// DumpAST prints the parsed declarations before evaluating.
	DumpAST bool `yaml:"dump_ast,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Prompt:      DefaultPrompt,
		HistoryFile: DefaultHistoryFile,
	}
}

// LoadConfig reads and parses a haski.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses haski.yaml content from bytes. The path argument
// is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = DefaultHistoryFile
	}
	return cfg, nil
}

// FindConfig searches for haski.yaml starting from dir and walking up
// to parent directories. Returns the path and nil if found, or empty
// string and nil if there is no config anywhere up the tree.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load resolves the effective configuration for dir: the nearest
// haski.yaml up the tree, or the defaults when none exists.
func Load(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return LoadConfig(path)
}
