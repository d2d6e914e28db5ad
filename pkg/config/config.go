// Package config loads CLI flag defaults from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFileName = ".lumin.yml"

// Config holds flag defaults read from a config file. Fields are pointers
// so that only keys present in the file override built-in defaults; an
// explicit command-line flag always wins over both.
type Config struct {
	CaseSensitive    *bool   `yaml:"case_sensitive"`
	RespectGitignore *bool   `yaml:"respect_gitignore"`
	MaxDepth         *int    `yaml:"max_depth"`
	BeforeContext    *int    `yaml:"before_context"`
	AfterContext     *int    `yaml:"after_context"`
	OmitContext      *int    `yaml:"omit_context"`
	Color            *string `yaml:"color"`
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return parse(data, path)
}

// Discover loads DefaultFileName from dir. A missing file yields an empty
// config rather than an error; a present but malformed file is an error.
func Discover(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}
