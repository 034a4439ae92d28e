// Package config describes which category folders get cleaned, with which key prefix, and which files inside each subject folder.
// The defaults match the layout of the dataset tool; a YAML or TOML file may override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

type (
	Category struct {
		Folder string `yaml:"folder" toml:"folder"`
		Prefix string `yaml:"prefix" toml:"prefix"`
	}

	Config struct {
		Categories []Category `yaml:"categories" toml:"categories"`
		Files      []string   `yaml:"files" toml:"files"`
	}

	// file tells keys missing from a configuration file apart from empty ones.
	file struct {
		Categories *[]Category `yaml:"categories" toml:"categories"`
		Files      *[]string   `yaml:"files" toml:"files"`
	}
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

func Default() *Config {
	return &Config{
		Categories: []Category{
			{Folder: "scenes", Prefix: "scene_"},
			{Folder: "templates", Prefix: "tpl_"},
		},
		Files: []string{"info.yml", "gt.yml"},
	}
}

// Load reads the configuration file at path. Fields missing from the file keep their default values.
// Non-nil returned error wraps [ErrInvalidConfig] when the file was read but its contents are unusable.
func Load(path string) (*Config, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	return Parse(contents, filepath.Ext(path))
}

// Parse decodes contents according to ext, which is one of ".yml", ".yaml" or ".toml".
// Non-nil returned error wraps [ErrInvalidConfig].
func Parse(contents []byte, ext string) (*Config, error) {
	var raw file

	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(contents, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to decode YAML: %s", ErrInvalidConfig, err.Error())
		}
	case ".toml":
		if err := toml.Unmarshal(contents, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to decode TOML: %s", ErrInvalidConfig, err.Error())
		}
	default:
		return nil, fmt.Errorf("%w: unsupported configuration file extension %q", ErrInvalidConfig, ext)
	}

	cfg := Default()

	if raw.Categories != nil {
		cfg.Categories = *raw.Categories
	}

	if raw.Files != nil {
		cfg.Files = *raw.Files
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Non-nil returned error wraps [ErrInvalidConfig].
func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalidConfig)
	}

	for i, category := range c.Categories {
		if category.Folder == "" {
			return fmt.Errorf("%w: category %d has an empty folder name", ErrInvalidConfig, i)
		}

		if !isPlainName(category.Folder) {
			return fmt.Errorf("%w: category folder %q must be a plain directory name", ErrInvalidConfig, category.Folder)
		}
	}

	if len(c.Files) == 0 {
		return fmt.Errorf("%w: at least one target file is required", ErrInvalidConfig)
	}

	for _, name := range c.Files {
		if name == "" || !isPlainName(name) {
			return fmt.Errorf("%w: target file %q must be a plain file name", ErrInvalidConfig, name)
		}
	}

	return nil
}

func isPlainName(name string) bool {
	return name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
