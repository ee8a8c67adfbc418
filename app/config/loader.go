package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of seed feed files
type Loader struct {
	feedsDir string
}

// NewLoader creates a new seed feed loader
func NewLoader(feedsDir string) *Loader {
	return &Loader{feedsDir: feedsDir}
}

// LoadAll loads all YAML seed files from the feeds directory. A missing
// directory is not an error; the service simply starts with whatever is
// already in the database.
func (l *Loader) LoadAll() ([]SeedFeed, error) {
	seeds := make([]SeedFeed, 0)

	if _, err := os.Stat(l.feedsDir); os.IsNotExist(err) {
		return seeds, nil
	}

	files, err := filepath.Glob(filepath.Join(l.feedsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}

	// Also check for .yml extension
	ymlFiles, err := filepath.Glob(filepath.Join(l.feedsDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		seed, err := l.loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}

		if err := l.validate(seed); err != nil {
			return nil, fmt.Errorf("invalid seed file %s: %w", file, err)
		}

		seeds = append(seeds, *seed)
	}

	return seeds, nil
}

// loadFile loads a single YAML seed file
func (l *Loader) loadFile(path string) (*SeedFeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var seed SeedFeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &seed, nil
}

// validate validates a seed feed entry
func (l *Loader) validate(seed *SeedFeed) error {
	if seed.URL == "" {
		return fmt.Errorf("feed URL is required")
	}
	if !strings.HasPrefix(seed.URL, "http://") && !strings.HasPrefix(seed.URL, "https://") {
		return fmt.Errorf("feed URL must start with http:// or https://")
	}
	return nil
}
