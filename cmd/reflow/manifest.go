package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectManifest is an optional reflow.toml discovered by walking up from
// the working directory. Command-line flags override manifest values.
type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Format formatConfig `toml:"format"`
	Cache  cacheConfig  `toml:"cache"`
}

type formatConfig struct {
	Indent int      `toml:"indent"`
	Tabs   bool     `toml:"tabs"`
	Ext    []string `toml:"ext"`
}

type cacheConfig struct {
	Enabled *bool `toml:"enabled"`
}

func (c cacheConfig) enabled() bool {
	if c.Enabled == nil {
		return true
	}
	return *c.Enabled
}

func findReflowToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "reflow.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest finds and parses the nearest reflow.toml. A missing
// manifest is not an error; defaults apply.
func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findReflowToml(startDir)
	if err != nil || !ok {
		return nil, false, err
	}

	var cfg projectConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}

	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}
