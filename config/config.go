// Package config handles stackproc.toml settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/stackproc/cpu"
)

// FILENAME is the configuration file looked for by FindAndLoad.
const FILENAME = "stackproc.toml"

// Config holds the monitor and emulator settings.
type Config struct {
	Prompt    string `toml:"prompt"`     // Interactive prompt.
	Preview   int    `toml:"preview"`    // Stack entries shown in state output.
	Verbose   bool   `toml:"verbose"`    // Trace every executed instruction.
	StepLimit int    `toml:"step-limit"` // Maximum instructions per run, 0 for none.
	Language  string `toml:"language"`   // BCP 47 tag overriding the system locale.

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Prompt:  "> ",
		Preview: cpu.PREVIEW_LIMIT,
	}
}

// Load parses a configuration file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	meta, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("%s: unknown key %v", path, undecoded[0])
	}

	if c.Preview < 0 {
		return nil, fmt.Errorf("%s: preview must not be negative", path)
	}
	if c.StepLimit < 0 {
		return nil, fmt.Errorf("%s: step-limit must not be negative", path)
	}

	c.Path = path
	return c, nil
}

// FindAndLoad walks up from startDir to find a stackproc.toml file.
// The defaults are returned if none is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", startDir, err)
	}

	for {
		path := filepath.Join(dir, FILENAME)
		_, err := os.Stat(path)
		if err == nil {
			return Load(path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}
