// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// Config holds the settings of w3dinfo.
type Config struct {
	// Sources, mounted in order. Later ones shadow earlier ones.
	Archives   []string `json:"archives"`
	TextureDir string   `json:"texture_dir"`

	Workers  int  `json:"workers"`
	Validate bool `json:"validate"`
	JSON     bool `json:"json"`
	Textures bool `json:"textures"`
	Verbose  bool `json:"verbose"`

	dir string // of the config file
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Archives   []string
	TextureDir string
	Workers    int
	Validate   bool
	JSON       bool
	Textures   bool
	Verbose    bool
}

// Resolve merges the command line into c and fills in defaults.
// Archives from flags are mounted after, and so shadow, those of the file.
// Relative paths from the file are relative to the file.
func (c *Config) Resolve(flags Flags) {
	if c.dir != "" {
		for i, a := range c.Archives {
			c.Archives[i] = c.abs(a)
		}
		c.TextureDir = c.abs(c.TextureDir)
		c.dir = ""
	}
	c.Archives = append(c.Archives, flags.Archives...)
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	c.Validate = c.Validate || flags.Validate
	c.JSON = c.JSON || flags.JSON
	c.Textures = c.Textures || flags.Textures
	c.Verbose = c.Verbose || flags.Verbose

	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func (c *Config) abs(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.dir, p)
}
