// Package file loads and saves the radix configuration as a TOML file.
// Configuration holds the defaults the CLI falls back to when a flag is
// not given; it is read once per invocation.
package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// Config holds the persisted defaults.
type Config struct {
	// InputBase is the default base numbers are parsed in.
	InputBase int `toml:"input_base"`

	// OutputBase is the default base results are rendered in.
	OutputBase int `toml:"output_base"`

	// MaxDepth is the default fractional digit budget. Zero means exact
	// mode.
	MaxDepth int `toml:"max_depth"`

	// Recurring enables bracketed recurring output by default.
	Recurring bool `toml:"recurring"`

	// Exact forces exact mode by default.
	Exact bool `toml:"exact"`

	// History enables recording conversions to the history store.
	History bool `toml:"history"`
}

// Default returns the built-in defaults: decimal both ways, depth 10,
// recurring output on, history on.
func Default() *Config {
	return &Config{
		InputBase:  10,
		OutputBase: 10,
		MaxDepth:   domain.DefaultMaxDepth,
		Recurring:  true,
		History:    true,
	}
}

// Options returns the conversion options the config describes.
func (c *Config) Options() domain.Options {
	return domain.Options{
		MaxDepth:  c.MaxDepth,
		Recurring: c.Recurring,
		Exact:     c.Exact,
	}
}

// Path returns the config file location. If configDir is empty, defaults
// to ~/.radix/config.toml.
func Path(configDir string) (string, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".radix")
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// Load reads the config file under configDir, falling back to the
// defaults when the file does not exist. Values absent from the file keep
// their defaults.
func Load(configDir string) (*Config, error) {
	cfg := Default()

	path, err := Path(configDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config under configDir, creating the directory when
// needed.
func Save(cfg *Config, configDir string) error {
	path, err := Path(configDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
