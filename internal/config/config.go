package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ProjectFile is the per-project config filename, looked up in the
// working directory.
const ProjectFile = ".pylens.toml"

// Config is the pylens configuration.
type Config struct {
	Analyzer Analyzer `toml:"analyzer"`
	Flake8   Flake8   `toml:"flake8"`
}

// Analyzer holds the pycodestyle/pyflakes settings.
type Analyzer struct {
	// Ignore lists check codes never shown as annotations.
	Ignore []string `toml:"ignore"`

	// MaxLineLength is the pycodestyle line length limit.
	MaxLineLength int `toml:"max_line_length"`

	// StripWhitespace removes trailing whitespace and trailing blank
	// lines before analysis, writing the file back when changed.
	StripWhitespace bool `toml:"strip_whitespace"`
}

// Flake8 configures flake8 mode. When at least one argument set is
// present, flake8 replaces pycodestyle and pyflakes; flake8 runs once per
// set and the results are merged.
type Flake8 struct {
	Args [][]string `toml:"args"`
}

// Enabled reports whether flake8 mode is on.
func (f Flake8) Enabled() bool {
	return len(f.Args) > 0
}

// Default returns the built-in configuration. The ignore defaults match
// the checks the whitespace pre-pass already fixes (blank line at EOF,
// whitespace on blank line).
func Default() *Config {
	return &Config{
		Analyzer: Analyzer{
			Ignore:          []string{"W391", "W293"},
			MaxLineLength:   79,
			StripWhitespace: true,
		},
	}
}

// userConfigPath returns ~/.config/pylens/config.toml.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pylens", "config.toml")
}

// Load resolves the configuration: an explicit path wins, then the project
// file in dir, then the user config, then defaults. A missing file is not
// an error; a broken one is.
func Load(explicit, dir string) (*Config, error) {
	if explicit != "" {
		return loadFile(explicit)
	}

	project := filepath.Join(dir, ProjectFile)
	if _, err := os.Stat(project); err == nil {
		return loadFile(project)
	}

	if user := userConfigPath(); user != "" {
		if _, err := os.Stat(user); err == nil {
			return loadFile(user)
		}
	}

	return Default(), nil
}

// loadFile decodes one TOML file over the defaults, so absent keys keep
// their built-in values.
func loadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	return cfg, nil
}
