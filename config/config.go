// Package config loads and saves user preferences.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Preferences holds the user-tunable settings persisted between sessions.
type Preferences struct {
	Theme        string `toml:"theme"`
	LineNumbers  bool   `toml:"line_numbers"`
	PreviewStyle string `toml:"preview_style"`

	// PreviewWidth caps the preview word-wrap width; 0 follows the terminal.
	PreviewWidth int `toml:"preview_width"`

	Autosave     bool `toml:"autosave"`
	AutosaveSecs int  `toml:"autosave_secs"`
}

// Default returns the preferences used when no config file exists.
func Default() Preferences {
	return Preferences{
		Theme:        "dark",
		LineNumbers:  true,
		PreviewStyle: "",
		PreviewWidth: 0,
		Autosave:     false,
		AutosaveSecs: 5,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "inkmark", "config.toml"), nil
}

// Load reads preferences from path. A missing file yields the defaults.
func Load(path string) (Preferences, error) {
	prefs := Default()
	meta, err := toml.DecodeFile(path, &prefs)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Preferences{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if un := meta.Undecoded(); len(un) > 0 {
		return Preferences{}, fmt.Errorf("%s: unknown key %q", path, un[0].String())
	}
	if prefs.AutosaveSecs <= 0 {
		prefs.AutosaveSecs = Default().AutosaveSecs
	}
	if prefs.PreviewWidth < 0 {
		prefs.PreviewWidth = 0
	}
	return prefs, nil
}

// Save writes preferences to path, creating parent directories as needed.
func Save(path string, prefs Preferences) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(prefs); err != nil {
		return fmt.Errorf("%s: failed to encode TOML: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
