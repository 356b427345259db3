package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds application-level configuration.
type Config struct {
	GitHubUsername string `toml:"github_username"` // User whose repos are listed
	DataPath       string `toml:"data_path"`       // Path to the portfolio JSON file
	PostsPath      string `toml:"posts_path"`      // Path to the posts JSON file
	UIStatePath    string `toml:"-"`               // Derived, lives next to the config
}

// Load reads the config file and applies environment overrides.
//
//	FOLIO_CONFIG    — config file path (default: ~/.config/folio/config.toml)
//	FOLIO_USERNAME  — overrides github_username
//	FOLIO_DATA      — overrides data_path
//
// A missing config file is not an error; defaults and environment values
// are used instead.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	confDir := filepath.Join(home, ".config", "folio")

	path := os.Getenv("FOLIO_CONFIG")
	if path == "" {
		path = filepath.Join(confDir, "config.toml")
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if u := os.Getenv("FOLIO_USERNAME"); u != "" {
		cfg.GitHubUsername = u
	}
	if d := os.Getenv("FOLIO_DATA"); d != "" {
		cfg.DataPath = d
	}

	if cfg.DataPath == "" {
		cfg.DataPath = filepath.Join(confDir, "portfolio.json")
	}
	if cfg.PostsPath == "" {
		cfg.PostsPath = filepath.Join(confDir, "posts.json")
	}
	cfg.UIStatePath = filepath.Join(filepath.Dir(path), "ui_state.json")

	cfg.GitHubUsername = strings.TrimSpace(cfg.GitHubUsername)

	return cfg, nil
}

// Init writes a starter config file, refusing to clobber an existing one.
func Init(path string, cfg Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
