package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"prt/internal/app"
)

const (
	CurrentVersion      = 1
	DefaultTargetBranch = "main"
	DefaultTheme        = "default"
	DefaultLogLevel     = "info"
	fileName            = "config.yaml"
	filePerm            = 0o600
)

type Config struct {
	Version       int                 `yaml:"version"`
	GitHub        GitHubConfig        `yaml:"github"`
	Repository    RepositoryConfig    `yaml:"repository"`
	Theme         ThemeConfig         `yaml:"theme"`
	Log           LogConfig           `yaml:"log"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

type GitHubConfig struct {
	Token   string `yaml:"token,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// RepositoryConfig overrides what git discovery finds. Empty fields are ignored.
type RepositoryConfig struct {
	Owner         string `yaml:"owner,omitempty"`
	Name          string `yaml:"name,omitempty"`
	DefaultBranch string `yaml:"default_branch,omitempty"`
}

type ThemeConfig struct {
	Active string `yaml:"active"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

func Default() Config {
	return Config{
		Version: CurrentVersion,
		Theme:   ThemeConfig{Active: DefaultTheme},
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}

func EnsureDefaults(cfg *Config) {
	if cfg.Version <= 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.Theme.Active == "" {
		cfg.Theme.Active = DefaultTheme
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

func Dir() (string, error) {
	return app.ConfigDir()
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

func ThemesDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "themes"), nil
}

// Load reads the config file, writing the defaults first if it does not exist.
func Load() (Config, error) {
	cfgPath, err := Path()
	if err != nil {
		return Config{}, err
	}
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := Save(cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	b, err := os.ReadFile(cfgPath)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	EnsureDefaults(&cfg)
	return cfg, nil
}

// Save writes cfg atomically. The file holds the access token, so it is
// readable by the owner only.
func Save(cfg Config) error {
	EnsureDefaults(&cfg)
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmp := filepath.Join(dir, fileName+".tmp")
	if err := os.WriteFile(tmp, b, filePerm); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(dir, fileName))
}
