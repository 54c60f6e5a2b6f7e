package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	perrors "prt/internal/errors"
)

func TestLoadCreatesDefaultConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme.Active != "default" {
		t.Fatalf("unexpected active theme: %q", cfg.Theme.Active)
	}
	if cfg.Repository.DefaultBranch != "" {
		t.Fatalf("default branch should be unset, got %q", cfg.Repository.DefaultBranch)
	}
	p := filepath.Join(home, ".config", "prt", "config.yaml")
	info, err := os.Stat(p)
	if err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config file perm = %o, want 600", perm)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	cfg.Theme.Active = "catppuccin-mocha"
	cfg.Repository.Owner = "octo"
	cfg.Notifications.Enabled = true
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Theme.Active != "catppuccin-mocha" {
		t.Fatalf("active theme mismatch: %q", loaded.Theme.Active)
	}
	if loaded.Repository.Owner != "octo" || !loaded.Notifications.Enabled {
		t.Fatalf("round trip lost fields: %+v", loaded)
	}
}

func TestLoadFillsMissingFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "prt")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	raw := "github:\n  token: abc\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Version != CurrentVersion || cfg.Log.Level != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.GitHub.Token != "abc" {
		t.Fatalf("token = %q", cfg.GitHub.Token)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "prt")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("github: [unterminated"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestCredentialStoreRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store := CredentialStore{}
	token, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token on first run, got %q", token)
	}

	cfg := Default()
	cfg.Theme.Active = "nord"
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save("  ghp_secret \n"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	token, err = store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "ghp_secret" {
		t.Fatalf("token = %q", token)
	}
	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if loaded.Theme.Active != "nord" {
		t.Fatalf("saving the token clobbered the theme: %q", loaded.Theme.Active)
	}
}

func TestCredentialStoreSaveFailureIsIOError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// A regular file where the config directory should be makes every write fail.
	if err := os.MkdirAll(filepath.Join(home, ".config"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(home, ".config", "prt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := CredentialStore{}.Save("ghp_secret")
	if err == nil {
		t.Fatalf("expected save error")
	}
	if !perrors.Is(err, perrors.KindIO) {
		t.Fatalf("expected KindIO, got %v", perrors.GetKind(err))
	}
	if strings.Contains(err.Error(), "ghp_secret") {
		t.Fatalf("error leaks the token: %v", err)
	}
}
