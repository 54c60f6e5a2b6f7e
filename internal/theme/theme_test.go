package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prt/internal/config"
)

func TestPaletteHexValidate(t *testing.T) {
	p := DefaultPaletteHex()
	if p.BorderActive != "#fff67d" || p.PopupBorder != "#fff67d" || p.SelectionBg != "#fff67d" {
		t.Fatalf("default accent colors should be #fff67d")
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid default palette: %v", err)
	}
	p.Danger = "red"
	err := p.Validate()
	if err == nil || !strings.Contains(err.Error(), "danger") {
		t.Fatalf("expected invalid hex error naming the field, got %v", err)
	}
}

func TestResolveForTerminal(t *testing.T) {
	p := DefaultPaletteHex()
	resolvedTrue := ResolveForTerminal(p, true)
	if resolvedTrue.Danger != string(p.Danger) || resolvedTrue.Success != string(p.Success) {
		t.Fatalf("expected truecolor to keep hex")
	}
	resolved256 := ResolveForTerminal(p, false)
	if resolved256.Danger == "" || resolved256.Danger[0] == '#' {
		t.Fatalf("expected numeric terminal color for 256 fallback, got %q", resolved256.Danger)
	}
	if resolved256.SelectionFg != "0" {
		t.Fatalf("black should map to xterm index 0, got %q", resolved256.SelectionFg)
	}
	if resolved256.Branch == "" || resolved256.Logo == "" {
		t.Fatalf("expected every field to resolve")
	}
}

func TestTrueColorFromEnv(t *testing.T) {
	if !trueColorFromEnv("truecolor", "") || !trueColorFromEnv("24bit", "") {
		t.Fatalf("COLORTERM should enable truecolor")
	}
	if !trueColorFromEnv("", "xterm-direct") {
		t.Fatalf("TERM=*-direct should enable truecolor")
	}
	if trueColorFromEnv("", "xterm-256color") {
		t.Fatalf("xterm-256color is not truecolor")
	}
}

func TestParseThemeFileKeepsDefaultsForMissingColors(t *testing.T) {
	raw := []byte(`
id: dusk
name: Dusk
colors:
  border_active: "#89b4fa"
  danger: "#f38ba8"
`)
	tf, err := ParseThemeFile(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tf.Version != 1 {
		t.Fatalf("version = %d", tf.Version)
	}
	if tf.Colors.BorderActive != "#89b4fa" || tf.Colors.Danger != "#f38ba8" {
		t.Fatalf("explicit colors not applied: %+v", tf.Colors)
	}
	if tf.Colors.Success != DefaultPaletteHex().Success {
		t.Fatalf("missing color should keep default, got %q", tf.Colors.Success)
	}
}

func TestParseThemeFileAcceptsJSON(t *testing.T) {
	raw := []byte(`{"id":"mono","version":2,"colors":{"text_primary":"#ffffff"}}`)
	tf, err := ParseThemeFile(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tf.ID != "mono" || tf.Version != 2 || tf.Colors.TextPrimary != "#ffffff" {
		t.Fatalf("unexpected theme: %+v", tf)
	}
}

func TestParseThemeFileErrors(t *testing.T) {
	if _, err := ParseThemeFile([]byte(`name: nameless`)); err == nil {
		t.Fatalf("expected missing id error")
	}
	if _, err := ParseThemeFile([]byte("id: bad\ncolors:\n  branch: cyan\n")); err == nil {
		t.Fatalf("expected invalid color error")
	}
}

func TestLoadActivePaletteHex(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, id, err := LoadActivePaletteHex(config.Default())
	if err != nil || id != "default" || p != DefaultPaletteHex() {
		t.Fatalf("default theme: %q %v", id, err)
	}

	dir := filepath.Join(home, ".config", "prt", "themes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "dusk.yaml"), []byte("id: dusk\ncolors:\n  logo: \"#123456\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{"id":"mismatch"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := config.Default()
	cfg.Theme.Active = "dusk"
	p, id, err = LoadActivePaletteHex(cfg)
	if err != nil || id != "dusk" || p.Logo != "#123456" {
		t.Fatalf("dusk theme: %q %v %+v", id, err, p)
	}

	cfg.Theme.Active = "other"
	if _, id, err = LoadActivePaletteHex(cfg); err == nil || id != "default" {
		t.Fatalf("expected id mismatch to fall back to default, got %q %v", id, err)
	}

	cfg.Theme.Active = "missing"
	if _, id, err = LoadActivePaletteHex(cfg); err == nil || id != "default" {
		t.Fatalf("expected missing theme to fall back to default, got %q %v", id, err)
	}

	ids, err := ListLocalThemeIDs()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Join(ids, ",") != "dusk,other" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}
