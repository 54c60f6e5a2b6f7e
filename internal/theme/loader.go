package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"prt/internal/config"
)

var themeExts = []string{".yaml", ".yml", ".json"}

// LoadActivePaletteHex returns the palette named by the config. Any failure
// falls back to the default palette and reports why.
func LoadActivePaletteHex(cfg config.Config) (PaletteHex, string, error) {
	if cfg.Theme.Active == "" || cfg.Theme.Active == config.DefaultTheme {
		return DefaultPaletteHex(), config.DefaultTheme, nil
	}
	themesDir, err := config.ThemesDir()
	if err != nil {
		return DefaultPaletteHex(), config.DefaultTheme, err
	}
	b, err := readThemeFile(themesDir, cfg.Theme.Active)
	if err != nil {
		return DefaultPaletteHex(), config.DefaultTheme, err
	}
	themeFile, err := ParseThemeFile(b)
	if err != nil {
		return DefaultPaletteHex(), config.DefaultTheme, fmt.Errorf("theme %s: %w", cfg.Theme.Active, err)
	}
	if themeFile.ID != cfg.Theme.Active {
		return DefaultPaletteHex(), config.DefaultTheme, fmt.Errorf("theme id mismatch: expected %q got %q", cfg.Theme.Active, themeFile.ID)
	}
	return themeFile.Colors, themeFile.ID, nil
}

func readThemeFile(dir, id string) ([]byte, error) {
	for _, ext := range themeExts {
		b, err := os.ReadFile(filepath.Join(dir, id+ext))
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("theme not installed: %s", id)
}

// ListLocalThemeIDs lists the themes installed in the themes directory. The
// built-in default is never listed.
func ListLocalThemeIDs() ([]string, error) {
	themesDir, err := config.ThemesDir()
	if err != nil {
		return nil, err
	}
	ents, err := os.ReadDir(themesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	seen := map[string]bool{}
	ids := make([]string, 0, len(ents))
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		ext := filepath.Ext(name)
		known := false
		for _, e := range themeExts {
			known = known || e == ext
		}
		id := strings.TrimSuffix(name, ext)
		if !known || seen[id] || id == config.DefaultTheme {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
