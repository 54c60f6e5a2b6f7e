package theme

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

type Hex string

// PaletteHex is a theme palette as stored on disk.
type PaletteHex struct {
	BorderActive   Hex `yaml:"border_active"`
	BorderInactive Hex `yaml:"border_inactive"`
	PopupBorder    Hex `yaml:"popup_border"`
	Danger         Hex `yaml:"danger"`
	Success        Hex `yaml:"success"`
	TextPrimary    Hex `yaml:"text_primary"`
	TextMuted      Hex `yaml:"text_muted"`
	SelectionBg    Hex `yaml:"selection_bg"`
	SelectionFg    Hex `yaml:"selection_fg"`
	Logo           Hex `yaml:"logo"`
	LogoShade      Hex `yaml:"logo_shade"`
	HelpText       Hex `yaml:"help_text"`
	FieldLabel     Hex `yaml:"field_label"`
	FieldValue     Hex `yaml:"field_value"`
	Branch         Hex `yaml:"branch"`
}

type ThemeFile struct {
	ID      string     `yaml:"id"`
	Name    string     `yaml:"name"`
	Version int        `yaml:"version"`
	Colors  PaletteHex `yaml:"colors"`
}

// PaletteResolved holds lipgloss color strings: hex for truecolor
// terminals, xterm-256 indexes otherwise.
type PaletteResolved struct {
	BorderActive   string
	BorderInactive string
	PopupBorder    string
	Danger         string
	Success        string
	TextPrimary    string
	TextMuted      string
	SelectionBg    string
	SelectionFg    string
	Logo           string
	LogoShade      string
	HelpText       string
	FieldLabel     string
	FieldValue     string
	Branch         string
}

var hexRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func (p PaletteHex) Validate() error {
	fields := []struct {
		key string
		val Hex
	}{
		{"border_active", p.BorderActive},
		{"border_inactive", p.BorderInactive},
		{"popup_border", p.PopupBorder},
		{"danger", p.Danger},
		{"success", p.Success},
		{"text_primary", p.TextPrimary},
		{"text_muted", p.TextMuted},
		{"selection_bg", p.SelectionBg},
		{"selection_fg", p.SelectionFg},
		{"logo", p.Logo},
		{"logo_shade", p.LogoShade},
		{"help_text", p.HelpText},
		{"field_label", p.FieldLabel},
		{"field_value", p.FieldValue},
		{"branch", p.Branch},
	}
	for _, f := range fields {
		if !hexRe.MatchString(string(f.val)) {
			return fmt.Errorf("invalid hex color for %s: %q", f.key, string(f.val))
		}
	}
	return nil
}

// ParseThemeFile decodes a YAML (or JSON) theme. Colors it omits keep their
// default values.
func ParseThemeFile(b []byte) (ThemeFile, error) {
	t := ThemeFile{
		Version: 1,
		Colors:  DefaultPaletteHex(),
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return ThemeFile{}, err
	}
	if t.ID == "" {
		return ThemeFile{}, fmt.Errorf("theme id is required")
	}
	if t.Version == 0 {
		t.Version = 1
	}
	if err := t.Colors.Validate(); err != nil {
		return ThemeFile{}, err
	}
	return t, nil
}

func DefaultPaletteHex() PaletteHex {
	return PaletteHex{
		BorderActive:   "#fff67d",
		BorderInactive: "#585858",
		PopupBorder:    "#fff67d",
		Danger:         "#d70000",
		Success:        "#5fd75f",
		TextPrimary:    "#ddd7c1",
		TextMuted:      "#9e9987",
		SelectionBg:    "#fff67d",
		SelectionFg:    "#000000",
		Logo:           "#fff67d",
		LogoShade:      "#c8b56f",
		HelpText:       "#d8cfaa",
		FieldLabel:     "#dcca91",
		FieldValue:     "#d8d1b2",
		Branch:         "#9fd0d0",
	}
}
