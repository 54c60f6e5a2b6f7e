package tui

import (
	"prt/internal/theme"
)

type UITheme struct {
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

func defaultUITheme() UITheme {
	return UIThemeFromResolved(theme.ResolveForTerminal(theme.DefaultPaletteHex(), theme.DetectTrueColor()))
}

func UIThemeFromResolved(r theme.PaletteResolved) UITheme {
	return UITheme{
		BorderActive:   r.BorderActive,
		BorderInactive: r.BorderInactive,
		PopupBorder:    r.PopupBorder,
		Danger:         r.Danger,
		Success:        r.Success,
		TextPrimary:    r.TextPrimary,
		TextMuted:      r.TextMuted,
		SelectionBg:    r.SelectionBg,
		SelectionFg:    r.SelectionFg,
		Logo:           r.Logo,
		LogoShade:      r.LogoShade,
		HelpText:       r.HelpText,
		FieldLabel:     r.FieldLabel,
		FieldValue:     r.FieldValue,
		Branch:         r.Branch,
	}
}

// withDefaults fills every unset color from the default palette.
func (t UITheme) withDefaults() UITheme {
	d := defaultUITheme()
	t.BorderActive = orDefault(t.BorderActive, d.BorderActive)
	t.BorderInactive = orDefault(t.BorderInactive, d.BorderInactive)
	t.PopupBorder = orDefault(t.PopupBorder, d.PopupBorder)
	t.Danger = orDefault(t.Danger, d.Danger)
	t.Success = orDefault(t.Success, d.Success)
	t.TextPrimary = orDefault(t.TextPrimary, d.TextPrimary)
	t.TextMuted = orDefault(t.TextMuted, d.TextMuted)
	t.SelectionBg = orDefault(t.SelectionBg, d.SelectionBg)
	t.SelectionFg = orDefault(t.SelectionFg, d.SelectionFg)
	t.Logo = orDefault(t.Logo, d.Logo)
	t.LogoShade = orDefault(t.LogoShade, d.LogoShade)
	t.HelpText = orDefault(t.HelpText, d.HelpText)
	t.FieldLabel = orDefault(t.FieldLabel, d.FieldLabel)
	t.FieldValue = orDefault(t.FieldValue, d.FieldValue)
	t.Branch = orDefault(t.Branch, d.Branch)
	return t
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
