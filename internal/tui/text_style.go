package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colorizeDetailLine styles "label: value" lines of the repository panel.
func colorizeDetailLine(line string, theme UITheme) string {
	label, value, ok := strings.Cut(line, ":")
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.FieldValue))
	if !ok || label == "" {
		return valueStyle.Render(line)
	}
	labelStyled := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.FieldLabel)).Render(label + ":")
	value = strings.TrimSpace(value)
	if value == "" {
		return labelStyled
	}
	return labelStyled + " " + valueStyle.Render(value)
}

func styled(color, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}
