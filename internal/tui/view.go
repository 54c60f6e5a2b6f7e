package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"prt/internal/session"
)

var logo = []string{
	"            _   ",
	" _ __  _ __| |_ ",
	"| '_ \\| '__| __|",
	"| |_) | |  | |_ ",
	"| .__/|_|   \\__|",
	"|_|             ",
}

func (m appModel) View() string {
	if m.quitting {
		return "Exited.\n"
	}
	if m.width <= 0 {
		m.width = 120
	}
	if m.height <= 0 {
		m.height = 36
	}
	s := m.machine.Snapshot()

	banner := m.renderBanner(m.width)
	help := styled(m.theme.HelpText, truncateRaw(helpFor(s), m.width))
	status := m.renderStatus(s)

	bodyHeight := max(m.height-len(banner)-3, 8)
	leftWidth := max(m.width*3/5, 40)
	rightWidth := max(m.width-leftWidth-1, 24)

	left := m.renderForm(s, leftWidth, bodyHeight)
	repoHeight := 9
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderRepository(s, rightWidth, repoHeight),
		m.renderOutput(s, rightWidth, max(bodyHeight-repoHeight, 4)),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	out := make([]string, 0, len(banner)+3)
	out = append(out, banner...)
	out = append(out, help, status, body)
	view := strings.Join(out, "\n")

	if popup := m.renderPopup(s); popup != "" {
		backdrop := applyBackdrop(view, m.width, m.height)
		view = overlayCentered(backdrop, popup, m.width, m.height)
	}
	return view + "\n"
}

func (m appModel) renderBanner(maxWidth int) []string {
	version := formatVersionLabel(m.callbacks.Version)
	if maxWidth < 40 {
		return []string{styled(m.theme.Logo, "prt ") + styled(m.theme.TextMuted, version)}
	}
	out := make([]string, 0, len(logo))
	for i, line := range logo {
		color := m.theme.Logo
		if i >= len(logo)/2 {
			color = m.theme.LogoShade
		}
		rendered := styled(color, line)
		if i == len(logo)-1 {
			rendered += "  " + styled(m.theme.TextMuted, version+"  pull request composer")
		}
		out = append(out, rendered)
	}
	return out
}

func formatVersionLabel(v string) string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return "vdev"
	}
	if strings.HasPrefix(trimmed, "v") {
		return trimmed
	}
	return "v" + trimmed
}

func (m appModel) renderStatus(s session.Snapshot) string {
	prefix := fmt.Sprintf("Mode: %s | Field: %s | ", modeLabel(s.Mode), s.Field)
	switch {
	case s.Busy:
		return styled(m.theme.TextMuted, prefix) + m.spinner.View() + " " + s.Pending.String() + "..."
	case s.Error != "":
		return styled(m.theme.TextMuted, prefix) + styled(m.theme.Danger, truncateRaw(s.Error, max(m.width-len(prefix), 1)))
	case s.Success != "":
		return styled(m.theme.TextMuted, prefix) + styled(m.theme.Success, truncateRaw(s.Success, max(m.width-len(prefix), 1)))
	}
	return styled(m.theme.TextMuted, prefix+"Ready")
}

func (m appModel) panelStyle(active bool, width int) lipgloss.Style {
	border := m.theme.BorderInactive
	if active {
		border = m.theme.BorderActive
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(width - 2)
}

func (m appModel) renderForm(s session.Snapshot, width, height int) string {
	innerW := panelInnerWidth(width)
	editing := s.Mode == session.ModeEditing
	lines := []string{styled(m.theme.FieldLabel, "Pull Request")}
	for _, f := range session.Fields {
		label := "  " + f.String()
		if f == s.Field {
			label = "> " + f.String()
		}
		labelLine := truncateRaw(label, innerW)
		if f == s.Field {
			labelLine = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.SelectionFg)).
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Render(labelLine)
		} else {
			labelLine = styled(m.theme.FieldLabel, labelLine)
		}
		lines = append(lines, labelLine)

		if f == session.FieldDescription {
			desc := m.description
			desc.SetWidth(max(innerW-2, 1))
			desc.SetHeight(max(height-14, 3))
			lines = append(lines, strings.Split(desc.View(), "\n")...)
			continue
		}
		value := s.Draft.Get(f)
		if editing && f == s.Field {
			value += "|"
		}
		color := m.theme.FieldValue
		if f == session.FieldSourceBranch || f == session.FieldTargetBranch {
			color = m.theme.Branch
		}
		lines = append(lines, "  "+styled(color, truncateRaw(value, max(innerW-2, 1))))
	}
	lines = fitLines(lines, innerHeight(height))
	return m.panelStyle(editing, width).Render(strings.Join(lines, "\n"))
}

func (m appModel) renderRepository(s session.Snapshot, width, height int) string {
	repo := s.Repository
	credential := "not set"
	if s.HasCredential {
		credential = "set"
	}
	lines := []string{
		"Repository",
		"Owner: " + repo.Owner(),
		"Repo: " + repo.RepoName(),
		"Name: " + orPlaceholder(repo.Name),
		"URL: " + orPlaceholder(repo.URL),
		"Default branch: " + orPlaceholder(repo.DefaultBranch),
		"Access token: " + credential,
	}
	lines = fitLines(wrapLines(lines, panelInnerWidth(width)), innerHeight(height))
	for i := range lines {
		if i == 0 {
			lines[i] = styled(m.theme.FieldLabel, lines[i])
			continue
		}
		lines[i] = colorizeDetailLine(lines[i], m.theme)
	}
	return m.panelStyle(false, width).Render(strings.Join(lines, "\n"))
}

func (m appModel) renderOutput(s session.Snapshot, width, height int) string {
	lines := []string{styled(m.theme.FieldLabel, "Output")}
	innerW := panelInnerWidth(width)
	switch {
	case s.Error != "":
		for _, l := range wrapLine(s.Error, innerW) {
			lines = append(lines, styled(m.theme.Danger, l))
		}
	case s.Success != "":
		for _, l := range wrapLine(s.Success, innerW) {
			lines = append(lines, styled(m.theme.Success, l))
		}
	default:
		lines = append(lines, styled(m.theme.TextMuted, "Nothing yet"))
	}
	if s.LastURL != "" {
		lines = append(lines, "", styled(m.theme.TextMuted, truncateRaw("Last PR: "+s.LastURL, innerW)))
	}
	lines = fitLines(lines, innerHeight(height))
	return m.panelStyle(false, width).Render(strings.Join(lines, "\n"))
}

func orPlaceholder(v string) string {
	if v == "" {
		return session.Placeholder
	}
	return v
}

func (m appModel) renderPopup(s session.Snapshot) string {
	switch {
	case s.ConfirmPopupVisible():
		return m.renderConfirmPopup(s)
	case s.CredentialPopupVisible():
		return m.renderCredentialPopup(s)
	case s.ExitPopupVisible():
		return m.popupBox("Quit", []string{"Quit prt? Unsubmitted changes are lost.", "", "y/enter quit  n/esc stay"})
	}
	return ""
}

func (m appModel) popupWidth() int {
	return clampInt(m.width-6, 36, 80)
}

func (m appModel) renderConfirmPopup(s session.Snapshot) string {
	innerW := panelInnerWidth(m.popupWidth())
	d := s.Draft
	lines := []string{
		"Create this pull request on " + s.Repository.Slug() + "?",
		"",
		"Title: " + orPlaceholder(d.Title),
		fmt.Sprintf("Branches: %s -> %s", orPlaceholder(d.SourceBranch), orPlaceholder(d.TargetBranch)),
		"Description:",
	}
	desc := strings.Split(d.Description, "\n")
	const previewLines = 6
	if len(desc) > previewLines {
		desc = append(desc[:previewLines], "...")
	}
	for _, l := range desc {
		lines = append(lines, "  "+truncateRaw(l, max(innerW-2, 1)))
	}
	lines = append(lines, "", "y/enter create  e edit  n/esc cancel")
	return m.popupBox("Confirm", lines)
}

func (m appModel) renderCredentialPopup(s session.Snapshot) string {
	lines := []string{
		"Enter a GitHub access token with repo scope.",
		"It is checked against " + s.Repository.Slug() + " and saved to your config.",
		"",
		m.token.View(),
	}
	if s.Error != "" {
		lines = append(lines, "")
		for _, l := range wrapLine(s.Error, panelInnerWidth(m.popupWidth())) {
			lines = append(lines, styled(m.theme.Danger, l))
		}
	}
	if s.Busy {
		lines = append(lines, "", m.spinner.View()+" "+s.Pending.String()+"...")
	}
	return m.popupBox("Access token", lines)
}

func (m appModel) popupBox(title string, lines []string) string {
	width := m.popupWidth()
	innerW := panelInnerWidth(width)
	for i, l := range lines {
		if lipgloss.Width(l) > innerW {
			lines[i] = ansi.Truncate(l, innerW, "~")
		}
	}
	body := append([]string{styled(m.theme.TextPrimary, title), ""}, lines...)
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.PopupBorder)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(body, "\n"))
}
