package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// overlayCentered draws overlay on top of the plain-text base, centered.
func overlayCentered(base, overlay string, width, height int) string {
	baseLines := padCanvas(strings.Split(ansi.Strip(base), "\n"), width, height)
	overLines := strings.Split(overlay, "\n")

	overW := 0
	for _, l := range overLines {
		if w := ansi.StringWidth(l); w > overW {
			overW = w
		}
	}
	startY := clampInt((len(baseLines)-len(overLines))/2, 0, len(baseLines))
	startX := clampInt((width-overW)/2, 0, width)

	for y := 0; y < len(overLines) && startY+y < len(baseLines); y++ {
		row := baseLines[startY+y]
		lineW := ansi.StringWidth(overLines[y])
		prefix := runewidth.Truncate(row, startX, "")
		prefix += strings.Repeat(" ", startX-runewidth.StringWidth(prefix))
		suffix := ""
		if rest := runewidth.StringWidth(row) - startX - lineW; rest > 0 {
			suffix = runewidth.TruncateLeft(row, startX+lineW, "")
		}
		baseLines[startY+y] = prefix + overLines[y] + suffix
	}
	return strings.Join(baseLines, "\n")
}

// applyBackdrop strips colors from base and softens its box drawing so the
// popup on top stands out.
func applyBackdrop(base string, width, height int) string {
	lines := padCanvas(strings.Split(ansi.Strip(base), "\n"), width, height)
	for i, l := range lines {
		lines[i] = strings.Map(softenRune, l)
	}
	return strings.Join(lines, "\n")
}

// padCanvas forces lines into a width x height rectangle.
func padCanvas(lines []string, width, height int) []string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = max(len(lines), 1)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		w := runewidth.StringWidth(l)
		switch {
		case w < width:
			lines[i] = l + strings.Repeat(" ", width-w)
		case w > width:
			lines[i] = runewidth.Truncate(l, width, "")
		}
	}
	return lines
}

func softenRune(r rune) rune {
	switch r {
	case '│', '┃':
		return '┆'
	case '─', '━':
		return '┄'
	case '┬', '┴', '┼':
		return '┼'
	case '├':
		return '┝'
	case '┤':
		return '┥'
	case '┌':
		return '┍'
	case '┐':
		return '┑'
	case '└':
		return '┕'
	case '┘':
		return '┙'
	default:
		return r
	}
}

func innerHeight(totalHeight int) int {
	return max(totalHeight-2, 1)
}

func panelInnerWidth(totalWidth int) int {
	return max(totalWidth-4, 1)
}

// fitLines pads or cuts lines to exactly maxLines, marking a cut with "~".
func fitLines(lines []string, maxLines int) []string {
	if maxLines <= 0 {
		return []string{}
	}
	if len(lines) > maxLines {
		if maxLines == 1 {
			return []string{"~"}
		}
		out := append([]string(nil), lines[:maxLines-1]...)
		return append(out, "~")
	}
	out := append([]string(nil), lines...)
	for len(out) < maxLines {
		out = append(out, "")
	}
	return out
}

func wrapLines(lines []string, width int) []string {
	if width <= 0 {
		return []string{}
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

// wrapLine word-wraps s, hard-breaking words wider than width.
func wrapLine(s string, width int) []string {
	words := strings.Fields(s)
	if width <= 0 || len(words) == 0 {
		return []string{""}
	}
	out := make([]string, 0, 4)
	current := ""
	for _, w := range words {
		for runewidth.StringWidth(w) > width {
			if current != "" {
				out = append(out, current)
				current = ""
			}
			head := runewidth.Truncate(w, width, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(w)
				head = w[:size]
			}
			out = append(out, head)
			w = w[len(head):]
		}
		if current == "" {
			current = w
			continue
		}
		if candidate := current + " " + w; runewidth.StringWidth(candidate) <= width {
			current = candidate
			continue
		}
		out = append(out, current)
		current = w
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}

func truncateRaw(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return runewidth.Truncate(s, max, "~")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
