package tui

import "prt/internal/session"

func modeLabel(m session.Mode) string {
	switch m {
	case session.ModeEditing:
		return "Editing"
	case session.ModeConfirming:
		return "Confirm"
	case session.ModeEnteringCredential:
		return "Access token"
	case session.ModeConfirmingExit:
		return "Quit?"
	default:
		return "Browse"
	}
}

func helpFor(s session.Snapshot) string {
	if s.Busy {
		return "Waiting for GitHub..."
	}
	switch s.Mode {
	case session.ModeEditing:
		if s.Field.Multiline() {
			return "Editing: type to edit, enter new line, tab/shift+tab switch field, esc done"
		}
		return "Editing: type to edit, enter preview, tab/shift+tab switch field, esc done"
	case session.ModeConfirming:
		return "Confirm: y/enter create pull request, e edit, n/esc cancel"
	case session.ModeEnteringCredential:
		if s.HasCredential {
			return "Access token: paste token, enter save, esc cancel"
		}
		return "Access token: paste token, enter save, ctrl+c quit"
	case session.ModeConfirmingExit:
		return "Quit: y/enter quit, n/esc stay"
	default:
		return "Browse: j/k move, e edit, n new, enter preview, s sync, c token, o open PR, q quit"
	}
}
