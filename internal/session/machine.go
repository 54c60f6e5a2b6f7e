// Package session implements the interactive state machine behind the
// pull request composer. It holds the draft, the repository context and the
// credential, interprets key presses per mode, and turns remote outcomes into
// status messages. It never touches the terminal or the network directly.
package session

import (
	"strings"

	"prt/internal/log"
)

// Mode is the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeConfirming
	ModeEnteringCredential
	ModeConfirmingExit
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEditing:
		return "editing"
	case ModeConfirming:
		return "confirming"
	case ModeEnteringCredential:
		return "credential"
	case ModeConfirmingExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Key is a single key press. Named keys ("enter", "esc", "tab", "shift+tab",
// "backspace", "up", "down", "ctrl+c") set Name; typed or pasted text sets Text.
type Key struct {
	Name string
	Text string
}

func Named(name string) Key { return Key{Name: name} }

func Text(s string) Key { return Key{Text: s} }

func (k Key) id() string {
	if k.Name != "" {
		return k.Name
	}
	return k.Text
}

// Action is what the caller must do after a key press.
type Action struct {
	// Quit ends the session.
	Quit bool
	// Request must be performed and its Result passed to Complete.
	Request *Request
	// OpenURL asks the caller to open a pull request in the browser.
	OpenURL string
}

// Options configure a new session. Everything environmental is resolved by
// the caller before the machine is built.
type Options struct {
	Owner    string
	RepoName string
	// SourceBranch is the locally checked-out branch.
	SourceBranch string
	// FallbackTarget is used as the target branch until a sync reports the
	// repository default branch.
	FallbackTarget string
	Credential     string
	Store          CredentialStore
	Gateway        Gateway
}

// Machine owns all session state. It is not safe for concurrent use;
// a single event loop calls HandleKey and Complete.
type Machine struct {
	gateway    Gateway
	form       *Form
	repo       RepositoryContext
	credential *Credential

	mode     Mode
	input    string
	errMsg   string
	okMsg    string
	busy     bool
	pending  RequestKind
	fallback string
	source   string
	lastURL  string
}

func New(opts Options) *Machine {
	fallback := strings.TrimSpace(opts.FallbackTarget)
	if fallback == "" {
		fallback = "main"
	}
	m := &Machine{
		gateway:    opts.Gateway,
		repo:       NewRepositoryContext(opts.Owner, opts.RepoName),
		credential: NewCredential(opts.Credential, opts.Store),
		fallback:   fallback,
		source:     opts.SourceBranch,
	}
	m.form = NewForm(m.source, m.targetBranch())
	if m.credential.IsEmpty() {
		m.mode = ModeEnteringCredential
	}
	return m
}

// targetBranch is the repository default branch once known, else the fallback.
func (m *Machine) targetBranch() string {
	if m.repo.DefaultBranch != "" {
		return m.repo.DefaultBranch
	}
	return m.fallback
}

func (m *Machine) Mode() Mode { return m.mode }

func (m *Machine) Busy() bool { return m.busy }

func (m *Machine) Draft() Draft { return m.form.Draft() }

func (m *Machine) Repository() RepositoryContext { return m.repo }

func (m *Machine) setError(msg string) {
	m.okMsg = ""
	m.errMsg = msg
}

func (m *Machine) setSuccess(msg string) {
	m.errMsg = ""
	m.okMsg = msg
}

func (m *Machine) clearStatus() {
	m.errMsg = ""
	m.okMsg = ""
}

func (m *Machine) setMode(mode Mode) {
	if mode != m.mode {
		log.Debug("mode change", "from", m.mode.String(), "to", mode.String())
	}
	m.mode = mode
}

// HandleKey interprets k in the current mode. While a request is in flight
// every key is ignored.
func (m *Machine) HandleKey(k Key) Action {
	if m.busy {
		return Action{}
	}
	if k.Name == "ctrl+c" && m.mode != ModeConfirmingExit {
		m.setMode(ModeConfirmingExit)
		return Action{}
	}
	switch m.mode {
	case ModeNormal:
		return m.handleNormal(k)
	case ModeEditing:
		return m.handleEditing(k)
	case ModeConfirming:
		return m.handleConfirming(k)
	case ModeEnteringCredential:
		return m.handleCredential(k)
	case ModeConfirmingExit:
		return m.handleExit(k)
	}
	return Action{}
}

func (m *Machine) handleNormal(k Key) Action {
	switch k.id() {
	case "e":
		m.clearStatus()
		m.setMode(ModeEditing)
	case "n":
		m.clearStatus()
		m.form.Reset(m.source, m.targetBranch())
		m.setMode(ModeEditing)
	case "s":
		m.clearStatus()
		return m.startSync()
	case "c":
		m.clearStatus()
		m.input = ""
		m.setMode(ModeEnteringCredential)
	case "o":
		if m.lastURL == "" {
			m.setError("No pull request has been created in this session")
			return Action{}
		}
		return Action{OpenURL: m.lastURL}
	case "enter", "p":
		m.setMode(ModeConfirming)
	case "up", "k", "shift+tab":
		m.form.Advance(-1)
	case "down", "j", "tab":
		m.form.Advance(1)
	case "q", "esc":
		m.setMode(ModeConfirmingExit)
	}
	return Action{}
}

func (m *Machine) handleEditing(k Key) Action {
	switch k.Name {
	case "esc":
		m.setMode(ModeNormal)
	case "backspace":
		m.form.Backspace()
	case "enter":
		if m.form.Current().Multiline() {
			m.form.Append("\n")
			return Action{}
		}
		m.setMode(ModeConfirming)
	case "tab":
		m.form.Advance(1)
	case "shift+tab":
		m.form.Advance(-1)
	case "":
		m.form.Append(k.Text)
	}
	return Action{}
}

func (m *Machine) handleConfirming(k Key) Action {
	switch k.id() {
	case "y", "enter":
		m.setMode(ModeNormal)
		return m.startSubmit()
	case "e":
		m.setMode(ModeEditing)
	case "n", "q", "esc":
		m.setMode(ModeNormal)
	}
	return Action{}
}

func (m *Machine) handleCredential(k Key) Action {
	switch k.Name {
	case "esc":
		if !m.credential.IsEmpty() {
			m.input = ""
			m.setMode(ModeNormal)
		}
	case "backspace":
		m.input = trimLastRune(m.input)
	case "enter":
		token := strings.TrimSpace(m.input)
		if token == "" {
			m.setError("Invalid input: credential cannot be empty")
			return Action{}
		}
		m.clearStatus()
		return m.start(Request{
			Kind:  RequestValidateCredential,
			Token: token,
			Owner: m.repo.Owner(),
			Repo:  m.repo.RepoName(),
		})
	case "":
		m.input += strings.NewReplacer("\r", "", "\n", "").Replace(k.Text)
	}
	return Action{}
}

func (m *Machine) handleExit(k Key) Action {
	switch k.id() {
	case "y", "enter", "ctrl+c":
		return Action{Quit: true}
	case "n", "esc":
		if m.credential.IsEmpty() {
			m.setMode(ModeEnteringCredential)
			return Action{}
		}
		m.setMode(ModeNormal)
	}
	return Action{}
}

// ReportError shows msg as the current error, e.g. when the caller could
// not carry out an Action.
func (m *Machine) ReportError(msg string) {
	m.setError(msg)
}
