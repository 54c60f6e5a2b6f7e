package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"prt/internal/github"
	"prt/internal/log"
	"prt/internal/session"
)

const defaultRequestTimeout = 30 * time.Second

type AppCallbacks struct {
	Version string
	Theme   UITheme
	// OpenURL opens a pull request page. When nil the URL is only shown.
	OpenURL func(ctx context.Context, url string) error
	// PullRequestCreated runs after every successful submit.
	PullRequestCreated func(repo string, pr github.PullRequest) error
	RequestTimeout     time.Duration
}

type appModel struct {
	machine   *session.Machine
	callbacks AppCallbacks
	theme     UITheme

	description textarea.Model
	token       textinput.Model
	spinner     spinner.Model

	width    int
	height   int
	quitting bool
}

type requestResultMsg struct {
	result session.Result
}

type openURLResultMsg struct {
	url string
	err error
}

type notifyResultMsg struct {
	err error
}

func RunApp(machine *session.Machine, callbacks AppCallbacks) error {
	m := newAppModel(machine, callbacks)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newAppModel(machine *session.Machine, callbacks AppCallbacks) appModel {
	if callbacks.RequestTimeout <= 0 {
		callbacks.RequestTimeout = defaultRequestTimeout
	}

	desc := textarea.New()
	desc.ShowLineNumbers = false
	desc.CharLimit = 0
	desc.MaxHeight = 0
	desc.Prompt = ""
	desc.Placeholder = "Describe the change"

	token := textinput.New()
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '•'
	token.Placeholder = "ghp_..."
	token.Prompt = "> "

	m := appModel{
		machine:     machine,
		callbacks:   callbacks,
		theme:       callbacks.Theme.withDefaults(),
		description: desc,
		token:       token,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.syncWidgets()
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		if !m.machine.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case requestResultMsg:
		m.machine.Complete(msg.result)
		m.syncWidgets()
		if msg.result.Kind == session.RequestSubmit && msg.result.Err == nil {
			return m, m.notifyCmd(msg.result.PullRequest)
		}
		return m, nil
	case openURLResultMsg:
		if msg.err != nil {
			log.Warn("open browser failed", "url", msg.url, "error", msg.err)
			m.machine.ReportError("Failed to open browser: " + msg.err.Error())
		}
		return m, nil
	case notifyResultMsg:
		if msg.err != nil {
			log.Warn("desktop notification failed", "error", msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		act := m.machine.HandleKey(toKey(msg))
		m.syncWidgets()
		switch {
		case act.Quit:
			m.quitting = true
			return m, tea.Quit
		case act.Request != nil:
			return m, tea.Batch(m.performCmd(*act.Request), m.spinner.Tick)
		case act.OpenURL != "":
			return m, m.openURLCmd(act.OpenURL)
		}
		return m, nil
	}
	return m, nil
}

// toKey converts a terminal key event into a session key. Printable input,
// including pastes, becomes text; everything else keeps its bubbletea name.
func toKey(msg tea.KeyMsg) session.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return session.Named(msg.String())
		}
		return session.Text(string(msg.Runes))
	case tea.KeySpace:
		return session.Text(" ")
	}
	return session.Named(msg.String())
}

// performCmd runs req off the event loop. The machine only reads its
// gateway there; the result is folded back in Update.
func (m appModel) performCmd(req session.Request) tea.Cmd {
	machine := m.machine
	timeout := m.callbacks.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		log.Debug("request started", "kind", req.Kind.String(), "repo", req.Owner+"/"+req.Repo)
		return requestResultMsg{result: machine.Perform(ctx, req)}
	}
}

func (m appModel) openURLCmd(url string) tea.Cmd {
	open := m.callbacks.OpenURL
	if open == nil {
		return nil
	}
	timeout := m.callbacks.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return openURLResultMsg{url: url, err: open(ctx, url)}
	}
}

func (m appModel) notifyCmd(pr github.PullRequest) tea.Cmd {
	notify := m.callbacks.PullRequestCreated
	if notify == nil {
		return nil
	}
	repo := m.machine.Repository().Slug()
	return func() tea.Msg {
		return notifyResultMsg{err: notify(repo, pr)}
	}
}

// syncWidgets copies session state into the display widgets. The machine
// owns every value; the widgets only render it.
func (m *appModel) syncWidgets() {
	s := m.machine.Snapshot()
	if m.description.Value() != s.Draft.Description {
		m.description.SetValue(s.Draft.Description)
	}
	if s.Mode == session.ModeEditing && s.Field == session.FieldDescription {
		m.description.Focus()
	} else {
		m.description.Blur()
	}
	if m.token.Value() != s.CredentialInput {
		m.token.SetValue(s.CredentialInput)
		m.token.CursorEnd()
	}
	if s.CredentialPopupVisible() {
		m.token.Focus()
	} else {
		m.token.Blur()
	}
}
