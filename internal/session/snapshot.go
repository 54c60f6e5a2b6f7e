package session

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Mode            Mode
	Field           Field
	Draft           Draft
	Repository      RepositoryContext
	HasCredential   bool
	CredentialInput string
	Error           string
	Success         string
	Busy            bool
	Pending         RequestKind
	LastURL         string
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Mode:            m.mode,
		Field:           m.form.Current(),
		Draft:           m.form.Draft(),
		Repository:      m.repo,
		HasCredential:   !m.credential.IsEmpty(),
		CredentialInput: m.input,
		Error:           m.errMsg,
		Success:         m.okMsg,
		Busy:            m.busy,
		Pending:         m.pending,
		LastURL:         m.lastURL,
	}
}

func (s Snapshot) ConfirmPopupVisible() bool { return s.Mode == ModeConfirming }

func (s Snapshot) CredentialPopupVisible() bool { return s.Mode == ModeEnteringCredential }

func (s Snapshot) ExitPopupVisible() bool { return s.Mode == ModeConfirmingExit }
