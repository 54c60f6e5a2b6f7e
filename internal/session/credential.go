package session

// CredentialStore persists the access token between sessions.
type CredentialStore interface {
	Save(token string) error
}

// Credential holds the access token for the session.
type Credential struct {
	value string
	store CredentialStore
}

func NewCredential(value string, store CredentialStore) *Credential {
	return &Credential{value: value, store: store}
}

func (c *Credential) IsEmpty() bool { return c.value == "" }

func (c *Credential) Value() string { return c.value }

func (c *Credential) Set(v string) { c.value = v }

// Persist writes the current value to the store. Without a store the
// credential lives in memory only.
func (c *Credential) Persist() error {
	if c.store == nil {
		return nil
	}
	return c.store.Save(c.value)
}

// String keeps the token out of formatted output.
func (c *Credential) String() string {
	if c.IsEmpty() {
		return "<unset>"
	}
	return "<redacted>"
}
