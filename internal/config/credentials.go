package config

import (
	"strings"

	perrors "prt/internal/errors"
)

// CredentialStore persists the GitHub access token inside the config file.
type CredentialStore struct{}

func (CredentialStore) Load() (string, error) {
	cfg, err := Load()
	if err != nil {
		return "", perrors.E(perrors.Op("config.CredentialStore.Load"), perrors.KindIO, "read credential", err)
	}
	return strings.TrimSpace(cfg.GitHub.Token), nil
}

// Save replaces the stored token, preserving every other setting.
func (CredentialStore) Save(token string) error {
	op := perrors.Op("config.CredentialStore.Save")
	cfg, err := Load()
	if err != nil {
		return perrors.E(op, perrors.KindIO, "read config", err)
	}
	cfg.GitHub.Token = strings.TrimSpace(token)
	if err := Save(cfg); err != nil {
		return perrors.E(op, perrors.KindIO, "write config", err)
	}
	return nil
}
