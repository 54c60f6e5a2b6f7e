// Package git reads repository identity and branch names from the local
// checkout through the git CLI.
package git

import (
	"context"
	"net/url"
	"strings"

	"prt/internal/app"
)

// Remote is the owner/name pair of a hosted repository.
type Remote struct {
	Host  string
	Owner string
	Name  string
}

// ParseRemoteURL extracts the host, owner and repository name from a git
// remote URL. It accepts https://host/owner/repo(.git), ssh://git@host/owner/repo(.git)
// and scp-style git@host:owner/repo(.git) forms.
func ParseRemoteURL(raw string) (Remote, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Remote{}, false
	}

	var host, path string
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return Remote{}, false
		}
		host, path = u.Hostname(), u.Path
	} else {
		at := strings.Index(raw, "@")
		colon := strings.Index(raw, ":")
		if colon < 0 || colon < at {
			return Remote{}, false
		}
		host, path = raw[at+1:colon], raw[colon+1:]
	}

	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Remote{}, false
	}
	return Remote{Host: host, Owner: parts[0], Name: parts[1]}, true
}

// DiscoverRepository resolves the owner and name of the origin remote.
func DiscoverRepository(ctx context.Context, runner app.CommandRunner) (Remote, bool) {
	out, err := runner.Run(ctx, "git", "config", "--get", "remote.origin.url")
	if err != nil {
		return Remote{}, false
	}
	return ParseRemoteURL(string(out))
}

// CurrentBranch returns the checked-out branch. A detached HEAD is reported as missing.
func CurrentBranch(ctx context.Context, runner app.CommandRunner) (string, bool) {
	out, err := runner.Run(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", false
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" || branch == "HEAD" {
		return "", false
	}
	return branch, true
}

// DefaultBranch returns the branch origin/HEAD points at, e.g. "main".
func DefaultBranch(ctx context.Context, runner app.CommandRunner) (string, bool) {
	out, err := runner.Run(ctx, "git", "symbolic-ref", "--short", "refs/remotes/origin/HEAD")
	if err != nil {
		return "", false
	}
	// output is "origin/main"
	ref := strings.TrimSpace(string(out))
	if _, after, ok := strings.Cut(ref, "/"); ok && after != "" {
		return after, true
	}
	return "", false
}
