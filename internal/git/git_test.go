package git

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeRunner struct {
	outputs map[string]string
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	call := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, call)
	out, ok := f.outputs[call]
	if !ok {
		return nil, errors.New("exit status 1")
	}
	return []byte(out), nil
}

func TestParseRemoteURL(t *testing.T) {
	cases := []struct {
		raw   string
		owner string
		name  string
		host  string
	}{
		{"https://github.com/octo/widgets.git", "octo", "widgets", "github.com"},
		{"https://github.com/octo/widgets", "octo", "widgets", "github.com"},
		{"https://github.com/octo/widgets/\n", "octo", "widgets", "github.com"},
		{"git@github.com:octo/widgets.git", "octo", "widgets", "github.com"},
		{"git@github.com:octo/widgets", "octo", "widgets", "github.com"},
		{"ssh://git@github.example.com/octo/widgets.git", "octo", "widgets", "github.example.com"},
	}
	for _, tc := range cases {
		got, ok := ParseRemoteURL(tc.raw)
		if !ok {
			t.Fatalf("ParseRemoteURL(%q) failed", tc.raw)
		}
		if got.Owner != tc.owner || got.Name != tc.name || got.Host != tc.host {
			t.Fatalf("ParseRemoteURL(%q) = %+v", tc.raw, got)
		}
	}
}

func TestParseRemoteURLRejectsUnknownShapes(t *testing.T) {
	for _, raw := range []string{
		"",
		"not a url",
		"https://github.com/octo",
		"https://github.com/octo/widgets/tree/main",
		"git@github.com:widgets.git",
		"/srv/git/widgets.git",
	} {
		if got, ok := ParseRemoteURL(raw); ok {
			t.Fatalf("ParseRemoteURL(%q) = %+v, want failure", raw, got)
		}
	}
}

func TestDiscoverRepository(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"git config --get remote.origin.url": "git@github.com:octo/widgets.git\n",
	}}
	remote, ok := DiscoverRepository(context.Background(), runner)
	if !ok {
		t.Fatalf("expected discovery to succeed")
	}
	if remote.Owner != "octo" || remote.Name != "widgets" {
		t.Fatalf("unexpected remote: %+v", remote)
	}
}

func TestDiscoverRepositoryWithoutRemote(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{}}
	if _, ok := DiscoverRepository(context.Background(), runner); ok {
		t.Fatalf("expected discovery to fail without an origin remote")
	}
}

func TestCurrentBranch(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"git rev-parse --abbrev-ref HEAD": "feature/login\n",
	}}
	branch, ok := CurrentBranch(context.Background(), runner)
	if !ok || branch != "feature/login" {
		t.Fatalf("CurrentBranch = %q, %v", branch, ok)
	}

	runner.outputs["git rev-parse --abbrev-ref HEAD"] = "HEAD\n"
	if _, ok := CurrentBranch(context.Background(), runner); ok {
		t.Fatalf("expected detached HEAD to be reported as missing")
	}
}

func TestDefaultBranchStripsRemotePrefix(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"git symbolic-ref --short refs/remotes/origin/HEAD": "origin/develop\n",
	}}
	branch, ok := DefaultBranch(context.Background(), runner)
	if !ok || branch != "develop" {
		t.Fatalf("DefaultBranch = %q, %v", branch, ok)
	}

	delete(runner.outputs, "git symbolic-ref --short refs/remotes/origin/HEAD")
	if _, ok := DefaultBranch(context.Background(), runner); ok {
		t.Fatalf("expected failure when origin/HEAD is unset")
	}
}
