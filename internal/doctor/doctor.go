package doctor

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	perrors "prt/internal/errors"
	"prt/internal/github"
)

// Fetcher is the part of the GitHub client the live check needs.
type Fetcher interface {
	FetchRepository(ctx context.Context, token, owner, name string) (github.Repository, error)
}

// Target is what the session would start with.
type Target struct {
	Owner        string
	Repo         string
	Discovered   bool
	SourceBranch string
	Token        string
}

type Result struct {
	Name   string
	OK     bool
	Detail string
}

type Checker struct {
	Fetcher  Fetcher
	LookPath func(file string) (string, error)
}

// Check runs every probe in order. The live fetch is skipped when an earlier
// probe already explains why it would fail.
func (c Checker) Check(ctx context.Context, t Target) []Result {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	results := make([]Result, 0, 5)

	if path, err := lookPath("git"); err != nil {
		results = append(results, Result{Name: "git", Detail: `missing dependency "git" in PATH`})
	} else {
		results = append(results, Result{Name: "git", OK: true, Detail: path})
	}

	slug := t.Owner + "/" + t.Repo
	if t.Discovered {
		results = append(results, Result{Name: "repository", OK: true, Detail: slug})
	} else {
		results = append(results, Result{Name: "repository", Detail: "no GitHub remote found for origin; set repository.owner and repository.name"})
	}

	if t.SourceBranch != "" {
		results = append(results, Result{Name: "branch", OK: true, Detail: t.SourceBranch})
	} else {
		results = append(results, Result{Name: "branch", Detail: "no branch checked out"})
	}

	if t.Token == "" {
		results = append(results, Result{Name: "credential", Detail: "no access token configured"})
		return results
	}
	results = append(results, Result{Name: "credential", OK: true, Detail: "configured"})

	if !t.Discovered || c.Fetcher == nil {
		return results
	}
	repo, err := c.Fetcher.FetchRepository(ctx, t.Token, t.Owner, t.Repo)
	if err != nil {
		results = append(results, Result{Name: "github", Detail: perrors.GetKind(err).String() + ": " + perrors.Message(err)})
		return results
	}
	results = append(results, Result{Name: "github", OK: true, Detail: fmt.Sprintf("%s (default branch %s)", repo.FullName, repo.DefaultBranch)})
	return results
}

func Failed(results []Result) bool {
	for _, r := range results {
		if !r.OK {
			return true
		}
	}
	return false
}

func Print(w io.Writer, results []Result) {
	for _, r := range results {
		mark := "ok"
		if !r.OK {
			mark = "FAIL"
		}
		fmt.Fprintf(w, "%-4s %-10s %s\n", mark, r.Name, r.Detail)
	}
}
