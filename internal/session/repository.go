package session

import (
	"context"

	"prt/internal/github"
)

// Placeholder stands in for an owner, repository or branch that could not be
// discovered. The API rejects it, so remote calls fail fast with not-found.
const Placeholder = "-"

// Gateway is the remote side of a session.
type Gateway interface {
	FetchRepository(ctx context.Context, token, owner, name string) (github.Repository, error)
	CreatePullRequest(ctx context.Context, token string, req github.NewPullRequest) (github.PullRequest, error)
}

// RepositoryContext identifies the target repository. Owner and name are
// fixed at startup; URL, Name and DefaultBranch come from the last sync.
type RepositoryContext struct {
	URL           string
	Name          string
	DefaultBranch string

	owner    string
	repoName string
}

func NewRepositoryContext(owner, repoName string) RepositoryContext {
	if owner == "" {
		owner = Placeholder
	}
	if repoName == "" {
		repoName = Placeholder
	}
	return RepositoryContext{owner: owner, repoName: repoName}
}

func (r RepositoryContext) Owner() string { return r.owner }

func (r RepositoryContext) RepoName() string { return r.repoName }

// Slug returns "owner/name".
func (r RepositoryContext) Slug() string { return r.owner + "/" + r.repoName }

// Discovered reports whether owner and name are real values.
func (r RepositoryContext) Discovered() bool {
	return r.owner != Placeholder && r.repoName != Placeholder
}

// Synced reports whether remote metadata has been loaded.
func (r RepositoryContext) Synced() bool { return r.URL != "" }

func (r *RepositoryContext) apply(repo github.Repository) {
	r.URL = repo.URL
	r.Name = repo.Name
	r.DefaultBranch = repo.DefaultBranch
}

// Sync refreshes the remote metadata. On failure the context is unchanged.
func (r *RepositoryContext) Sync(ctx context.Context, gw Gateway, token string) error {
	repo, err := gw.FetchRepository(ctx, token, r.owner, r.repoName)
	if err != nil {
		return err
	}
	r.apply(repo)
	return nil
}
