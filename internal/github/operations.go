package github

import (
	"context"
	"strings"

	"github.com/google/go-github/v68/github"

	perrors "prt/internal/errors"
	"prt/internal/log"
)

// FetchRepository reads the repository metadata. An empty token fails
// locally without a request.
func (c *Client) FetchRepository(ctx context.Context, token, owner, name string) (Repository, error) {
	const op = perrors.Op("github.FetchRepository")
	if strings.TrimSpace(owner) == "" {
		return Repository{}, perrors.Invalid(op, "Repository owner is empty")
	}
	if strings.TrimSpace(name) == "" {
		return Repository{}, perrors.Invalid(op, "Repository name is empty")
	}
	if token == "" {
		return Repository{}, perrors.MissingCredential(op)
	}

	log.Debug("fetching repository", "owner", owner, "repo", name)
	repo, _, err := c.api(token).Repositories.Get(ctx, owner, name)
	if err != nil {
		log.Warn("fetch repository failed", "owner", owner, "repo", name, "error", err)
		return Repository{}, classify(op, err)
	}
	return Repository{
		URL:           repo.GetHTMLURL(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		DefaultBranch: repo.GetDefaultBranch(),
	}, nil
}

// CreatePullRequest opens a pull request from Head into Base.
func (c *Client) CreatePullRequest(ctx context.Context, token string, req NewPullRequest) (PullRequest, error) {
	const op = perrors.Op("github.CreatePullRequest")
	switch {
	case strings.TrimSpace(req.Owner) == "":
		return PullRequest{}, perrors.Invalid(op, "Repository owner is empty")
	case strings.TrimSpace(req.Repo) == "":
		return PullRequest{}, perrors.Invalid(op, "Repository name is empty")
	case strings.TrimSpace(req.Head) == "":
		return PullRequest{}, perrors.Invalid(op, "Source branch is empty")
	case strings.TrimSpace(req.Base) == "":
		return PullRequest{}, perrors.Invalid(op, "Target branch is empty")
	case token == "":
		return PullRequest{}, perrors.MissingCredential(op)
	}

	log.Info("creating pull request", "owner", req.Owner, "repo", req.Repo, "head", req.Head, "base", req.Base)
	pr, _, err := c.api(token).PullRequests.Create(ctx, req.Owner, req.Repo, &github.NewPullRequest{
		Title: github.Ptr(req.Title),
		Head:  github.Ptr(req.Head),
		Base:  github.Ptr(req.Base),
		Body:  github.Ptr(req.Body),
	})
	if err != nil {
		log.Warn("create pull request failed", "owner", req.Owner, "repo", req.Repo, "error", err)
		return PullRequest{}, classify(op, err)
	}
	log.Info("pull request created", "number", pr.GetNumber(), "url", pr.GetHTMLURL())
	return PullRequest{URL: pr.GetHTMLURL(), Number: pr.GetNumber()}, nil
}
