package session

import (
	"context"
	"fmt"

	perrors "prt/internal/errors"
	"prt/internal/github"
	"prt/internal/log"
)

// NoURLPlaceholder is reported when GitHub omits the pull request URL.
const NoURLPlaceholder = "No URL available"

type RequestKind int

const (
	RequestNone RequestKind = iota
	RequestSync
	RequestSubmit
	RequestValidateCredential
)

func (k RequestKind) String() string {
	switch k {
	case RequestSync:
		return "Syncing repository"
	case RequestSubmit:
		return "Creating pull request"
	case RequestValidateCredential:
		return "Checking access token"
	default:
		return ""
	}
}

// Request is a remote call captured with everything it needs, so it can run
// on another goroutine without reading the machine.
type Request struct {
	Kind        RequestKind
	Token       string
	Owner       string
	Repo        string
	PullRequest github.NewPullRequest
}

// Result is the outcome of a Request.
type Result struct {
	Kind        RequestKind
	Token       string
	Repository  github.Repository
	PullRequest github.PullRequest
	Err         error
}

func (m *Machine) start(req Request) Action {
	m.busy = true
	m.pending = req.Kind
	return Action{Request: &req}
}

func (m *Machine) startSync() Action {
	if m.credential.IsEmpty() {
		m.setError(missingCredentialMessage)
		return Action{}
	}
	return m.start(Request{
		Kind:  RequestSync,
		Token: m.credential.Value(),
		Owner: m.repo.Owner(),
		Repo:  m.repo.RepoName(),
	})
}

const missingCredentialMessage = "Invalid input: no access token configured, press c to enter one"

func (m *Machine) startSubmit() Action {
	d := m.form.Draft()
	const op = perrors.Op("session.Submit")
	switch {
	case d.SourceBranch == "":
		m.setError(m.describe(perrors.Invalid(op, "Source branch is empty")))
		return Action{}
	case d.TargetBranch == "":
		m.setError(m.describe(perrors.Invalid(op, "Target branch is empty")))
		return Action{}
	case m.credential.IsEmpty():
		m.setError(missingCredentialMessage)
		return Action{}
	}
	return m.start(Request{
		Kind:  RequestSubmit,
		Token: m.credential.Value(),
		Owner: m.repo.Owner(),
		Repo:  m.repo.RepoName(),
		PullRequest: github.NewPullRequest{
			Owner: m.repo.Owner(),
			Repo:  m.repo.RepoName(),
			Title: d.Title,
			Head:  d.SourceBranch,
			Base:  d.TargetBranch,
			Body:  d.Description,
		},
	})
}

// Perform runs req against the gateway. It only reads the gateway, which
// never changes after New, so it is safe to call from a worker goroutine.
func (m *Machine) Perform(ctx context.Context, req Request) Result {
	res := Result{Kind: req.Kind, Token: req.Token}
	switch req.Kind {
	case RequestSync, RequestValidateCredential:
		res.Repository, res.Err = m.gateway.FetchRepository(ctx, req.Token, req.Owner, req.Repo)
	case RequestSubmit:
		res.PullRequest, res.Err = m.gateway.CreatePullRequest(ctx, req.Token, req.PullRequest)
	}
	return res
}

// Complete folds a finished request back into the session.
func (m *Machine) Complete(res Result) {
	m.busy = false
	m.pending = RequestNone
	switch res.Kind {
	case RequestSync:
		m.completeSync(res)
	case RequestSubmit:
		m.completeSubmit(res)
	case RequestValidateCredential:
		m.completeCredential(res)
	}
}

// Dispatch handles k and, if it starts a request, performs and completes it
// before returning.
func (m *Machine) Dispatch(ctx context.Context, k Key) Action {
	act := m.HandleKey(k)
	if act.Request != nil {
		m.Complete(m.Perform(ctx, *act.Request))
		act.Request = nil
	}
	return act
}

func (m *Machine) completeSync(res Result) {
	if res.Err != nil {
		log.Warn("sync failed", "repo", m.repo.Slug(), "error", res.Err)
		m.setError(m.describe(res.Err))
		return
	}
	m.repo.apply(res.Repository)
	m.form.SetTarget(m.targetBranch())
	log.Info("repository synced", "repo", m.repo.Slug(), "default_branch", m.repo.DefaultBranch)
	m.setSuccess(fmt.Sprintf("Repository synced: %s (default branch %s)", m.syncedName(), m.targetBranch()))
}

func (m *Machine) completeSubmit(res Result) {
	if res.Err != nil {
		m.setError(m.describe(res.Err))
		return
	}
	url := res.PullRequest.URL
	if url == "" {
		url = NoURLPlaceholder
	} else {
		m.lastURL = url
	}
	m.form.Reset(m.form.Draft().SourceBranch, m.targetBranch())
	m.setSuccess("Pull request created successfully! URL: " + url)
}

func (m *Machine) completeCredential(res Result) {
	if res.Err != nil {
		// The previous credential stays active and the popup stays open.
		m.setError(m.describe(res.Err))
		return
	}
	m.credential.Set(res.Token)
	m.input = ""
	m.repo.apply(res.Repository)
	m.form.SetTarget(m.targetBranch())
	m.setMode(ModeNormal)
	if err := m.credential.Persist(); err != nil {
		log.Error("persist credential failed", "error", err)
		m.setError("Failed to save credential: " + perrors.Message(err))
		return
	}
	m.setSuccess(fmt.Sprintf("Access token saved. Connected to %s", m.syncedName()))
}

func (m *Machine) syncedName() string {
	if m.repo.Name != "" && m.repo.Name != m.repo.RepoName() {
		return m.repo.Owner() + "/" + m.repo.Name
	}
	return m.repo.Slug()
}

// describe turns a classified error into the status line shown to the user.
func (m *Machine) describe(err error) string {
	msg := perrors.Message(err)
	switch perrors.GetKind(err) {
	case perrors.KindInvalid:
		return "Invalid input: " + msg
	case perrors.KindValidation:
		return "Validation failed: " + msg
	case perrors.KindNotFound:
		return fmt.Sprintf("Repository not found: %s (%s). Check the repository owner and name", m.repo.Slug(), msg)
	case perrors.KindAuth:
		return "GitHub API error: " + msg + ". Press c to enter a new access token"
	default:
		return "GitHub API error: " + msg
	}
}
