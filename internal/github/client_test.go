package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	perrors "prt/internal/errors"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL)), &hits
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestFetchRepositorySendsTokenAndParsesResponse(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octo/widgets" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer s3cret" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		writeJSON(w, http.StatusOK, `{"name":"widgets","full_name":"octo/widgets","html_url":"https://github.com/octo/widgets","default_branch":"develop"}`)
	})

	repo, err := client.FetchRepository(context.Background(), "s3cret", "octo", "widgets")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if repo.URL != "https://github.com/octo/widgets" || repo.Name != "widgets" || repo.DefaultBranch != "develop" {
		t.Fatalf("unexpected repository: %+v", repo)
	}
}

func TestFetchRepositoryWithoutTokenSkipsNetwork(t *testing.T) {
	client, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, err := client.FetchRepository(context.Background(), "", "octo", "widgets")
	if !perrors.Is(err, perrors.KindAuth) {
		t.Fatalf("expected KindAuth, got %v", err)
	}
	if atomic.LoadInt32(hits) != 0 {
		t.Fatalf("expected no request without a token")
	}
}

func TestFetchRepositoryRejectsEmptyIdentity(t *testing.T) {
	client, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, err := client.FetchRepository(context.Background(), "tok", "", "widgets")
	if !perrors.Is(err, perrors.KindInvalid) || perrors.Message(err) != "Repository owner is empty" {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = client.FetchRepository(context.Background(), "tok", "octo", " ")
	if !perrors.Is(err, perrors.KindInvalid) || perrors.Message(err) != "Repository name is empty" {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(hits) != 0 {
		t.Fatalf("expected no request for invalid input")
	}
}

func TestCreatePullRequestPostsPayload(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/repos/octo/widgets/pulls" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["title"] != "Fix login" || body["head"] != "fix/login" || body["base"] != "main" || body["body"] != "line one\nline two" {
			t.Errorf("unexpected payload: %#v", body)
		}
		writeJSON(w, http.StatusCreated, `{"number":7,"html_url":"https://github.com/octo/widgets/pull/7"}`)
	})

	pr, err := client.CreatePullRequest(context.Background(), "tok", NewPullRequest{
		Owner: "octo",
		Repo:  "widgets",
		Title: "Fix login",
		Head:  "fix/login",
		Base:  "main",
		Body:  "line one\nline two",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if pr.Number != 7 || pr.URL != "https://github.com/octo/widgets/pull/7" {
		t.Fatalf("unexpected pull request: %+v", pr)
	}
}

func TestCreatePullRequestValidatesBranchesLocally(t *testing.T) {
	client, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{}`)
	})

	_, err := client.CreatePullRequest(context.Background(), "tok", NewPullRequest{Owner: "octo", Repo: "widgets", Base: "main"})
	if perrors.Message(err) != "Source branch is empty" {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = client.CreatePullRequest(context.Background(), "tok", NewPullRequest{Owner: "octo", Repo: "widgets", Head: "x"})
	if perrors.Message(err) != "Target branch is empty" {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(hits) != 0 {
		t.Fatalf("expected no request for invalid input")
	}
}

func TestRemoteErrorClassification(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    perrors.Kind
		message string
	}{
		{
			name:    "validation",
			status:  http.StatusUnprocessableEntity,
			body:    `{"message":"Validation Failed","errors":[{"resource":"PullRequest","code":"custom","message":"No commits between main and fix/login"}]}`,
			kind:    perrors.KindValidation,
			message: "Validation Failed: No commits between main and fix/login",
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"message":"Not Found"}`,
			kind:    perrors.KindNotFound,
			message: "Not Found",
		},
		{
			name:    "bad credentials",
			status:  http.StatusUnauthorized,
			body:    `{"message":"Bad credentials"}`,
			kind:    perrors.KindAuth,
			message: "Bad credentials",
		},
		{
			name:    "server error",
			status:  http.StatusBadGateway,
			body:    `{"message":"Server Error"}`,
			kind:    perrors.KindAPI,
			message: "Server Error",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, tc.body)
			})
			_, err := client.CreatePullRequest(context.Background(), "tok", NewPullRequest{
				Owner: "octo", Repo: "widgets", Title: "t", Head: "fix/login", Base: "main",
			})
			if got := perrors.GetKind(err); got != tc.kind {
				t.Fatalf("kind = %v, want %v (%v)", got, tc.kind, err)
			}
			if got := perrors.Message(err); got != tc.message {
				t.Fatalf("message = %q, want %q", got, tc.message)
			}
		})
	}
}

func TestValidationDetailWithoutMessage(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, `{"message":"Validation Failed","errors":[{"resource":"PullRequest","field":"base","code":"invalid"}]}`)
	})
	_, err := client.CreatePullRequest(context.Background(), "tok", NewPullRequest{
		Owner: "octo", Repo: "widgets", Head: "fix/login", Base: "nope",
	})
	msg := perrors.Message(err)
	if !strings.HasPrefix(msg, "Validation Failed: ") || !strings.Contains(msg, "base") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestTransportFailureIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(WithBaseURL(srv.URL))

	_, err := client.FetchRepository(context.Background(), "tok", "octo", "widgets")
	if !perrors.Is(err, perrors.KindAPI) {
		t.Fatalf("expected KindAPI for a dead server, got %v (%v)", perrors.GetKind(err), err)
	}
}
