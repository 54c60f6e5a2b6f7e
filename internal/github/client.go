// Package github is the remote gateway: it reads repository metadata and
// opens pull requests through the GitHub REST API.
package github

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the default GitHub API base URL
	DefaultBaseURL = "https://api.github.com"

	// TokenEnv is the environment variable consulted when no token is stored
	TokenEnv = "GITHUB_TOKEN"

	// DefaultTimeout bounds every request
	DefaultTimeout = 30 * time.Second
)

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL for the GitHub API
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets a custom HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets the HTTP client whose transport carries the requests
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// Client talks to GitHub on behalf of a session. The token is passed per
// call because the user may replace it while the session runs.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// api builds a go-github client that authenticates with token.
func (c *Client) api(token string) *github.Client {
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc := &http.Client{
		Timeout: c.timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   base,
		},
	}
	gh := github.NewClient(hc)
	if c.baseURL != DefaultBaseURL && c.baseURL != "" {
		baseURL := c.baseURL
		// go-github requires a trailing slash
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		if parsed, err := url.Parse(baseURL); err == nil {
			gh.BaseURL = parsed
		}
	}
	return gh
}
