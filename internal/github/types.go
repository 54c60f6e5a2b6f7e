package github

// Repository is the subset of repository metadata a session caches.
type Repository struct {
	URL           string
	Name          string
	FullName      string
	DefaultBranch string
}

// NewPullRequest describes a pull request to open. Head is the source
// branch and Base the target branch.
type NewPullRequest struct {
	Owner string
	Repo  string
	Title string
	Head  string
	Base  string
	Body  string
}

// PullRequest is the created pull request as reported by GitHub.
type PullRequest struct {
	URL    string
	Number int
}
