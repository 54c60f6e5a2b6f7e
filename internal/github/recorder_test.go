package github

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/dnaeon/go-vcr.v2/cassette"
	vcr "gopkg.in/dnaeon/go-vcr.v2/recorder"
)

// newRecorder replays testdata/fixtures/<name>.yaml. With PRT_VCR_MODE=record
// it talks to GitHub instead and rewrites the fixture with the
// Authorization header removed.
func newRecorder(t *testing.T, name string) (*vcr.Recorder, error) {
	t.Helper()

	mode := vcr.ModeReplaying
	if os.Getenv("PRT_VCR_MODE") == "record" {
		mode = vcr.ModeRecording
	}
	// go-vcr adds the ".yaml" extension
	fixturePath := filepath.Join("testdata", "fixtures", name)
	r, err := vcr.NewAsMode(fixturePath, mode, nil)
	if err != nil {
		if errors.Is(err, cassette.ErrCassetteNotFound) {
			return nil, fmt.Errorf("cassette %q not found: %w", fixturePath, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to create recorder: %w", err)
	}
	r.AddSaveFilter(func(i *cassette.Interaction) error {
		delete(i.Request.Headers, "Authorization")
		return nil
	})
	return r, nil
}

func recordedClient(t *testing.T, name string) *Client {
	t.Helper()
	rec, err := newRecorder(t, name)
	if err != nil {
		t.Skipf("VCR fixture not found: %v (run with PRT_VCR_MODE=record GITHUB_TOKEN=your_token to create)", err)
	}
	t.Cleanup(func() {
		if err := rec.Stop(); err != nil {
			t.Errorf("stop recorder: %v", err)
		}
	})
	return NewClient(WithHTTPClient(&http.Client{Transport: rec}))
}

func recordingToken() string {
	if tok := os.Getenv(TokenEnv); tok != "" && os.Getenv("PRT_VCR_MODE") == "record" {
		return tok
	}
	return "test-token"
}
