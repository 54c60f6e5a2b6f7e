// Package notification sends desktop notifications through beeep.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"prt/internal/log"
)

type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// SetNotifier replaces the notification backend (for tests).
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send shows a desktop notification. Failures are logged and returned.
func Send(title, message string) error {
	log.Debug("sending notification", "title", title)
	// empty icon lets beeep pick the platform default
	err := notify(title, message, "")
	if err != nil {
		log.Warn("notification failed", "error", err)
	}
	return err
}

// PullRequestCreated announces a new pull request.
func PullRequestCreated(repo string, number int, url string) error {
	msg := fmt.Sprintf("%s#%d is open", repo, number)
	if url != "" {
		msg += "\n" + url
	}
	return Send("prt", msg)
}
