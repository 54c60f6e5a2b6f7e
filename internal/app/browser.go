package app

import (
	"context"
	"runtime"
)

// OpenBrowser opens url with the platform's default handler.
func OpenBrowser(ctx context.Context, runner CommandRunner, url string) error {
	name, args := browserCommand(runtime.GOOS, url)
	_, err := runner.Run(ctx, name, args...)
	return err
}

func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
