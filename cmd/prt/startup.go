package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"prt/internal/app"
	"prt/internal/config"
	perrors "prt/internal/errors"
	"prt/internal/git"
	"prt/internal/github"
	"prt/internal/log"
	"prt/internal/notification"
	"prt/internal/theme"
	"prt/internal/tui"
)

const (
	envOwner         = "PRT_OWNER"
	envRepo          = "PRT_REPO"
	envDefaultBranch = "GITHUB_DEFAULT_BRANCH"
	envLogLevel      = "PRT_LOG_LEVEL"
)

type startupFlags struct {
	owner  string
	repo   string
	target string
}

// startup is everything the session needs from the environment, resolved
// once before the terminal UI starts.
type startup struct {
	Owner          string
	Repo           string
	Discovered     bool
	SourceBranch   string
	FallbackTarget string
	Token          string
}

type tokenLoader interface {
	Load() (string, error)
}

// resolveStartup applies, lowest to highest precedence: git, config file,
// environment, command line flags.
func resolveStartup(ctx context.Context, cfg config.Config, tokens tokenLoader, runner app.CommandRunner, getenv func(string) string, flags startupFlags) startup {
	var st startup
	remote, _ := git.DiscoverRepository(ctx, runner)
	st.Owner = firstNonEmpty(flags.owner, getenv(envOwner), cfg.Repository.Owner, remote.Owner)
	st.Repo = firstNonEmpty(flags.repo, getenv(envRepo), cfg.Repository.Name, remote.Name)
	st.Discovered = st.Owner != "" && st.Repo != ""
	if !st.Discovered {
		log.Warn("repository not discovered", "remote", "origin")
	}

	st.SourceBranch, _ = git.CurrentBranch(ctx, runner)
	gitDefault, _ := git.DefaultBranch(ctx, runner)
	st.FallbackTarget = firstNonEmpty(flags.target, getenv(envDefaultBranch), cfg.Repository.DefaultBranch, gitDefault, config.DefaultTargetBranch)

	token, err := tokens.Load()
	if err != nil {
		log.Warn("credential not loaded", "error", perrors.Message(err))
	}
	st.Token = firstNonEmpty(token, getenv(github.TokenEnv))
	return st
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// initLogging sends logs to the log file; the terminal belongs to the UI.
func initLogging(cfg config.Config, getenv func(string) string) (func(), error) {
	path, err := app.LogPath()
	if err != nil {
		return nil, perrors.E(perrors.Op("prt.initLogging"), perrors.KindIO, "resolve log path", err)
	}
	f, err := log.OpenFile(path)
	if err != nil {
		return nil, perrors.E(perrors.Op("prt.initLogging"), perrors.KindIO, "open log file", err)
	}
	level := firstNonEmpty(flagLogLevel, getenv(envLogLevel), cfg.Log.Level)
	if err := log.Init(log.Config{Level: log.ParseLevel(level), Output: f}); err != nil {
		f.Close()
		return nil, perrors.E(perrors.Op("prt.initLogging"), perrors.KindConfig, "init logger", err)
	}
	return func() {
		_ = log.Sync()
		f.Close()
	}, nil
}

func resolveUITheme(cfg config.Config, w io.Writer) tui.UITheme {
	palette, _, err := theme.LoadActivePaletteHex(cfg)
	if err != nil {
		fmt.Fprintf(w, "warning: loading theme %q failed, using default: %v\n", cfg.Theme.Active, err)
		log.Warn("theme fallback", "theme", cfg.Theme.Active, "error", err)
		palette = theme.DefaultPaletteHex()
	}
	return tui.UIThemeFromResolved(theme.ResolveForTerminal(palette, theme.DetectTrueColor()))
}

func browserOpener(runner app.CommandRunner) func(context.Context, string) error {
	return func(ctx context.Context, url string) error {
		return app.OpenBrowser(ctx, runner, url)
	}
}

// notifier returns nil unless desktop notifications are enabled.
func notifier(cfg config.Config) func(string, github.PullRequest) error {
	if !cfg.Notifications.Enabled {
		return nil
	}
	return func(repo string, pr github.PullRequest) error {
		return notification.PullRequestCreated(repo, pr.Number, pr.URL)
	}
}
