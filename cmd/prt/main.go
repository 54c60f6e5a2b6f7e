package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prt/internal/app"
	"prt/internal/config"
	perrors "prt/internal/errors"
	"prt/internal/github"
	"prt/internal/log"
	"prt/internal/session"
	"prt/internal/tui"
)

var (
	flagOwner    string
	flagRepo     string
	flagTarget   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "prt",
	Short: "Compose and open a GitHub pull request from the terminal",
	Long: `prt opens an interactive form for the pull request of the checked-out
branch. The repository comes from the origin remote; the access token is
stored in ~/.config/prt/config.yaml.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagOwner, "owner", "", "repository owner (overrides git discovery)")
	rootCmd.Flags().StringVar(&flagRepo, "repo", "", "repository name (overrides git discovery)")
	rootCmd.Flags().StringVar(&flagTarget, "target", "", "target branch used until the repository is synced")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", perrors.Message(err))
		return 1
	}
	return 0
}

func runTUI(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := config.Load()
	if err != nil {
		return perrors.E(perrors.Op("prt.run"), perrors.KindConfig, "load config", err)
	}
	closeLog, err := initLogging(cfg, os.Getenv)
	if err != nil {
		return err
	}
	defer closeLog()

	runner := app.ExecRunner{}
	store := config.CredentialStore{}
	st := resolveStartup(ctx, cfg, store, runner, os.Getenv, startupFlags{
		owner:  flagOwner,
		repo:   flagRepo,
		target: flagTarget,
	})
	log.Info("session starting", "repo", st.Owner+"/"+st.Repo, "source", st.SourceBranch, "target", st.FallbackTarget, "credential", st.Token != "")

	client := github.NewClient(github.WithBaseURL(cfg.GitHub.BaseURL))
	machine := session.New(session.Options{
		Owner:          st.Owner,
		RepoName:       st.Repo,
		SourceBranch:   st.SourceBranch,
		FallbackTarget: st.FallbackTarget,
		Credential:     st.Token,
		Store:          store,
		Gateway:        client,
	})
	err = tui.RunApp(machine, tui.AppCallbacks{
		Version:            Version,
		Theme:              resolveUITheme(cfg, cmd.ErrOrStderr()),
		OpenURL:            browserOpener(runner),
		PullRequestCreated: notifier(cfg),
	})
	if err != nil {
		log.Error("terminal session failed", "error", err)
		return perrors.E(perrors.Op("prt.run"), perrors.KindIO, "run terminal UI", err)
	}
	log.Info("session ended")
	return nil
}
