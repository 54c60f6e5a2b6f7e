package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"prt/internal/app"
	"prt/internal/config"
	"prt/internal/doctor"
	perrors "prt/internal/errors"
	"prt/internal/github"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that prt can open pull requests here",
	Long: `Checks that git is installed, that the origin remote points at a GitHub
repository, that a branch is checked out and that the stored access token can
read the repository.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return perrors.E(perrors.Op("prt.doctor"), perrors.KindConfig, "load config", err)
		}
		st := resolveStartup(cmd.Context(), cfg, config.CredentialStore{}, app.ExecRunner{}, os.Getenv, startupFlags{})
		checker := doctor.Checker{Fetcher: github.NewClient(github.WithBaseURL(cfg.GitHub.BaseURL))}
		results := checker.Check(cmd.Context(), doctor.Target{
			Owner:        st.Owner,
			Repo:         st.Repo,
			Discovered:   st.Discovered,
			SourceBranch: st.SourceBranch,
			Token:        st.Token,
		})
		doctor.Print(cmd.OutOrStdout(), results)
		if doctor.Failed(results) {
			return errors.New("doctor found problems")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
