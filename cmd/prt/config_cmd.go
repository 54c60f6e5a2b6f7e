package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prt/internal/config"
	"prt/internal/theme"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect prt configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed themes, marking the active one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ids, err := theme.ListLocalThemeIDs()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, id := range append([]string{config.DefaultTheme}, ids...) {
			mark := " "
			if id == cfg.Theme.Active {
				mark = "*"
			}
			fmt.Fprintf(out, "%s %s\n", mark, id)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	themeCmd.AddCommand(themeListCmd)
	rootCmd.AddCommand(configCmd, themeCmd)
}
