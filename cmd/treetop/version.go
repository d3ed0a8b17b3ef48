package main

import (
	"fmt"

	"github.com/justinpbarnett/treetop/internal/ui/panels"
	"github.com/justinpbarnett/treetop/internal/update"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and check for a newer release",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "treetop version %s\n", panels.Version)

		if panels.Version == "dev" {
			fmt.Fprintln(out, "Development build, update check skipped.")
			return nil
		}

		rel, err := update.CheckForUpdate(cmd.Context(), panels.Version, cfg.Update.Repo)
		if err != nil {
			fmt.Fprintf(out, "Update check failed: %v\n", err)
			return nil
		}
		if rel != nil {
			fmt.Fprintf(out, "Update available: v%s. Run \"treetop update\" to install.\n", rel.Version)
		} else {
			fmt.Fprintln(out, "You are up to date.")
		}
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace this binary with the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rel, err := update.Apply(cmd.Context(), panels.Version, cfg.Update.Repo)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated to v%s\n", rel.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
