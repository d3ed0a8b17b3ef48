package main

import (
	"fmt"

	"github.com/justinpbarnett/treetop/internal/store"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the initial store snapshot as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := store.InitialStateWith(cfg.InitialFlags()).YAML()
		if err != nil {
			return fmt.Errorf("marshal state: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
