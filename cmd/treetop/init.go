package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/justinpbarnett/treetop/internal/config"
	"github.com/spf13/cobra"
)

const initFile = "treetop.yaml"

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an annotated treetop.yaml to the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd, initFile, initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s already exists, skipping (use --force to overwrite)\n", path)
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, config.Example, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  created %s\n", path)
	return nil
}
