package main

import (
	"os"

	"github.com/aretw0/parley/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the conversation for dangling edges and unreachable nodes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return cli.Validate(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
