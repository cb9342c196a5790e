package main

import (
	"os"

	"github.com/aretw0/parley/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the conversation graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the sample conversation.
With --replay, the conversation is first played with the given selections
and the path it took is highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		replay, _ := cmd.Flags().GetStringSlice("replay")
		return cli.PrintGraph(cmd.Context(), os.Stdout, replay)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringSlice("replay", nil, "Selections to replay before drawing, e.g. yes,weather,no")
}
