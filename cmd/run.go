package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Build the glyph inventory and write the output file",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Run(cmd.Context(), runArgs())
		},
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
