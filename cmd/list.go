package cmd

import (
	"github.com/spf13/cobra"

	"glyphs.dev/pkg/glyphs/internal/controller"
	"glyphs.dev/pkg/glyphs/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the code points each input contributes",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listFormat, err := controller.ParseListFormat(format)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				ScanArgs: scanArgs(),
				Format:   listFormat,
			})
		},
	}

	cmd.Flags().StringVarP(&format, formatFlagName, "f", string(controller.ListFormatTable), "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
