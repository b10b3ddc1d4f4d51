package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"glyphs.dev/pkg/glyphs/internal/domain"
	m "glyphs.dev/pkg/glyphs/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the output file is up to date",
		Long:  checkLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Check(cmd.Context(), domain.CheckArgs{
				ScanArgs: scanArgs(),
				Output:   m.Path(viper.GetString(outputConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
