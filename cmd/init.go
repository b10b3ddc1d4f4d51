package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Mark the working directory as a glyphs project",
		Long: `Write glyphs.yaml with the current settings into the working directory.
The directory holding glyphs.yaml becomes the project root: paths.source and
paths.extra resolve against it even when glyphs runs from a subdirectory.
An existing glyphs.yaml is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			cmd.Printf("Wrote %s (source %s, extra %s, output %s)\n",
				targetPath,
				viper.GetString(sourceConfigKey),
				viper.GetString(extraConfigKey),
				viper.GetString(outputConfigKey),
			)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
