package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the glyphs version",
		Long: `Print the glyphs module version, the Go toolchain it was built with and,
for builds from a checkout, the VCS revision.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("glyphs (no build info)")
				return
			}

			cmd.Printf("glyphs %s\n", moduleVersion(info))
			cmd.Printf("  go      %s\n", info.GoVersion)

			if revision := buildSetting(info, "vcs.revision"); revision != "" {
				if buildSetting(info, "vcs.modified") == "true" {
					revision += " (modified)"
				}

				cmd.Printf("  commit  %s\n", revision)
			}
		},
	}
}

func moduleVersion(info *debug.BuildInfo) string {
	if info.Main.Version == "" {
		return "(devel)"
	}

	return info.Main.Version
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}

	return ""
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
