// Package cmd provides the root command and CLI setup for glyphs.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"glyphs.dev/pkg/glyphs/internal/adapter"
	"glyphs.dev/pkg/glyphs/internal/controller"
	"glyphs.dev/pkg/glyphs/internal/domain"
	m "glyphs.dev/pkg/glyphs/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var outputStore adapter.OutputStore
var collector domain.Collector
var builder domain.InventoryBuilder
var workflow domain.Workflow
var ui controller.UI

// runParallelFlag is the number of workers scanning files.
var runParallelFlag int

// verboseFlag switches the log file to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	outputStore = adapter.NewHexListStore(fsAdapter)
	collector = domain.NewCollector(fsAdapter, domain.DefaultSourcePatterns...)
	builder = domain.NewInventoryBuilder(fsAdapter, ui)
	workflow = domain.NewWorkflow(outputStore, ui, collector, builder)
}

const pathsHelp = `Inputs are read from the configured locations (glyphs.yaml or GLYPHS_* env):
  - paths.source   source tree scanned recursively for *.cpp, *.c and *.ino (default: src)
  - paths.extra    extra characters file, always included (default: tools/extra_chars.txt)
  - output.file    comma-separated hex code point list (default: unicodes.txt)

paths.source and paths.extra are relative to the project root: the nearest
directory at or above the working directory that holds glyphs.yaml (see
"glyphs init"), or the working directory when there is none. GLYPHS_PATHS_ROOT
overrides it. output.file is relative to the working directory.`

const rootLongDescription = `Glyphs collects every non-ASCII character used in a firmware source tree
and in an extra characters file, and writes the distinct code points as a
hex list so a font table can be generated with exactly those glyphs.

Running glyphs without a subcommand is the same as "glyphs run".

` + pathsHelp

const runLongDescription = `Scan the source tree and the extra characters file and overwrite the
output file with the distinct non-ASCII code points.

` + pathsHelp

const listLongDescription = `Scan the inputs and show which code points each file contributes.
Nothing is written.

` + pathsHelp

const checkLongDescription = `Scan the inputs and verify that the output file holds exactly the current
set of code points. Prints a diff and exits non-zero when it is stale.

` + pathsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "glyphs",
		Short:        "Non-ASCII glyph inventory for source trees",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := checkConfigVersion(viper.GetInt(configVersionKey)); err != nil {
				return err
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Run(cmd.Context(), runArgs())
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers scanning files")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug level logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func scanArgs() domain.ScanArgs {
	root := projectRoot(fsAdapter)

	return domain.ScanArgs{
		Source:    resolveInputPath(root, viper.GetString(sourceConfigKey)),
		Auxiliary: resolveInputPath(root, viper.GetString(extraConfigKey)),
		Threads:   viper.GetInt(runParallelConfigKey),
	}
}

func runArgs() domain.RunArgs {
	return domain.RunArgs{
		ScanArgs: scanArgs(),
		Output:   m.Path(viper.GetString(outputConfigKey)),
	}
}
