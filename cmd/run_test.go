package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"glyphs.dev/pkg/glyphs/internal/controller"
	"glyphs.dev/pkg/glyphs/internal/domain"
	domainmocks "glyphs.dev/pkg/glyphs/internal/domain/mocks"
	m "glyphs.dev/pkg/glyphs/internal/model"
)

func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	t.Setenv("GLYPHS_LOG_FILENAME", t.TempDir()+"/glyphs.log")

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() {
		workflow = originalWorkflow
		restoreRootBindings()
	})

	return mockWorkflow
}

// restoreRootBindings points the viper keys back at the package root command
// so flags changed by a test command do not leak into later tests.
func restoreRootBindings() {
	bindFlagToConfig(rootCmd.PersistentFlags().Lookup(runParallelFlagName), runParallelConfigKey)
	bindFlagToConfig(rootCmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

func newTestRootCmd(subcommands ...func() *cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	configureRootFlags(cmd)

	for _, sub := range subcommands {
		cmd.AddCommand(sub())
	}

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestRootCmd_RunsInventoryWithDefaults(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newTestRootCmd()

	mockWorkflow.EXPECT().Run(mock.Anything, domain.RunArgs{
		ScanArgs: domain.ScanArgs{
			Source:    m.Path(defaultSourceDir),
			Auxiliary: m.Path(defaultExtraFile),
			Threads:   defaultRunParallel,
		},
		Output: m.Path(defaultOutputFile),
	}).Return(nil).Once()

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_ParallelFlag(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newTestRootCmd(newRunCmd)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Threads == 4 && args.Output == m.Path(defaultOutputFile)
	})).Return(nil).Once()

	cmd.SetArgs([]string{"run", "--parallel", "4"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_ConfigOverridesPaths(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	t.Setenv("GLYPHS_PATHS_SOURCE", "firmware/src")
	t.Setenv("GLYPHS_OUTPUT_FILE", "build/unicodes.txt")

	cmd := newTestRootCmd(newRunCmd)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Source == m.Path("firmware/src") &&
			args.Auxiliary == m.Path(defaultExtraFile) &&
			args.Output == m.Path("build/unicodes.txt")
	})).Return(nil).Once()

	cmd.SetArgs([]string{"run"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newTestRootCmd(newRunCmd)
	runErr := &domain.ConfigurationError{Path: "src", Err: domain.ErrNotDirectory}

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(runErr).Once()

	cmd.SetArgs([]string{"run"})
	err := cmd.Execute()
	require.Error(t, err)

	var configErr *domain.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}

func TestRunCmd_RejectsArguments(t *testing.T) {
	withMockWorkflow(t)

	cmd := newTestRootCmd(newRunCmd)

	cmd.SetArgs([]string{"run", "./src"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestListCmd_Formats(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want controller.ListFormat
	}{
		{"default table", []string{"list"}, controller.ListFormatTable},
		{"yaml", []string{"list", "--format", "yaml"}, controller.ListFormatYAML},
		{"short flag", []string{"list", "-f", "table"}, controller.ListFormatTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := withMockWorkflow(t)

			cmd := newTestRootCmd(newListCmd)

			mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
				return args.Format == tt.want && args.Source == m.Path(defaultSourceDir)
			})).Return(nil).Once()

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestListCmd_UnknownFormat(t *testing.T) {
	withMockWorkflow(t)

	cmd := newTestRootCmd(newListCmd)

	cmd.SetArgs([]string{"list", "--format", "json"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown list format")
}

func TestCheckCmd_StaleOutputFails(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newTestRootCmd(newCheckCmd)

	mockWorkflow.EXPECT().Check(mock.Anything, domain.CheckArgs{
		ScanArgs: domain.ScanArgs{
			Source:    m.Path(defaultSourceDir),
			Auxiliary: m.Path(defaultExtraFile),
			Threads:   defaultRunParallel,
		},
		Output: m.Path(defaultOutputFile),
	}).Return(domain.ErrStaleOutput).Once()

	cmd.SetArgs([]string{"check"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrStaleOutput)
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list", cmd.Use)
	assert.Equal(t, listLongDescription, cmd.Long)

	formatFlag := cmd.Flags().Lookup(formatFlagName)
	require.NotNil(t, formatFlag)
	assert.Equal(t, "table", formatFlag.DefValue)
}

func TestRootCmd_RejectsNewerConfigVersion(t *testing.T) {
	withMockWorkflow(t)
	t.Setenv("GLYPHS_VERSION", "2")

	cmd := newTestRootCmd(newRunCmd)

	cmd.SetArgs([]string{"run"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config version 2")
}
