package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"glyphs.dev/pkg/glyphs/internal/adapter"
	m "glyphs.dev/pkg/glyphs/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "glyphs", configBaseName)
	assert.Equal(t, "glyphs.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "paths.source", sourceConfigKey)
	assert.Equal(t, "paths.extra", extraConfigKey)
	assert.Equal(t, "output.file", outputConfigKey)
	assert.Equal(t, "src", defaultSourceDir)
	assert.Equal(t, "tools/extra_chars.txt", defaultExtraFile)
	assert.Equal(t, "unicodes.txt", defaultOutputFile)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "GLYPHS", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info mixed case", " Info ", slog.LevelInfo},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "chatty", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func chdirForTest(t *testing.T, dir string) {
	t.Helper()

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })
}

func TestProjectRoot(t *testing.T) {
	t.Run("nearest glyphs.yaml above the working directory", func(t *testing.T) {
		project := t.TempDir()
		nested := filepath.Join(project, "src", "display")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(project, configFileName), []byte("version: 1\n"), 0o644))

		chdirForTest(t, nested)

		assert.Equal(t, m.Path(filepath.Join("..", "..")), projectRoot(adapter.NewLocalSourceFSAdapter()))
	})

	t.Run("glyphs.yaml in the working directory", func(t *testing.T) {
		project := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(project, configFileName), []byte("version: 1\n"), 0o644))

		chdirForTest(t, project)

		assert.Equal(t, m.Path("."), projectRoot(adapter.NewLocalSourceFSAdapter()))
	})

	t.Run("falls back to the working directory", func(t *testing.T) {
		chdirForTest(t, t.TempDir())

		assert.Equal(t, m.Path(configFolderPath), projectRoot(adapter.NewLocalSourceFSAdapter()))
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("GLYPHS_PATHS_ROOT", "/opt/firmware")

		assert.Equal(t, m.Path("/opt/firmware"), projectRoot(adapter.NewLocalSourceFSAdapter()))
	})
}

func TestResolveInputPath(t *testing.T) {
	assert.Equal(t, m.Path("src"), resolveInputPath(".", "src"))
	assert.Equal(t, m.Path(filepath.Join("..", "..", "tools", "extra_chars.txt")),
		resolveInputPath(m.Path(filepath.Join("..", "..")), "tools/extra_chars.txt"))
	assert.Equal(t, m.Path("/abs/src"), resolveInputPath("/opt/firmware", "/abs/src"))
}

func TestScanArgs_FromNestedDirectory(t *testing.T) {
	project := t.TempDir()
	nested := filepath.Join(project, "build")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, configFileName), []byte("version: 1\n"), 0o644))

	chdirForTest(t, nested)

	args := scanArgs()
	assert.Equal(t, m.Path(filepath.Join("..", defaultSourceDir)), args.Source)
	assert.Equal(t, m.Path(filepath.Join("..", defaultExtraFile)), args.Auxiliary)
}

func TestCheckConfigVersion(t *testing.T) {
	require.NoError(t, checkConfigVersion(currentConfigVersion))

	for _, version := range []int{0, -1, currentConfigVersion + 1} {
		err := checkConfigVersion(version)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config version")
	}
}
