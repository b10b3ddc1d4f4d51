package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"glyphs.dev/pkg/glyphs/internal/adapter"
	m "glyphs.dev/pkg/glyphs/internal/model"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "glyphs"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	runParallelFlagName = "parallel"
	verboseFlagName     = "verbose"
	formatFlagName      = "format"

	rootConfigKey        = "paths.root"
	sourceConfigKey      = "paths.source"
	extraConfigKey       = "paths.extra"
	outputConfigKey      = "output.file"
	runParallelConfigKey = "run.parallel"

	defaultSourceDir   = "src"
	defaultExtraFile   = "tools/extra_chars.txt"
	defaultOutputFile  = "unicodes.txt"
	defaultRunParallel = 1

	envPrefix = "GLYPHS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".glyphs.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.SetConfigFile(filepath.Join(string(projectRoot(adapter.NewLocalSourceFSAdapter())), configFileName))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(sourceConfigKey, defaultSourceDir)
	viper.SetDefault(extraConfigKey, defaultExtraFile)
	viper.SetDefault(outputConfigKey, defaultOutputFile)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// Without a glyphs.yaml the defaults and GLYPHS_* env apply.
	_ = viper.ReadInConfig()
}

// projectRoot is the directory relative input paths resolve against. It is
// the paths.root override if set, else the nearest directory at or above the
// working directory holding glyphs.yaml, else the working directory. The
// result is relative to the working directory when a glyphs.yaml was found.
func projectRoot(fsAdapter adapter.SourceFSAdapter) m.Path {
	if root := viper.GetString(rootConfigKey); root != "" {
		return m.Path(root)
	}

	wd, err := os.Getwd()
	if err != nil {
		return configFolderPath
	}

	root, err := fsAdapter.FindProjectRoot(m.Path(wd), configFileName)
	if err != nil {
		return configFolderPath
	}

	rel, err := fsAdapter.RelPath(m.Path(wd), root)
	if err != nil {
		return root
	}

	return rel
}

// resolveInputPath joins a configured input path onto root unless it is absolute.
func resolveInputPath(root m.Path, value string) m.Path {
	if filepath.IsAbs(value) {
		return m.Path(value)
	}

	return m.Path(filepath.Join(string(root), value))
}

// checkConfigVersion rejects a glyphs.yaml written for another schema version.
func checkConfigVersion(version int) error {
	if version < 1 || version > currentConfigVersion {
		return fmt.Errorf("%s: unsupported config version %d (want %d)", configFileName, version, currentConfigVersion)
	}

	return nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
