// Package controller provides console output for glyph inventory runs.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "glyphs.dev/pkg/glyphs/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeList
	ModeCheck
)

func (s StartMode) String() string {
	switch s {
	case ModeRun:
		return "run"
	case ModeList:
		return "list"
	case ModeCheck:
		return "check"
	default:
		return "unknown"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to inventory-writing mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithListMode sets the UI to per-file listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithCheckMode sets the UI to output verification mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

func newStartConfig(options []StartOption) StartConfig {
	config := StartConfig{mode: ModeRun}
	for _, option := range options {
		option(&config)
	}

	return config
}

// ListFormat selects how DisplayListing renders an inventory.
type ListFormat string

// Available ListFormat values.
const (
	ListFormatTable ListFormat = "table"
	ListFormatYAML  ListFormat = "yaml"
)

// ParseListFormat validates a user supplied format name.
func ParseListFormat(value string) (ListFormat, error) {
	switch ListFormat(value) {
	case ListFormatTable, "":
		return ListFormatTable, nil
	case ListFormatYAML:
		return ListFormatYAML, nil
	default:
		return "", fmt.Errorf("unknown list format %q (want %q or %q)", value, ListFormatTable, ListFormatYAML)
	}
}

// UI defines the interface for reporting inventory progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
// Display methods are called from a single goroutine.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayCollected(ctx context.Context, root m.Path, count int)
	DisplayFileScan(ctx context.Context, scan m.FileScan)
	DisplaySummary(ctx context.Context, inventory m.Inventory, output m.Path)
	DisplayListing(ctx context.Context, inventory m.Inventory, format ListFormat) error
	DisplayCheck(ctx context.Context, output m.Path, diff string)
}

// NewUI picks the styled TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
