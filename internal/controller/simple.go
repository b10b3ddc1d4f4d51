package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	m "glyphs.dev/pkg/glyphs/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayCollected reports how many candidate files were found.
func (s *SimpleUI) DisplayCollected(ctx context.Context, root m.Path, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Found %d source file(s) under %s\n", count, root)
}

// DisplayFileScan prints one progress line per scanned candidate file.
func (s *SimpleUI) DisplayFileScan(ctx context.Context, scan m.FileScan) {
	if err := ctx.Err(); err != nil {
		return
	}

	if scan.Skipped() {
		s.errorf("skipped %s: %v\n", scan.File.Path, scan.Err)
		return
	}

	if scan.File.Kind == m.SourceAuxiliary {
		return
	}

	s.printf("%s\n", scan.File.Path)
}

// DisplaySummary prints the distinct code point count and the summary table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, inventory m.Inventory, output m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%d\n", inventory.CodePoints.Len())
	s.printf("\n%s", renderSummaryTable(inventory, output))
}

// DisplayListing prints per-input contributions as a table or YAML document.
func (s *SimpleUI) DisplayListing(ctx context.Context, inventory m.Inventory, format ListFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == ListFormatYAML {
		doc, err := renderListingYAML(inventory)
		if err != nil {
			return err
		}

		s.printf("%s", doc)

		return nil
	}

	s.printf("\n%s", renderListingTable(inventory))

	return nil
}

// DisplayCheck prints the verification outcome and, when stale, the diff.
func (s *SimpleUI) DisplayCheck(ctx context.Context, output m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("%s is up to date\n", output)
		return
	}

	s.printf("%s", diff)
	s.printf("%s is out of date\n", output)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
