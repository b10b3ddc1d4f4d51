package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"glyphs.dev/pkg/glyphs/internal/adapter"
	"glyphs.dev/pkg/glyphs/internal/controller"
	m "glyphs.dev/pkg/glyphs/internal/model"
)

// ErrStaleOutput is returned by Check when the output file does not hold the
// current inventory.
var ErrStaleOutput = errors.New("output is out of date")

// ScanArgs locates the inputs of an inventory.
type ScanArgs struct {
	Source    m.Path
	Auxiliary m.Path
	Threads   int
}

// RunArgs contains the arguments for building and writing the inventory.
type RunArgs struct {
	ScanArgs
	Output m.Path
}

// ListArgs contains the arguments for printing per-file contributions.
type ListArgs struct {
	ScanArgs
	Format controller.ListFormat
}

// CheckArgs contains the arguments for verifying an existing output file.
type CheckArgs struct {
	ScanArgs
	Output m.Path
}

// Workflow drives the collector, the inventory builder and the output store.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args ListArgs) error
	Check(ctx context.Context, args CheckArgs) error
}

type workflow struct {
	adapter.OutputStore
	controller.UI
	Collector
	InventoryBuilder
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	outputStore adapter.OutputStore,
	ui controller.UI,
	collector Collector,
	builder InventoryBuilder,
) Workflow {
	return &workflow{
		OutputStore:      outputStore,
		UI:               ui,
		Collector:        collector,
		InventoryBuilder: builder,
	}
}

// Run collects candidate files, builds the inventory and overwrites the output file.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	inventory, err := w.scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	if err := w.SaveCodePoints(args.Output, inventory.CodePoints); err != nil {
		slog.Error("Failed to write output", "path", args.Output, "error", err)
		return &OutputWriteError{Path: args.Output, Err: err}
	}

	slog.Info("inventory written",
		"output", args.Output,
		"code_points", inventory.CodePoints.Len(),
		"files", len(inventory.Scans)-1,
		"skipped", len(inventory.Skipped()),
	)

	w.DisplaySummary(ctx, inventory, args.Output)

	return nil
}

// List builds the inventory and displays what each input contributed. Nothing is written.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	inventory, err := w.scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	if err := w.DisplayListing(ctx, inventory, args.Format); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Check builds the inventory and compares it with the existing output file.
// A missing or different file yields ErrStaleOutput.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := w.Start(ctx, controller.WithCheckMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	inventory, err := w.scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	existing, _, err := w.LoadCodePoints(args.Output)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", args.Output, err)
	}

	diff, err := codePointDiff(args.Output, existing, inventory.CodePoints)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	w.DisplayCheck(ctx, args.Output, diff)

	if diff != "" {
		return ErrStaleOutput
	}

	return nil
}

func (w *workflow) scan(ctx context.Context, args ScanArgs) (m.Inventory, error) {
	files, err := w.Collect(ctx, args.Source)
	if err != nil {
		slog.Error("Failed to collect source files", "root", args.Source, "error", err)
		return m.Inventory{}, fmt.Errorf("collect: %w", err)
	}

	w.DisplayCollected(ctx, args.Source, len(files))

	inventory, err := w.Build(ctx, BuildArgs{
		Auxiliary: args.Auxiliary,
		Files:     files,
		Threads:   args.Threads,
	})
	if err != nil {
		slog.Error("Failed to build inventory", "error", err)
		return m.Inventory{}, fmt.Errorf("build inventory: %w", err)
	}

	return inventory, nil
}

// codePointDiff renders a unified diff between two sets, one hex code per
// line in ascending order. Equal sets give an empty string.
func codePointDiff(output m.Path, previous, current m.CodePointSet) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        hexLines(previous),
		B:        hexLines(current),
		FromFile: string(output),
		ToFile:   "current inventory",
		Context:  1,
	})
}

func hexLines(set m.CodePointSet) []string {
	points := set.Sorted()

	lines := make([]string, 0, len(points))
	for _, c := range points {
		lines = append(lines, c.Hex()+"\n")
	}

	return lines
}
