package domain

import (
	"context"
	"log/slog"
	"sort"

	"glyphs.dev/pkg/glyphs/internal/adapter"
	"glyphs.dev/pkg/glyphs/internal/controller"
	m "glyphs.dev/pkg/glyphs/internal/model"
	"golang.org/x/sync/errgroup"
)

// BuildArgs contains the inputs of one inventory build.
type BuildArgs struct {
	Auxiliary m.Path
	Files     []m.Path
	Threads   int
}

// InventoryBuilder reads the auxiliary resource and every candidate file and
// reduces their non-ASCII code points into a single set.
type InventoryBuilder interface {
	Build(ctx context.Context, args BuildArgs) (m.Inventory, error)
}

type inventoryBuilder struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
}

// NewInventoryBuilder constructs an InventoryBuilder that reads through
// fsAdapter and reports per-file progress to ui.
func NewInventoryBuilder(fsAdapter adapter.SourceFSAdapter, ui controller.UI) InventoryBuilder {
	return &inventoryBuilder{
		fsAdapter: fsAdapter,
		ui:        ui,
	}
}

func (b *inventoryBuilder) Build(ctx context.Context, args BuildArgs) (m.Inventory, error) {
	auxScan, err := b.scanAuxiliary(args.Auxiliary)
	if err != nil {
		return m.Inventory{}, err
	}

	b.ui.DisplayFileScan(ctx, auxScan)

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	scans, locals, err := b.scanCandidates(ctx, args.Files, threads)
	if err != nil {
		return m.Inventory{}, err
	}

	// Per-worker sets are merged once at the end instead of locking per rune.
	codePoints := m.CodePointSet{}
	codePoints.Union(auxScan.CodePoints)

	for _, local := range locals {
		codePoints.Union(local)
	}

	sort.Slice(scans, func(i, j int) bool {
		return scans[i].File.Path < scans[j].File.Path
	})

	return m.Inventory{
		CodePoints: codePoints,
		Scans:      append([]m.FileScan{auxScan}, scans...),
	}, nil
}

func (b *inventoryBuilder) scanCandidates(ctx context.Context, files []m.Path, threads int) ([]m.FileScan, []m.CodePointSet, error) {
	jobs := make(chan m.Path, threads)
	results := make(chan m.FileScan, threads)
	locals := make([]m.CodePointSet, threads)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(jobs)

		for _, file := range files {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case jobs <- file:
			}
		}

		return nil
	})

	for worker := 0; worker < threads; worker++ {
		local := m.CodePointSet{}
		locals[worker] = local

		group.Go(func() error {
			for file := range jobs {
				scan := b.scanCandidate(file)
				if !scan.Skipped() {
					local.Union(scan.CodePoints)
				}

				select {
				case <-groupCtx.Done():
					return groupCtx.Err()
				case results <- scan:
				}
			}

			return nil
		})
	}

	waitErr := make(chan error, 1)

	go func() {
		waitErr <- group.Wait()

		close(results)
	}()

	scans := make([]m.FileScan, 0, len(files))
	for scan := range results {
		b.ui.DisplayFileScan(ctx, scan)
		scans = append(scans, scan)
	}

	if err := <-waitErr; err != nil {
		return nil, nil, err
	}

	return scans, locals, nil
}

func (b *inventoryBuilder) scanAuxiliary(path m.Path) (m.FileScan, error) {
	file := m.File{Path: path, Kind: m.SourceAuxiliary}

	raw, err := b.fsAdapter.ReadFile(path)
	if err != nil {
		return m.FileScan{}, &ConfigurationError{Path: path, Err: err}
	}

	text, err := DecodeText(raw)
	if err != nil {
		return m.FileScan{}, &EncodingError{Path: path, Err: err}
	}

	codePoints := ExtractNonASCII(text)
	slog.Debug("scanned auxiliary resource", "path", path, "code_points", codePoints.Len())

	return m.FileScan{File: file, CodePoints: codePoints}, nil
}

func (b *inventoryBuilder) scanCandidate(path m.Path) m.FileScan {
	file := m.File{Path: path, Kind: m.SourceCandidate}

	raw, err := b.fsAdapter.ReadFile(path)
	if err != nil {
		slog.Warn("skipping unreadable file", "path", path, "error", err)
		return m.FileScan{File: file, Err: &FileReadError{Path: path, Err: err}}
	}

	text, err := DecodeText(raw)
	if err != nil {
		slog.Warn("skipping undecodable file", "path", path, "error", err)
		return m.FileScan{File: file, Err: &FileReadError{Path: path, Err: err}}
	}

	codePoints := ExtractNonASCII(text)
	slog.Debug("scanned file", "path", path, "code_points", codePoints.Len())

	return m.FileScan{File: file, CodePoints: codePoints}
}
